package reactor

import "testing"

type manageTestTarget struct{ ID string }

func TestManage_SameTargetReturnsSameAdministration(t *testing.T) {
	target := &manageTestTarget{ID: "1"}

	a1 := Manage(target)
	a2 := Manage(target)
	if a1 != a2 {
		t.Fatal("expected Manage to return the same Administration for the same target")
	}

	if _, ok := AdministrationOf(target); !ok {
		t.Fatal("expected AdministrationOf to find the managed target")
	}

	Unmanage(target)
	if _, ok := AdministrationOf(target); ok {
		t.Fatal("expected AdministrationOf to report nothing after Unmanage")
	}
}

func TestManage_DifferentTargetsGetDifferentAdministrations(t *testing.T) {
	t1 := &manageTestTarget{ID: "a"}
	t2 := &manageTestTarget{ID: "b"}

	if Manage(t1) == Manage(t2) {
		t.Fatal("expected distinct targets to get distinct Administrations")
	}
}

func TestManage_PropertiesWorkThroughFacade(t *testing.T) {
	target := &manageTestTarget{ID: "props"}
	admin := Manage(target)

	if err := admin.AddObservableProp("name", "Ada", nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := admin.Read("name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "Ada" {
		t.Fatalf("expected Ada, got %v", v)
	}
}
