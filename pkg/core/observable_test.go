package core

import (
	"errors"
	"testing"
)

func TestObservableValue_GetSet(t *testing.T) {
	resetForTest()

	ov, err := NewObservableValue("name", "Ada", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ov.Get() != "Ada" {
		t.Fatalf("expected initial value Ada, got %v", ov.Get())
	}

	changed, err := ov.Set("Grace")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changed {
		t.Fatal("expected Set to report a change")
	}
	if ov.Get() != "Grace" {
		t.Fatalf("expected Grace, got %v", ov.Get())
	}
}

// TestObservableValue_SetSameValueNoChange checks the "unchanged"
// short-circuit: setting the same value reports no change and does not
// propagate.
func TestObservableValue_SetSameValueNoChange(t *testing.T) {
	resetForTest()

	ov, _ := NewObservableValue("n", 5, nil, nil)
	changed, err := ov.Set(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed {
		t.Fatal("expected no change when setting an equal value")
	}
}

func TestObservableValue_EnhancerRejectsInitial(t *testing.T) {
	resetForTest()

	wantErr := errors.New("too small")
	enhancer := func(newValue, _ any, _ string) (any, error) {
		if newValue.(int) < 10 {
			return nil, wantErr
		}
		return newValue, nil
	}

	_, err := NewObservableValue("n", 1, enhancer, nil)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected enhancer error on initial value, got %v", err)
	}
}

func TestObservableValue_EnhancerRejectsWrite(t *testing.T) {
	resetForTest()

	enhancer := func(newValue, _ any, _ string) (any, error) {
		if newValue.(int) < 0 {
			return nil, errors.New("must be non-negative")
		}
		return newValue, nil
	}

	ov, err := NewObservableValue("n", 5, enhancer, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	changed, err := ov.Set(-1)
	if err == nil {
		t.Fatal("expected enhancer to reject the write")
	}
	if changed {
		t.Fatal("expected no change when the enhancer rejects a write")
	}
	if ov.Get() != 5 {
		t.Fatalf("expected value to remain 5 after rejected write, got %v", ov.Get())
	}
}

func TestObservableValue_CustomEquals(t *testing.T) {
	resetForTest()

	type point struct{ x, y int }
	eq := func(a, b any) bool {
		pa, pb := a.(point), b.(point)
		return pa.x == pb.x && pa.y == pb.y
	}

	ov, _ := NewObservableValue("p", point{1, 2}, nil, eq)
	changed, err := ov.Set(point{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed {
		t.Fatal("expected custom Equals to report no change for an equal struct")
	}
}

func TestObservableValue_ReportsObserved(t *testing.T) {
	resetForTest()

	ov, _ := NewObservableValue("n", 1, nil, nil)
	d := NewReactionDeferred("r", func(*Reaction) error { return nil })

	_, _ = trackDerivedFunction(d, func() (any, error) {
		ov.Get()
		return nil, nil
	})

	if len(d.observing) != 1 || d.observing[0] != Observable(&ov.Atom) {
		t.Fatalf("expected reaction to record ov as observed, got %v", d.observing)
	}
}
