package meta

import "testing"

func TestGetSet_RoundTrip(t *testing.T) {
	bag := map[string]any{}
	Set(bag, "k", "v")

	v, err := Get[string](bag, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "v" {
		t.Fatalf("expected 'v', got %v", v)
	}
}

func TestGet_MissingKey(t *testing.T) {
	if _, err := Get[string](map[string]any{}, "missing"); err == nil {
		t.Fatal("expected an error for a missing key")
	}
}

func TestGet_NilSource(t *testing.T) {
	if _, err := Get[string](nil, "k"); err == nil {
		t.Fatal("expected an error for a nil source")
	}
}

func TestGet_ConvertibleType(t *testing.T) {
	bag := map[string]any{"n": int(5)}
	v, err := Get[int64](bag, "n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != int64(5) {
		t.Fatalf("expected the int to convert to int64(5), got %v", v)
	}
}

func TestSet_NilSourceIsNoop(t *testing.T) {
	Set(nil, "k", "v")
}

func TestFind_ReturnsMatchingEntry(t *testing.T) {
	bag := map[string]any{"k": "v"}
	found := Find(bag, "k")
	if len(found) != 1 || found[0] != "v" {
		t.Fatalf("expected [v], got %v", found)
	}
	if Find(bag, "missing") != nil {
		t.Fatal("expected no entries for a missing key")
	}
	if Find(nil, "k") != nil {
		t.Fatal("expected no entries for a nil source")
	}
}

func TestLabelAndLabelOf(t *testing.T) {
	bag := map[string]any{}
	if got := LabelOf(bag, "fallback"); got != "fallback" {
		t.Fatalf("expected the fallback before Label is called, got %q", got)
	}
	Label(bag, "my-atom")
	if got := LabelOf(bag, "fallback"); got != "my-atom" {
		t.Fatalf("expected 'my-atom', got %q", got)
	}
}
