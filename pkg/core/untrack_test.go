package core

import "testing"

func TestUntrack_SuspendsTracking(t *testing.T) {
	resetForTest()

	ov, _ := NewObservableValue("n", 1, nil, nil)
	d := NewReactionDeferred("r", func(*Reaction) error { return nil })

	_, _ = trackDerivedFunction(d, func() (any, error) {
		Untrack(func() {
			ov.Get()
		})
		return nil, nil
	})

	if len(d.observing) != 0 {
		t.Fatalf("expected Untrack to prevent the read from being recorded, got %v", d.observing)
	}
}

func TestBatch_NestsWithoutPrematureDrain(t *testing.T) {
	resetForTest()

	ov, _ := NewObservableValue("n", 1, nil, nil)
	runs := 0
	r := NewReaction("r", func(*Reaction) error {
		runs++
		ov.Get()
		return nil
	})
	defer r.Dispose()

	runs = 0
	Batch(func() {
		Batch(func() {
			ov.Set(2)
		})
		if runs != 0 {
			t.Fatalf("expected no rerun until the outermost batch closes, got %d", runs)
		}
		ov.Set(3)
	})

	if runs != 1 {
		t.Fatalf("expected exactly one rerun after the outermost batch closed, got %d", runs)
	}
}
