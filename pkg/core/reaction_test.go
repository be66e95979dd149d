package core

import (
	"errors"
	"testing"
)

func TestReaction_RunsImmediatelyOnCreation(t *testing.T) {
	resetForTest()

	ov, _ := NewObservableValue("n", 1, nil, nil)
	runs := 0
	r := NewReaction("r", func(*Reaction) error {
		runs++
		ov.Get()
		return nil
	})
	defer r.Dispose()

	if runs != 1 {
		t.Fatalf("expected the reaction to run once at creation, got %d", runs)
	}
}

func TestReaction_RerunsOnDependencyChange(t *testing.T) {
	resetForTest()

	ov, _ := NewObservableValue("n", 1, nil, nil)
	var seen []int
	r := NewReaction("r", func(*Reaction) error {
		seen = append(seen, ov.Get().(int))
		return nil
	})
	defer r.Dispose()

	ov.Set(2)
	ov.Set(3)

	if want := []int{1, 2, 3}; !intSliceEqual(seen, want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
}

// TestReaction_BatchCoalescesReruns checks that multiple writes inside a
// Batch cause exactly one rerun, not one per write.
func TestReaction_BatchCoalescesReruns(t *testing.T) {
	resetForTest()

	ov, _ := NewObservableValue("n", 1, nil, nil)
	runs := 0
	r := NewReaction("r", func(*Reaction) error {
		runs++
		ov.Get()
		return nil
	})
	defer r.Dispose()

	Batch(func() {
		ov.Set(2)
		ov.Set(3)
		ov.Set(4)
	})

	if runs != 2 {
		t.Fatalf("expected exactly one rerun after the batch (plus the initial run), got %d total runs", runs)
	}
}

func TestReaction_DisposeStopsFurtherRuns(t *testing.T) {
	resetForTest()

	ov, _ := NewObservableValue("n", 1, nil, nil)
	runs := 0
	r := NewReaction("r", func(*Reaction) error {
		runs++
		ov.Get()
		return nil
	})

	r.Dispose()
	ov.Set(2)

	if runs != 1 {
		t.Fatalf("expected no rerun after Dispose, got %d runs", runs)
	}
	if !r.IsDisposed() {
		t.Fatal("expected IsDisposed to report true")
	}
}

func TestReaction_ErrorIsCapturedAndNotifiedNotPanicked(t *testing.T) {
	resetForTest()

	wantErr := errors.New("boom")
	var notified error
	AddReactionErrorHandler(func(r *Reaction, err error) {
		notified = err
	})

	r := NewReaction("r", func(*Reaction) error {
		return wantErr
	})
	defer r.Dispose()

	if r.Exception() == nil {
		t.Fatal("expected the reaction to capture its exception")
	}
	if !errors.Is(r.Exception(), wantErr) {
		t.Fatalf("expected the captured exception to wrap %v, got %v", wantErr, r.Exception())
	}
	if notified == nil {
		t.Fatal("expected the error handler to be notified")
	}
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
