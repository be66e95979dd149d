package core

import "testing"

// TestObservingSlicePool_ReusesReleasedSlices checks that the pool
// actually participates in the tracking hot path (trackDerivedFunction/
// bindDependencies), not just that it compiles unused.
func TestObservingSlicePool_ReusesReleasedSlices(t *testing.T) {
	resetForTest()

	ov, _ := NewObservableValue("n", 1, nil, nil)
	cv := NewComputedValue("c", func() (any, error) {
		return ov.Get(), nil
	})

	beforeHits, _ := PoolStats()

	// Each call with no observers resets depState to NotTracking, forcing
	// a fresh tracked run; the first call's released slice only becomes
	// available to the pool once the *second* call's bindDependencies
	// runs, so a third call is needed to observe an actual hit.
	cv.Get()
	cv.Get()
	cv.Get()

	afterHits, _ := PoolStats()
	if afterHits <= beforeHits {
		t.Fatalf("expected the observing-slice pool to record at least one hit across repeated tracked runs, before=%d after=%d", beforeHits, afterHits)
	}
}
