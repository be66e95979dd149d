package core

import "sync"

// PoolMetrics counts pool hits and misses.
type PoolMetrics struct {
	mu    sync.Mutex
	Hits  uint64
	Misses uint64
}

func (m *PoolMetrics) hit() {
	m.mu.Lock()
	m.Hits++
	m.mu.Unlock()
}

func (m *PoolMetrics) miss() {
	m.mu.Lock()
	m.Misses++
	m.mu.Unlock()
}

// Snapshot returns a copy of the current counters.
func (m *PoolMetrics) Snapshot() (hits, misses uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Hits, m.Misses
}

// observingSlicePool reuses the []Observable scratch slices allocated by
// bindDependencies while reconciling a derivation's dependency set.
var observingSlicePool = &struct {
	pool    sync.Pool
	metrics PoolMetrics
}{
	pool: sync.Pool{New: func() any { return make([]Observable, 0, 8) }},
}

func acquireObservingSlice() []Observable {
	v := observingSlicePool.pool.Get()
	if v == nil {
		observingSlicePool.metrics.miss()
		return make([]Observable, 0, 8)
	}
	observingSlicePool.metrics.hit()
	return v.([]Observable)[:0]
}

func releaseObservingSlice(s []Observable) {
	observingSlicePool.pool.Put(s[:0]) //nolint:staticcheck
}

// PoolStats reports the hit/miss counters for the observing-slice pool,
// exposed for diagnostics and tests.
func PoolStats() (hits, misses uint64) {
	return observingSlicePool.metrics.Snapshot()
}
