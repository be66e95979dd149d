// Package core implements the dependency-tracking engine: atoms,
// derivations (computed values and reactions), the batch/scheduler, and
// the observable object administration.
package core

// DerivationState is the lifecycle state of a derivation's cached result
// with respect to the atoms it depends on.
type DerivationState int

const (
	// NotTracking means the derivation has never run, or was explicitly
	// cleared; it has no dependency set to reason about yet.
	NotTracking DerivationState = iota
	// UpToDate means no dependency has reported a change since the last
	// run; the cached value (if any) is safe to return without recompute.
	UpToDate
	// PossiblyStale means at least one dependency is itself
	// PossiblyStale or Stale; a recompute may or may not actually change
	// the cached value, so shouldCompute has to ask the dependency chain.
	PossiblyStale
	// Stale means a depended-on atom reported a change directly; a
	// recompute is required.
	Stale
)

func (s DerivationState) String() string {
	switch s {
	case NotTracking:
		return "not-tracking"
	case UpToDate:
		return "up-to-date"
	case PossiblyStale:
		return "possibly-stale"
	case Stale:
		return "stale"
	default:
		return "unknown"
	}
}

// Observable is anything a Derivation can depend on: an Atom itself, or
// anything that embeds one (ObservableValue, ComputedValue).
type Observable interface {
	reportObserved()
	observers() []Derivation
	addObserver(d Derivation)
	removeObserver(d Derivation)
	lowestObserverState() DerivationState
	setLowestObserverState(s DerivationState)
	debugName() string

	// markedForRun/markForRun back the O(1) diffValue dedup trick used
	// by recordObserving: they let a derivation tell whether it already
	// recorded this Observable during the run in progress without
	// scanning newObserving.
	markedForRun(id uint64) bool
	markForRun(id uint64)
}

// Derivation is anything that can observe Observables: ComputedValue and
// Reaction both implement it via the embedded derivation core.
type Derivation interface {
	onBecomeStale()
	dependenciesState() DerivationState
	setDependenciesState(s DerivationState)
	debugName() string
	recordObserving(o Observable)
}

// Cleanup is a disposer function returned by subscriptions and reactions.
type Cleanup func()
