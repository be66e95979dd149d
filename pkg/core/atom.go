package core

// Atom is the leaf-level observable: something that can be observed by
// derivations and that reports when it changes. ObservableValue and
// ComputedValue both embed an Atom for their observer bookkeeping;
// Reaction does not, since nothing ever observes a reaction.
type Atom struct {
	Name string

	obs    []Derivation
	lowest DerivationState

	// diffValue is the O(1) dedup marker used while a derivation is
	// rebuilding its observing set in bindDependencies: it is stamped
	// with the current run ID the first time this atom is added to the
	// derivation's newObserving slice during a given run, so a second
	// read of the same atom in the same run is detected without
	// scanning the slice.
	diffValue uint64
}

// NewAtom creates a standalone atom with the given debug name.
func NewAtom(name string) *Atom {
	return &Atom{Name: name, lowest: UpToDate}
}

func (a *Atom) debugName() string { return a.Name }

func (a *Atom) observers() []Derivation { return a.obs }

func (a *Atom) lowestObserverState() DerivationState { return a.lowest }

func (a *Atom) setLowestObserverState(s DerivationState) { a.lowest = s }

func (a *Atom) addObserver(d Derivation) {
	a.obs = append(a.obs, d)
	debugGraph.addEdge(a.Name, d.debugName())
}

func (a *Atom) markedForRun(id uint64) bool { return a.diffValue == id }

func (a *Atom) markForRun(id uint64) { a.diffValue = id }

func (a *Atom) removeObserver(d Derivation) {
	for i, o := range a.obs {
		if o == d {
			a.obs = append(a.obs[:i], a.obs[i+1:]...)
			debugGraph.removeEdge(a.Name, d.debugName())
			return
		}
	}
}

// reportObserved registers this atom as a dependency of the derivation
// currently being tracked, if any.
func (a *Atom) reportObserved() {
	if global.trackingDerivation != nil {
		global.trackingDerivation.recordObserving(a)
	}
}

// reportChanged propagates a direct change: every UP_TO_DATE observer is
// marked STALE (and, if it is a Reaction, scheduled); observers already
// PossiblyStale or Stale are left alone since they will recheck their
// whole dependency set anyway.
func (a *Atom) reportChanged() {
	StartBatch()
	a.propagateChanged()
	EndBatch()
}

func (a *Atom) propagateChanged() {
	if a.lowest == Stale {
		return
	}
	a.lowest = Stale
	for _, d := range a.obs {
		if d.dependenciesState() == UpToDate {
			d.setDependenciesState(Stale)
			d.onBecomeStale()
		} else {
			d.setDependenciesState(Stale)
		}
	}
}

// propagateMaybeChanged propagates an indirect, not-yet-confirmed change
// (a computed's cache was invalidated but has not recomputed yet):
// UP_TO_DATE observers are demoted to PossiblyStale rather than Stale,
// since they may turn out not to need a recompute at all.
func (a *Atom) propagateMaybeChanged() {
	if a.lowest != UpToDate {
		return
	}
	a.lowest = PossiblyStale
	for _, d := range a.obs {
		if d.dependenciesState() == UpToDate {
			d.setDependenciesState(PossiblyStale)
			d.onBecomeStale()
		}
	}
}
