package core

// derivationCore is the tracking machinery shared by ComputedValue and
// Reaction: the set of Observables read during the last run, the set
// being built up during the run in progress, and the derivation
// state-machine fields. Dependencies are discovered by reading during
// execution rather than declared up front.
type derivationCore struct {
	observing    []Observable
	newObserving []Observable

	depState DerivationState
	runID    uint64
}

func (d *derivationCore) dependenciesState() DerivationState { return d.depState }

func (d *derivationCore) setDependenciesState(s DerivationState) { d.depState = s }

// recordObserving appends o to newObserving unless o was already marked
// for this run, giving O(1) dedup per read instead of an O(n) scan of
// newObserving.
func (d *derivationCore) recordObserving(o Observable) {
	if o.markedForRun(d.runID) {
		return
	}
	o.markForRun(d.runID)
	d.newObserving = append(d.newObserving, o)
}

func observingSets(d Derivation) (observing, newObserving *[]Observable) {
	switch v := d.(type) {
	case *ComputedValue:
		return &v.observing, &v.newObserving
	case *Reaction:
		return &v.observing, &v.newObserving
	default:
		return nil, nil
	}
}

func setRunID(d Derivation, rid uint64) {
	switch v := d.(type) {
	case *ComputedValue:
		v.runID = rid
	case *Reaction:
		v.runID = rid
	}
}

// changeDependenciesStateToUpToDate resets the lowestObserverState of
// every atom d currently observes back to UpToDate before a new tracked
// run begins. Without this, an atom's lowest state only ever escalates
// (Stale/PossiblyStale) and never comes back down, so propagateChanged's
// "already Stale, nothing to do" short-circuit would permanently
// suppress every write after the first one.
func changeDependenciesStateToUpToDate(d Derivation) {
	observing, _ := observingSets(d)
	if observing == nil {
		return
	}
	for _, o := range *observing {
		o.setLowestObserverState(UpToDate)
	}
}

// trackDerivedFunction runs fn with d installed as the globally tracked
// derivation, collects the Observables it reads into d's newObserving
// set, then calls bindDependencies to reconcile newObserving against the
// previous observing set and update every affected Atom's observer list.
func trackDerivedFunction(d Derivation, fn func() (any, error)) (result any, err error) {
	prev := global.trackingDerivation
	global.trackingDerivation = d
	changeDependenciesStateToUpToDate(d)
	d.setDependenciesState(UpToDate)

	rid := nextRunID()
	setRunID(d, rid)
	if _, newObserving := observingSets(d); newObserving != nil {
		*newObserving = acquireObservingSlice()
	}

	defer func() {
		global.trackingDerivation = prev
		bindDependencies(d, rid)
	}()

	result, err = fn()
	return result, err
}

// bindDependencies reconciles a derivation's previous observing set with
// the newObserving set built during the run just finished: atoms no
// longer read are removed as observers, atoms newly read (those not
// already an observer relationship) are added. Swaps the slices rather
// than copying.
func bindDependencies(d Derivation, runID uint64) {
	observing, newObserving := observingSets(d)
	if observing == nil {
		return
	}

	oldObserving := *observing
	for _, o := range oldObserving {
		if !o.markedForRun(runID) {
			o.removeObserver(d)
		}
	}
	for _, o := range *newObserving {
		already := false
		for _, p := range oldObserving {
			if p == o {
				already = true
				break
			}
		}
		if !already {
			o.addObserver(d)
		}
	}

	*observing = *newObserving
	*newObserving = nil
	if oldObserving != nil {
		releaseObservingSlice(oldObserving)
	}
}

// clearObserving removes d from every atom it currently observes and
// resets its tracked state, used when a Reaction is disposed or a
// ComputedValue with no observers is swept.
func clearObserving(d Derivation) {
	observing, _ := observingSets(d)
	if observing == nil {
		return
	}
	for _, o := range *observing {
		o.removeObserver(d)
	}
	*observing = nil
	d.setDependenciesState(NotTracking)
}

// shouldCompute decides whether a derivation needs to recompute before
// its cached value can be trusted. Stale always needs recompute;
// UpToDate never does; PossiblyStale requires checking each computed
// dependency's actual current value, since a computed dependency may
// have recomputed to the *same* value, in which case nothing downstream
// actually needs to change.
func shouldCompute(d Derivation) bool {
	switch d.dependenciesState() {
	case UpToDate:
		return false
	case Stale, NotTracking:
		return true
	}

	observing, _ := observingSets(d)
	if observing == nil {
		return true
	}
	for _, o := range *observing {
		if cv, ok := o.(*ComputedValue); ok {
			cv.Get()
			if d.dependenciesState() == Stale {
				return true
			}
		}
	}
	d.setDependenciesState(UpToDate)
	return false
}
