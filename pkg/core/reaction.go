package core

// EffectFunc is the function a Reaction runs on every (re)run. It
// receives the Reaction itself so it can dispose of itself mid-run,
// mirroring MobX's autorun callback receiving its own reaction handle.
type EffectFunc func(r *Reaction) error

// Reaction is an eagerly scheduled derivation: unlike ComputedValue it
// has no cached value of its own and nothing observes it; instead it
// exists purely to rerun its effect whenever something it read last time
// changes. Grounded on the dirty-then-rerun subscriber loop in
// other_examples/1741d518_coregx-signals__computed.go.go's
// notifySubscribers, adapted from a callback-per-subscriber model to
// this runtime's derivation-state-machine model.
type Reaction struct {
	derivationCore

	Name   string
	effect EffectFunc

	isDisposed bool
	isRunning  bool
	exception  error
}

// NewReaction creates a Reaction and performs its first run immediately,
// matching MobX's autorun semantics (it runs once synchronously at
// creation, establishing its initial dependency set).
func NewReaction(name string, effect EffectFunc) *Reaction {
	r := NewReactionDeferred(name, effect)
	r.Start()
	return r
}

// NewReactionDeferred creates a Reaction without running it, for callers
// that need to finish wiring something (like a handle the effect
// closure captures) before the first run happens. Call Start to
// perform the first run.
func NewReactionDeferred(name string, effect EffectFunc) *Reaction {
	return &Reaction{Name: name, effect: effect, depState: NotTracking}
}

// Start performs the reaction's first run. It is a no-op if the
// reaction has already run or been disposed.
func (r *Reaction) Start() {
	r.runReaction()
}

func (r *Reaction) debugName() string { return r.Name }

// onBecomeStale is invoked by a dependency's propagateChanged/
// propagateMaybeChanged; a reaction always schedules itself as soon as
// any dependency might have changed, since (unlike a computed) it has no
// cheaper "wait for a read" option — its whole purpose is to rerun.
func (r *Reaction) onBecomeStale() {
	r.schedule()
}

func (r *Reaction) schedule() {
	if r.isDisposed {
		return
	}
	if scheduleReaction(r) {
		emitSpy(SpyEvent{Kind: SpyScheduledReaction, Name: r.Name})
	}
}

// runReaction actually reruns the effect if shouldCompute confirms a
// dependency really changed. Called from the scheduler's drain loop, and
// once synchronously by NewReaction to establish the first run.
func (r *Reaction) runReaction() {
	if r.isDisposed {
		return
	}
	if !shouldCompute(r) {
		return
	}
	r.track()
}

func (r *Reaction) track() {
	r.isRunning = true
	_, err := trackDerivedFunction(r, func() (any, error) {
		return nil, r.effect(r)
	})
	r.isRunning = false
	if err != nil {
		r.reportExceptionInDerivation(err)
		return
	}
	emitSpy(SpyEvent{Kind: SpyReaction, Name: r.Name})
}

func (r *Reaction) reportExceptionInDerivation(err error) {
	exc := NewDerivationException(r.Name, err)
	r.exception = exc
	emitSpy(SpyEvent{Kind: SpyError, Name: r.Name, Err: exc})
	notifyReactionError(r, exc)
}

// Exception returns the error from the reaction's last run, if any.
func (r *Reaction) Exception() error { return r.exception }

// Dispose permanently stops a reaction from rerunning, clearing its
// observer relationships with every atom it was reading.
func (r *Reaction) Dispose() {
	if r.isDisposed {
		return
	}
	r.isDisposed = true
	clearObserving(r)
}

// IsDisposed reports whether Dispose has been called.
func (r *Reaction) IsDisposed() bool { return r.isDisposed }
