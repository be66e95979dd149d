package core

import "fmt"

// ComputeFunc produces a ComputedValue's value from whatever Observables
// it chooses to read during its call. SetFunc, if present, lets the
// computed be written to (MobX's "computed with setter").
type ComputeFunc func() (any, error)
type SetFunc func(newValue any) error

// ComputedValue is a derivation that also behaves as an Atom: it can be
// observed by other derivations, and it lazily recomputes its own value
// from its dependencies only when read while stale. The resolving guard
// detects a synchronous read-during-compute cycle.
type ComputedValue struct {
	Atom
	derivationCore

	compute ComputeFunc
	setter  SetFunc

	equals Equals

	cachedValue     any
	cachedException error
	isComputing     bool

	// keepAlive, when true, keeps this computed's dependency graph
	// bound even when it has no observers (normally a computed with no
	// observers clears its observing set on the next read, since
	// nothing needs it kept fresh).
	keepAlive bool
}

// ComputedOption configures a ComputedValue at construction time.
type ComputedOption func(*ComputedValue)

// WithSetter attaches a setter, letting code "write through" a computed.
func WithSetter(fn SetFunc) ComputedOption {
	return func(c *ComputedValue) { c.setter = fn }
}

// WithKeepAlive keeps the computed's dependencies bound even without
// observers, trading memory for avoiding repeated dependency rebinding.
func WithKeepAlive() ComputedOption {
	return func(c *ComputedValue) { c.keepAlive = true }
}

// WithComputedEquals overrides the default equality comparator used to
// decide whether a recompute actually changed the cached value.
func WithComputedEquals(eq Equals) ComputedOption {
	return func(c *ComputedValue) { c.equals = eq }
}

// NewComputedValue creates a lazily-evaluated, memoized derivation.
func NewComputedValue(name string, compute ComputeFunc, opts ...ComputedOption) *ComputedValue {
	c := &ComputedValue{
		Atom:           Atom{Name: name, lowest: UpToDate},
		derivationCore: derivationCore{depState: NotTracking},
		compute:        compute,
		equals:         defaultEquals,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *ComputedValue) debugName() string { return c.Atom.Name }

// reportObserved overrides the embedded Atom's version so the value
// recorded as the dependency is the ComputedValue itself, not the bare
// *Atom embedded inside it. This matters because shouldCompute's
// PossiblyStale branch type-switches a derivation's observing set
// looking for *ComputedValue to re-check; without this override every
// recorded dependency would be a plain *Atom and that switch could
// never match, silently breaking the glitch-free property.
func (c *ComputedValue) reportObserved() {
	if global.trackingDerivation != nil {
		global.trackingDerivation.recordObserving(c)
	}
}

// onBecomeStale is called by propagateChanged/propagateMaybeChanged on
// a dependency when this computed transitions away from UpToDate. A
// computed has no work of its own to do here beyond cascading the
// notification to whatever observes it, since it recomputes lazily.
func (c *ComputedValue) onBecomeStale() {
	c.Atom.propagateMaybeChanged()
}

// Get returns the computed's current value, recomputing first if
// shouldCompute says the cached value can no longer be trusted.
func (c *ComputedValue) Get() any {
	if global.inBatch == 0 && len(c.Atom.obs) == 0 {
		// Outside of a batch and with no observers, still honor
		// keepAlive; otherwise there is no point reusing a stale
		// binding that nothing will ever invalidate for us.
		if !c.keepAlive {
			c.depState = NotTracking
		}
	}

	if shouldCompute(c) {
		c.recompute()
	}
	c.reportObserved()

	if c.cachedException != nil {
		panic(c.cachedException)
	}
	return c.cachedValue
}

// Set writes through the computed's setter, if one was configured.
func (c *ComputedValue) Set(newValue any) error {
	if c.setter == nil {
		return fmt.Errorf("core: computed %q has no setter", c.Name)
	}
	if c.isComputing {
		return &IllegalAccessError{Name: c.Name, Detail: "cannot write to a computed from within its own compute function"}
	}
	return c.setter(newValue)
}

func (c *ComputedValue) recompute() {
	if c.isComputing {
		c.cachedException = &CycleError{Name: c.Name}
		return
	}
	c.isComputing = true
	result, err := trackDerivedFunction(c, c.compute)
	c.isComputing = false

	if err != nil {
		if c.cachedException == nil || c.cachedException.Error() != err.Error() {
			c.cachedValue = nil
			c.cachedException = NewDerivationException(c.Name, err)
			c.Atom.propagateChanged()
		}
		return
	}

	changed := c.cachedException != nil || !c.equals(c.cachedValue, result)
	c.cachedException = nil
	if changed {
		c.cachedValue = result
		c.Atom.propagateChanged()
	}
}
