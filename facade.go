package reactor

import (
	"github.com/pumped-fn/reactor/pkg/core"
	"github.com/pumped-fn/reactor/pkg/schema"
)

// ObservableOption configures an Observable at construction time.
type ObservableOption func(*observableConfig)

type observableConfig struct {
	enhancer core.Enhancer
	equals   core.Equals
}

// WithEnhancer installs a value enhancer (validation/transformation) run
// on every write, including the initial one.
func WithEnhancer(e core.Enhancer) ObservableOption {
	return func(c *observableConfig) { c.enhancer = e }
}

// WithEquals overrides the default equality comparator used to decide
// whether a write actually changed the value.
func WithEquals(eq core.Equals) ObservableOption {
	return func(c *observableConfig) { c.equals = eq }
}

// WithSchema rejects any write whose value fails s.Validate, adapting
// pkg/schema's validators into the enhancer slot.
func WithSchema(s schema.Schema) ObservableOption {
	return WithEnhancer(core.Enhancer(schema.AsEnhancer(s)))
}

// Observable is a single typed reactive value. Grounded on
// other_examples/2db61366_AnatoleLucet-sig__sig.go.go's Signal[T]: a
// thin typed wrapper with Get/Set over a tracked core value.
type Observable[T any] struct {
	controller[T]
	ov *core.ObservableValue
}

// NewObservable creates an Observable with an initial value.
func NewObservable[T any](name string, initial T, opts ...ObservableOption) *Observable[T] {
	cfg := &observableConfig{}
	for _, o := range opts {
		o(cfg)
	}
	ov, err := core.NewObservableValue(name, initial, cfg.enhancer, cfg.equals)
	if err != nil {
		// The initial value is supplied by the caller, not external
		// input, so a rejected initial value is a programming error.
		panic(err)
	}
	o := &Observable[T]{ov: ov}
	o.controller = controller[T]{holder: ov}
	return o
}

// Set stores a new value, returning whether it actually changed.
func (o *Observable[T]) Set(v T) (bool, error) {
	return o.ov.Set(v)
}

// Name returns the observable's debug name.
func (o *Observable[T]) Name() string { return o.ov.Name }

// ComputedOption re-exports core.ComputedOption so callers don't need
// to import pkg/core directly for common configuration.
type ComputedOption = core.ComputedOption

var WithKeepAlive = core.WithKeepAlive
var WithComputedEquals = core.WithComputedEquals

// Computed is a lazily evaluated, memoized derived value. Grounded on
// other_examples/2db61366_AnatoleLucet-sig__sig.go.go's Computed[T].
type Computed[T any] struct {
	controller[T]
	cv *core.ComputedValue
}

// NewComputed creates a Computed from a typed compute function.
func NewComputed[T any](name string, compute func() (T, error), opts ...ComputedOption) *Computed[T] {
	cv := core.NewComputedValue(name, func() (any, error) {
		return compute()
	}, opts...)
	c := &Computed[T]{cv: cv}
	c.controller = controller[T]{holder: cv}
	return c
}

// WithSetterTyped attaches a typed setter to a Computed being built.
func WithSetterTyped[T any](fn func(T) error) ComputedOption {
	return core.WithSetter(func(v any) error { return fn(v.(T)) })
}

// Set writes through the computed's setter, if any.
func (c *Computed[T]) Set(v T) error {
	return c.cv.Set(v)
}

// Name returns the computed's debug name.
func (c *Computed[T]) Name() string { return c.cv.Name }

// Autorun runs fn immediately and again every time a value it read
// during its last run changes, until the returned Cleanup is called.
func Autorun(name string, fn func(ctx *ReactionCtx) error) core.Cleanup {
	var ctx *ReactionCtx
	r := core.NewReactionDeferred(name, func(rc *core.Reaction) error {
		return fn(ctx)
	})
	ctx = &ReactionCtx{reaction: r, tags: make(map[string]any)}
	r.Start()
	return r.Dispose
}

// When runs predicate reactively; the first time it returns true, it
// runs effect exactly once and then disposes itself, matching MobX's
// `when`.
func When(name string, predicate func() bool, effect func()) core.Cleanup {
	var ctx *ReactionCtx
	r := core.NewReactionDeferred(name, func(rc *core.Reaction) error {
		if predicate() {
			effect()
			ctx.Dispose()
		}
		return nil
	})
	ctx = &ReactionCtx{reaction: r, tags: make(map[string]any)}
	r.Start()
	return r.Dispose
}
