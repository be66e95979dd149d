package reactor

import "github.com/pumped-fn/reactor/pkg/core"

// OperationKind distinguishes the two shapes of operation an Extension's
// Wrap sees: the reaction drain pass and an administration write.
type OperationKind string

const (
	OpReactionDrain OperationKind = "reaction-drain"
	OpWrite         OperationKind = "write"
)

// Operation describes the thing Wrap is wrapping.
type Operation struct {
	Kind OperationKind
	Name string
}

// Extension is the unified spy bus / error bus / scheduler-composition
// seam: Wrap composes around the reaction-drain pass and around
// administration writes; OnError is the error bus; Spy is the spy bus.
type Extension interface {
	Name() string
	Order() int
	Init(rt *Runtime) error
	Wrap(next func(), op Operation) func()
	OnError(err error, op Operation)
	Spy(e core.SpyEvent)
	Dispose(rt *Runtime) error
}

// BaseExtension gives every method a no-op default, so a concrete
// extension only has to override what it cares about.
type BaseExtension struct{}

func (BaseExtension) Name() string                         { return "base" }
func (BaseExtension) Order() int                           { return 0 }
func (BaseExtension) Init(rt *Runtime) error                { return nil }
func (BaseExtension) Wrap(next func(), op Operation) func() { return next }
func (BaseExtension) OnError(err error, op Operation)        {}
func (BaseExtension) Spy(e core.SpyEvent)                    {}
func (BaseExtension) Dispose(rt *Runtime) error              { return nil }
