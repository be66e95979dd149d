package core

import (
	"fmt"
	"runtime/debug"
)

// CycleError is raised when a computed value's compute function reads
// itself, directly or transitively, during its own evaluation.
type CycleError struct {
	Name string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("core: cycle detected while computing %q", e.Name)
}

// IllegalAccessError is raised when a read or write reaches an atom or
// administration in a context the runtime's policy forbids (e.g. writing
// to an observable from inside a computed's compute function).
type IllegalAccessError struct {
	Name   string
	Detail string
}

func (e *IllegalAccessError) Error() string {
	return fmt.Sprintf("core: illegal access on %q: %s", e.Name, e.Detail)
}

// NotConfigurableError is raised when an administration operation would
// reconfigure a property that was added as non-configurable.
type NotConfigurableError struct {
	Name string
}

func (e *NotConfigurableError) Error() string {
	return fmt.Sprintf("core: property %q is not configurable", e.Name)
}

// NotExtensibleError is raised when a property is added to an
// administration that was sealed against new properties.
type NotExtensibleError struct {
	Target string
	Name   string
}

func (e *NotExtensibleError) Error() string {
	return fmt.Sprintf("core: object %q is not extensible, cannot add %q", e.Target, e.Name)
}

// DerivationException wraps a panic or error raised while running a
// derivation's compute or effect function. It captures the stack at the
// point of capture, so a later Spy/log consumer can report where the
// failure actually happened.
type DerivationException struct {
	Name       string
	Cause      error
	StackTrace string
}

func (e *DerivationException) Error() string {
	return fmt.Sprintf("core: derivation %q failed: %v", e.Name, e.Cause)
}

func (e *DerivationException) Unwrap() error {
	return e.Cause
}

// NewDerivationException builds a DerivationException, capturing the
// current goroutine's stack trace.
func NewDerivationException(name string, cause error) *DerivationException {
	return &DerivationException{
		Name:       name,
		Cause:      cause,
		StackTrace: string(debug.Stack()),
	}
}

// DivergenceError is raised when the reaction-draining loop exceeds
// MaxReactionIterations without settling, indicating reactions are
// triggering each other without bound.
type DivergenceError struct {
	Iterations int
	Reactions  []string
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("core: reaction scheduler did not converge after %d iterations (still pending: %v)", e.Iterations, e.Reactions)
}
