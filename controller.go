package reactor

import "github.com/pumped-fn/reactor/pkg/core"

// valueHolder is the minimal surface Observable[T] and Computed[T] both
// need from their underlying core type to share a controller.
type valueHolder interface {
	Get() any
}

// controller is the shared Get/Peek base embedded by Observable[T] and
// Computed[T]. Set is left out of this shared base since it has
// different shapes for an observable (always settable) versus a
// computed (settable only if it has a setter).
type controller[T any] struct {
	holder valueHolder
}

// Get returns the current value, tracked as a dependency of whatever
// derivation is currently running.
func (c controller[T]) Get() T {
	return c.holder.Get().(T)
}

// Peek returns the current value without tracking it as a dependency,
// useful for reading a value from inside a reaction/computed without
// subscribing to it.
func (c controller[T]) Peek() T {
	var v T
	core.Untrack(func() { v = c.holder.Get().(T) })
	return v
}
