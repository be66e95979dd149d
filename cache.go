package reactor

import "sync"

// TypeSafeCache wraps a sync.Map with a generic Load/Store surface. It
// backs the hidden-administration side-table in manage.go.
type TypeSafeCache[T any] struct {
	m sync.Map
}

// NewTypeSafeCache creates an empty cache.
func NewTypeSafeCache[T any]() *TypeSafeCache[T] {
	return &TypeSafeCache[T]{}
}

// Load returns the value stored for key, if any.
func (c *TypeSafeCache[T]) Load(key any) (T, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Store sets the value for key.
func (c *TypeSafeCache[T]) Store(key any, value T) {
	c.m.Store(key, value)
}

// LoadOrStore returns the existing value for key if present, otherwise
// stores and returns value.
func (c *TypeSafeCache[T]) LoadOrStore(key any, value T) (T, bool) {
	v, loaded := c.m.LoadOrStore(key, value)
	return v.(T), loaded
}

// Delete removes key from the cache.
func (c *TypeSafeCache[T]) Delete(key any) {
	c.m.Delete(key)
}

// Range iterates over every key/value pair, stopping early if fn
// returns false.
func (c *TypeSafeCache[T]) Range(fn func(key any, value T) bool) {
	c.m.Range(func(k, v any) bool {
		return fn(k, v.(T))
	})
}
