package reactor

import "github.com/pumped-fn/reactor/pkg/meta"

// Tag is a type-safe key for metadata attached to an Observable,
// Computed, or Administration. Adapted from pumped-go/tag.go's
// Tag[T]{key string}, retargeted from executor/scope tags to
// atom/derivation/administration debug metadata.
type Tag[T any] struct {
	key string
}

// NewTag creates a new tag bound to the given key.
func NewTag[T any](key string) Tag[T] {
	return Tag[T]{key: key}
}

// Key returns the tag's underlying key, mostly useful for debugging.
func (t Tag[T]) Key() string { return t.key }

// Get reads the tag's value out of a metadata bag.
func (t Tag[T]) Get(bag map[string]any) (T, bool) {
	v, err := meta.Get[T](bag, t.key)
	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// Set stores the tag's value into a metadata bag.
func (t Tag[T]) Set(bag map[string]any, v T) {
	meta.Set(bag, t.key, v)
}

// GetOrDefault reads the tag's value, or a fallback if unset.
func (t Tag[T]) GetOrDefault(bag map[string]any, fallback T) T {
	if v, ok := t.Get(bag); ok {
		return v
	}
	return fallback
}

// NameTag is the conventional tag a debug name is stored under.
var NameTag = NewTag[string]("name")
