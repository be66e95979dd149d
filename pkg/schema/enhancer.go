package schema

import "fmt"

// Enhancer mirrors core.Enhancer's shape without importing pkg/core
// (schema has no business depending on the engine): a function that
// validates/transforms a proposed new value before it is accepted.
type Enhancer func(newValue, oldValue any, name string) (any, error)

// AsEnhancer adapts a Schema into an Enhancer: the proposed new value is
// validated (and possibly coerced — e.g. NumberSchema narrowing to
// float64) before being accepted, rejecting the write with the
// schema's ValidationError on failure. This gives pkg/schema's
// validators a concrete home in the reactivity runtime without making
// slices/maps themselves reactive (that stays out of scope).
func AsEnhancer(s Schema) Enhancer {
	return func(newValue, _ any, name string) (any, error) {
		validated, err := s.Validate(newValue)
		if err != nil {
			if ve, ok := err.(*ValidationError); ok {
				return nil, fmt.Errorf("core: property %q rejected: %w", name, ve)
			}
			return nil, fmt.Errorf("core: property %q rejected: %w", name, err)
		}
		return validated, nil
	}
}
