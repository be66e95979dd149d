package core

// Enhancer runs over a value before it is accepted into an
// ObservableValue, letting a caller validate or transform it. It
// receives the proposed new value, the currently stored value, and the
// atom's debug name (for error messages). Returning an error rejects the
// write; the ObservableValue keeps its previous value.
type Enhancer func(newValue, oldValue any, name string) (any, error)

// ReferenceEnhancer is the identity enhancer: it accepts any value
// unmodified. This is the default for ObservableValue.
func ReferenceEnhancer(newValue, _ any, _ string) (any, error) {
	return newValue, nil
}

// Equals compares two stored values for the purposes of deciding
// whether a write actually changed anything. The zero value compares
// with ==, which panics for non-comparable types (slices, maps,
// funcs) — callers storing those must supply their own Equals.
type Equals func(a, b any) bool

func defaultEquals(a, b any) bool {
	defer func() { recover() }()
	return a == b
}

// ObservableValue is a single mutable observable slot: a tracked value
// with observers.
type ObservableValue struct {
	Atom
	value    any
	enhancer Enhancer
	equals   Equals
}

// NewObservableValue creates an ObservableValue, running the initial
// value through the enhancer once, so a validating enhancer applies to
// the initial value too.
func NewObservableValue(name string, initial any, enhancer Enhancer, equals Equals) (*ObservableValue, error) {
	if enhancer == nil {
		enhancer = ReferenceEnhancer
	}
	if equals == nil {
		equals = defaultEquals
	}
	enhanced, err := enhancer(initial, nil, name)
	if err != nil {
		return nil, err
	}
	return &ObservableValue{
		Atom:     Atom{Name: name, lowest: UpToDate},
		value:    enhanced,
		enhancer: enhancer,
		equals:   equals,
	}, nil
}

// Get returns the current value, reporting this atom as observed by the
// currently tracking derivation, if any.
func (o *ObservableValue) Get() any {
	o.reportObserved()
	return o.value
}

// Set stores a new value. If, after running the enhancer, the new value
// equals the old one, nothing is reported as changed. Returns whether
// the value actually changed.
func (o *ObservableValue) Set(newValue any) (bool, error) {
	prepared, changed, err := o.prepareNewValue(newValue)
	if err != nil || !changed {
		return false, err
	}
	o.setNewValue(prepared)
	return true, nil
}

func (o *ObservableValue) prepareNewValue(newValue any) (any, bool, error) {
	enhanced, err := o.enhancer(newValue, o.value, o.Name)
	if err != nil {
		return nil, false, err
	}
	if o.equals(o.value, enhanced) {
		return enhanced, false, nil
	}
	return enhanced, true, nil
}

func (o *ObservableValue) setNewValue(newValue any) {
	o.value = newValue
	o.reportChanged()
}
