package core

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInterceptorCancel is returned by an Interceptor to silently cancel
// a write. This is deliberately not treated as a failure:
// Administration.Write returns (false, nil) when it sees this sentinel,
// not an error.
var ErrInterceptorCancel = errors.New("core: change cancelled by interceptor")

// ChangeKind distinguishes the three shapes of change an Administration
// reports to its listeners.
type ChangeKind string

const (
	ChangeAdd    ChangeKind = "add"
	ChangeUpdate ChangeKind = "update"
	ChangeRemove ChangeKind = "remove"
)

// Change describes a single mutation of a named property on an
// Administration, passed through the interceptor chain before being
// applied and then broadcast to listeners afterward.
type Change struct {
	Kind     ChangeKind
	Name     string
	NewValue any
	OldValue any
}

// Interceptor may rewrite or veto a Change before it is applied. To
// cancel, return (nil, ErrInterceptorCancel).
type Interceptor func(c *Change) (*Change, error)

// Listener observes a Change after it has been applied.
type Listener func(c *Change)

type property struct {
	observable   *ObservableValue
	computed     *ComputedValue
	configurable bool
}

func (p *property) get() any {
	if p.computed != nil {
		return p.computed.Get()
	}
	return p.observable.Get()
}

// peek returns the current value without tracking it as a dependency,
// for internal bookkeeping (capturing an old value for a Change record)
// that must not subscribe whatever derivation happens to be running.
func (p *property) peek() any {
	var v any
	Untrack(func() { v = p.get() })
	return v
}

func (p *property) set(newValue any) (bool, error) {
	if p.computed != nil {
		return true, p.computed.Set(newValue)
	}
	return p.observable.Set(newValue)
}

func (p *property) isComputed() bool { return p.computed != nil }

// Administration is the per-object controller for a set of named
// observable/computed properties, exposing one host object's reactive
// properties via a name-keyed map of slots, an interceptor chain, and a
// listener registry.
type Administration struct {
	mu sync.Mutex

	target any
	props  map[string]*property
	order  []string

	interceptors []Interceptor
	listeners    []Listener

	extensible bool
	keysAtom   *Atom
}

// NewAdministration creates an empty Administration bound to target.
// target is only used for error messages and identity; the
// Administration does not reflect over it.
func NewAdministration(target any) *Administration {
	return &Administration{
		target:     target,
		props:      make(map[string]*property),
		extensible: true,
		keysAtom:   NewAtom("keys"),
	}
}

// AddObservableProp adds a named observable property with an initial
// value. Fails with NotExtensibleError if the administration has been
// sealed, or if name is already in use.
func (a *Administration) AddObservableProp(name string, initial any, enhancer Enhancer, equals Equals) error {
	a.mu.Lock()
	if _, exists := a.props[name]; exists {
		a.mu.Unlock()
		return fmt.Errorf("core: property %q already exists", name)
	}
	if !a.extensible {
		a.mu.Unlock()
		return &NotExtensibleError{Target: a.targetName(), Name: name}
	}

	ov, err := NewObservableValue(name, initial, enhancer, equals)
	if err != nil {
		a.mu.Unlock()
		return err
	}
	a.props[name] = &property{observable: ov, configurable: true}
	a.order = append(a.order, name)
	a.mu.Unlock()

	a.notifyAdd(name, initial)
	a.keysAtom.reportChanged()
	return nil
}

// AddComputedProp adds a named computed property.
func (a *Administration) AddComputedProp(name string, compute ComputeFunc, opts ...ComputedOption) error {
	a.mu.Lock()
	if _, exists := a.props[name]; exists {
		a.mu.Unlock()
		return fmt.Errorf("core: property %q already exists", name)
	}
	if !a.extensible {
		a.mu.Unlock()
		return &NotExtensibleError{Target: a.targetName(), Name: name}
	}

	cv := NewComputedValue(name, compute, opts...)
	a.props[name] = &property{computed: cv, configurable: true}
	a.order = append(a.order, name)
	a.mu.Unlock()

	a.keysAtom.reportChanged()
	return nil
}

// Read returns the current value of the named property, tracked as a
// dependency of whatever derivation is currently running.
func (a *Administration) Read(name string) (any, error) {
	a.mu.Lock()
	p, ok := a.props[name]
	a.mu.Unlock()
	if !ok {
		return nil, &IllegalAccessError{Name: name, Detail: "no such observable or computed property"}
	}
	return p.get(), nil
}

// Write sets the named property to a new value, running it through the
// interceptor chain first and notifying listeners after. Returns
// whether the value actually changed (false, nil if an interceptor
// cancelled the write or the prepared value equals the old one).
func (a *Administration) Write(name string, newValue any) (bool, error) {
	a.mu.Lock()
	p, ok := a.props[name]
	interceptors := append([]Interceptor(nil), a.interceptors...)
	a.mu.Unlock()
	if !ok {
		return false, &IllegalAccessError{Name: name, Detail: "no such observable or computed property"}
	}
	if p.isComputed() && p.computed.setter == nil {
		return false, &IllegalAccessError{Name: name, Detail: "computed property has no setter"}
	}

	oldValue := p.peek()
	change := &Change{Kind: ChangeUpdate, Name: name, NewValue: newValue, OldValue: oldValue}
	for _, ic := range interceptors {
		next, err := ic(change)
		if errors.Is(err, ErrInterceptorCancel) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		change = next
	}

	changed, err := p.set(change.NewValue)
	if err != nil || !changed {
		return false, err
	}
	a.notify(change)
	return true, nil
}

// Remove deletes a named property. Fails with NotConfigurableError if
// the property was added with configurable=false (via Lock).
func (a *Administration) Remove(name string) error {
	a.mu.Lock()
	p, ok := a.props[name]
	if !ok {
		a.mu.Unlock()
		return &IllegalAccessError{Name: name, Detail: "no such observable or computed property"}
	}
	if !p.configurable {
		a.mu.Unlock()
		return &NotConfigurableError{Name: name}
	}
	delete(a.props, name)
	for i, n := range a.order {
		if n == name {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	a.mu.Unlock()

	oldValue := p.peek()
	a.notify(&Change{Kind: ChangeRemove, Name: name, OldValue: oldValue})
	a.keysAtom.reportChanged()
	return nil
}

// Lock marks a property non-configurable: it can no longer be removed.
func (a *Administration) Lock(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	p, ok := a.props[name]
	if !ok {
		return &IllegalAccessError{Name: name, Detail: "no such observable or computed property"}
	}
	p.configurable = false
	return nil
}

// PreventExtensions seals the administration against new properties.
func (a *Administration) PreventExtensions() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.extensible = false
}

// Observe registers a listener that is called after every applied
// change, returning a Cleanup that unregisters it.
func (a *Administration) Observe(l Listener) Cleanup {
	a.mu.Lock()
	a.listeners = append(a.listeners, l)
	idx := len(a.listeners) - 1
	a.mu.Unlock()
	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		if idx < len(a.listeners) {
			a.listeners[idx] = nil
		}
	}
}

// Intercept registers an interceptor run (innermost-registered-first, in
// the order added) before every write, returning a Cleanup that
// unregisters it.
func (a *Administration) Intercept(ic Interceptor) Cleanup {
	a.mu.Lock()
	a.interceptors = append(a.interceptors, ic)
	idx := len(a.interceptors) - 1
	a.mu.Unlock()
	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.interceptors = append(a.interceptors[:idx], a.interceptors[idx+1:]...)
	}
}

// Keys returns the administration's property names in insertion order.
// Reading it reports the administration's internal keysAtom as
// observed, so a derivation that reads Keys() reruns whenever a property
// is added or removed.
func (a *Administration) Keys() []string {
	a.keysAtom.reportObserved()
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

func (a *Administration) notifyAdd(name string, value any) {
	a.notify(&Change{Kind: ChangeAdd, Name: name, NewValue: value})
}

func (a *Administration) notify(c *Change) {
	a.mu.Lock()
	listeners := append([]Listener(nil), a.listeners...)
	a.mu.Unlock()
	for _, l := range listeners {
		if l != nil {
			l(c)
		}
	}
	emitSpy(SpyEvent{Kind: spyKindFor(c.Kind), Name: c.Name})
}

func spyKindFor(k ChangeKind) SpyEventKind {
	switch k {
	case ChangeAdd:
		return SpyAdd
	case ChangeRemove:
		return SpyRemove
	default:
		return SpyUpdate
	}
}

func (a *Administration) targetName() string {
	return fmt.Sprintf("%T", a.target)
}
