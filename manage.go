package reactor

import "github.com/pumped-fn/reactor/pkg/core"

// administrations is the external side-table standing in for a hidden
// administration handle: Go has no identity-keyed hidden slot on
// arbitrary values, so the handle lives here instead, keyed by the
// target's own pointer identity.
var administrations = NewTypeSafeCache[*core.Administration]()

// Manage creates (or returns the existing) Administration for target,
// which must be a pointer or other comparable reference so repeated
// calls with "the same" logical object return the same Administration.
func Manage(target any) *core.Administration {
	if admin, ok := administrations.Load(target); ok {
		return admin
	}
	admin := core.NewAdministration(target)
	existing, loaded := administrations.LoadOrStore(target, admin)
	if loaded {
		return existing
	}
	return admin
}

// AdministrationOf returns target's Administration, if Manage has
// already been called for it.
func AdministrationOf(target any) (*core.Administration, bool) {
	return administrations.Load(target)
}

// Unmanage drops target's Administration from the side-table, letting
// it and everything it observes be garbage collected.
func Unmanage(target any) {
	administrations.Delete(target)
}
