package core

// SpyEventKind enumerates the events the spy bus reports: property
// add/update/remove, reaction runs (scheduled or immediate), and
// reaction errors.
type SpyEventKind string

const (
	SpyAdd               SpyEventKind = "add"
	SpyUpdate            SpyEventKind = "update"
	SpyRemove            SpyEventKind = "remove"
	SpyReaction          SpyEventKind = "reaction"
	SpyScheduledReaction SpyEventKind = "scheduled-reaction"
	SpyError             SpyEventKind = "error"
)

// SpyEvent is a single notification on the module's spy bus.
type SpyEvent struct {
	Kind SpyEventKind
	Name string
	Err  error
}

// SpyListener receives every SpyEvent emitted process-wide.
type SpyListener func(SpyEvent)

var spyListeners []SpyListener

// AddSpyListener registers a listener on the module-wide spy bus and
// returns a Cleanup that unregisters it.
func AddSpyListener(l SpyListener) Cleanup {
	spyListeners = append(spyListeners, l)
	idx := len(spyListeners) - 1
	return func() {
		if idx < len(spyListeners) {
			spyListeners[idx] = nil
		}
	}
}

func emitSpy(e SpyEvent) {
	for _, l := range spyListeners {
		if l != nil {
			l(e)
		}
	}
}
