package core

// resetForTest replaces every package-level singleton with a fresh
// instance so tests don't leak pending reactions, spy listeners, or
// debug-graph edges into one another. Needed because GlobalState is a
// genuine process-wide singleton with no per-test constructor.
func resetForTest() {
	global = newGlobalState()
	spyListeners = nil
	debugGraph = &ReactiveGraph{
		downstream: make(map[string][]string),
		upstream:   make(map[string][]string),
	}
}
