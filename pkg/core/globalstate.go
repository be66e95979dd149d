package core

import "sync"

// ReactionErrorHandler is invoked when a Reaction's tracked function
// panics or returns an error, after the exception has been cached on the
// reaction. Returning lets the runtime keep running; the handler itself
// must not panic.
type ReactionErrorHandler func(r *Reaction, err error)

// globalState is the single process-wide record the runtime's
// cooperative, single-threaded execution model threads every operation
// through: there is exactly one logical thread of execution at a time.
type globalState struct {
	mu sync.Mutex

	trackingDerivation Derivation
	inBatch            int
	isRunningReactions bool
	runID              uint64

	pendingReactions []*Reaction
	scheduled        map[*Reaction]bool

	reactionScheduler func(run func())
	errorHandlers     []ReactionErrorHandler

	maxReactionIterations int
	strictInvariants      bool
}

func newGlobalState() *globalState {
	return &globalState{
		scheduled:             make(map[*Reaction]bool),
		reactionScheduler:     func(run func()) { run() },
		maxReactionIterations: 100,
		strictInvariants:      true,
	}
}

var global = newGlobalState()

// Configure adjusts the process-wide runtime configuration. It is safe
// to call before any observables are created; calling it mid-run only
// affects subsequent batches.
func Configure(maxReactionIterations int, strictInvariants bool) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if maxReactionIterations > 0 {
		global.maxReactionIterations = maxReactionIterations
	}
	global.strictInvariants = strictInvariants
}

// StrictInvariants reports whether the runtime currently raises
// IllegalAccessError/NotConfigurableError/NotExtensibleError
// synchronously (development mode) rather than tolerating them
// (production mode).
func StrictInvariants() bool {
	global.mu.Lock()
	defer global.mu.Unlock()
	return global.strictInvariants
}

// SetReactionScheduler installs a new reaction scheduler built by
// wrapping the previously installed one: the wrapper closes over "next"
// (the previous scheduler) so installing N schedulers produces an
// innermost-runs-first chain.
func SetReactionScheduler(wrap func(next func(run func())) func(run func())) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.reactionScheduler = wrap(global.reactionScheduler)
}

// AddReactionErrorHandler registers a handler invoked whenever a
// reaction's tracked function raises an error. This is the module's
// error bus.
func AddReactionErrorHandler(h ReactionErrorHandler) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.errorHandlers = append(global.errorHandlers, h)
}

func notifyReactionError(r *Reaction, err error) {
	global.mu.Lock()
	handlers := append([]ReactionErrorHandler(nil), global.errorHandlers...)
	global.mu.Unlock()
	for _, h := range handlers {
		h(r, err)
	}
}

func nextRunID() uint64 {
	global.runID++
	return global.runID
}
