package core

// StartBatch/EndBatch bracket a region in which writes to observables
// are coalesced: reactions scheduled during the region only actually run
// once the outermost EndBatch returns, regardless of how many writes or
// nested batches happened inside. Nesting is tracked with a plain
// counter rather than a mutex, since the execution model is
// single-threaded and cooperative, not concurrent.
func StartBatch() {
	global.inBatch++
}

// EndBatch closes one level of batching; when the outermost level closes
// it drains every pending reaction via the installed scheduler.
func EndBatch() {
	global.inBatch--
	if global.inBatch == 0 {
		runReactions()
	}
}

// scheduleReaction enqueues r to run at the end of the current batch (or
// immediately, via the scheduler, if nothing is currently batching). A
// reaction already pending is not enqueued twice; reports whether it was
// newly scheduled, so callers can emit a spy event only on the edge.
func scheduleReaction(r *Reaction) bool {
	if global.scheduled[r] {
		return false
	}
	global.scheduled[r] = true
	global.pendingReactions = append(global.pendingReactions, r)

	if global.inBatch == 0 && !global.isRunningReactions {
		runReactions()
	}
	return true
}

// runReactions drains the pending-reaction queue via the process's
// installed reaction scheduler (composable via SetReactionScheduler),
// which in turn calls runReactionsHelper to do the actual work. This
// indirection exists so an Extension can wrap the whole drain pass
// (timing it, tracing it, catching panics).
func runReactions() {
	if global.isRunningReactions {
		return
	}
	global.reactionScheduler(runReactionsHelper)
}

// runReactionsHelper is the trampoline: it keeps popping the pending
// queue and running each reaction until the queue is empty, bounded by
// MaxReactionIterations to catch reactions that trigger each other
// without end.
func runReactionsHelper() {
	global.isRunningReactions = true
	defer func() { global.isRunningReactions = false }()

	iterations := 0
	for len(global.pendingReactions) > 0 {
		iterations++
		if iterations > global.maxReactionIterations {
			names := make([]string, 0, len(global.pendingReactions))
			for _, r := range global.pendingReactions {
				names = append(names, r.Name)
			}
			global.pendingReactions = nil
			global.scheduled = make(map[*Reaction]bool)
			notifyReactionError(nil, &DivergenceError{Iterations: iterations, Reactions: names})
			return
		}

		batch := global.pendingReactions
		global.pendingReactions = nil
		for _, r := range batch {
			delete(global.scheduled, r)
			r.runReaction()
		}
	}
}
