package reactor

import "github.com/pumped-fn/reactor/pkg/core"

// ReactionCtx is handed to an Autorun's tracked function on every run: a
// handle to the reaction itself, so the callback can inspect or dispose
// its own reaction mid-run.
type ReactionCtx struct {
	reaction *core.Reaction
	tags     map[string]any
}

// Dispose stops the reaction from ever rerunning again.
func (c *ReactionCtx) Dispose() {
	c.reaction.Dispose()
}

// IsDisposed reports whether Dispose has already been called, either
// from inside the reaction itself or by the Cleanup returned by Autorun.
func (c *ReactionCtx) IsDisposed() bool {
	return c.reaction.IsDisposed()
}

// Name returns the reaction's debug name.
func (c *ReactionCtx) Name() string {
	return c.reaction.Name
}

// GetTag reads a value the reaction was tagged with via WithReactionTag.
func GetTag[T any](c *ReactionCtx, tag Tag[T]) (T, bool) {
	return tag.Get(c.tags)
}
