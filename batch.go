package reactor

import "github.com/pumped-fn/reactor/pkg/core"

// Batch coalesces every write inside fn into a single reaction-rerun
// pass, no matter how many writes happen or how deeply Batch nests.
var Batch = core.Batch

// Untrack runs fn with dependency tracking suspended: any Observable or
// Computed read inside fn is not recorded as a dependency of whatever
// derivation is currently running.
var Untrack = core.Untrack
