package reactor

import (
	"sort"
	"sync"

	"github.com/pumped-fn/reactor/pkg/core"
)

// Runtime holds the registered Extensions and the RuntimeConfig for the
// process. There is exactly one: reactivity tracking is itself a
// process-wide singleton (pkg/core's globalState), so Runtime just gives
// extensions and configuration a place to live rather than modeling
// multiple independent runtimes.
type Runtime struct {
	mu         sync.Mutex
	extensions []Extension
	config     RuntimeConfig
}

var defaultRuntime = &Runtime{config: DefaultRuntimeConfig()}

// Default returns the process-wide Runtime.
func Default() *Runtime { return defaultRuntime }

// Use registers an Extension, composing its Wrap around the reaction
// scheduler and subscribing its OnError/Spy hooks. Each Use call wraps
// the previously installed scheduler, so the most recently registered
// extension's Wrap runs innermost.
func (rt *Runtime) Use(ext Extension) error {
	rt.mu.Lock()
	rt.extensions = append(rt.extensions, ext)
	sort.SliceStable(rt.extensions, func(i, j int) bool {
		return rt.extensions[i].Order() < rt.extensions[j].Order()
	})
	rt.mu.Unlock()

	if err := ext.Init(rt); err != nil {
		return err
	}

	core.SetReactionScheduler(func(next func(run func())) func(run func()) {
		return func(run func()) {
			wrapped := ext.Wrap(func() { run() }, Operation{Kind: OpReactionDrain})
			next(wrapped)
		}
	})
	core.AddReactionErrorHandler(func(r *core.Reaction, err error) {
		name := "<divergence>"
		if r != nil {
			name = r.Name
		}
		ext.OnError(err, Operation{Kind: OpReactionDrain, Name: name})
	})
	core.AddSpyListener(ext.Spy)
	return nil
}

// Configure applies config to the runtime and pushes the
// reaction-iteration bound and invariant-strictness flag into pkg/core.
func (rt *Runtime) Configure(config RuntimeConfig) {
	rt.mu.Lock()
	rt.config = config
	rt.mu.Unlock()
	core.Configure(config.MaxReactionIterations, config.StrictInvariants)
}

// Config returns the runtime's current configuration.
func (rt *Runtime) Config() RuntimeConfig {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.config
}

// Dispose runs every registered extension's Dispose hook, in reverse
// registration order.
func (rt *Runtime) Dispose() error {
	rt.mu.Lock()
	exts := append([]Extension(nil), rt.extensions...)
	rt.mu.Unlock()

	var firstErr error
	for i := len(exts) - 1; i >= 0; i-- {
		if err := exts[i].Dispose(rt); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Use registers ext on the default Runtime.
func Use(ext Extension) error { return defaultRuntime.Use(ext) }
