// Package logging provides a structured operation logger built on
// log/slog, timing every Wrap call and reporting errors and spy events
// at the appropriate level.
package logging

import (
	"log/slog"
	"time"

	"github.com/pumped-fn/reactor"
	"github.com/pumped-fn/reactor/pkg/core"
)

// Extension logs every reaction-drain pass and administration write at
// debug level, with duration.
type Extension struct {
	reactor.BaseExtension
	logger *slog.Logger
}

// New creates a logging extension writing through logger, or
// slog.Default() if nil.
func New(logger *slog.Logger) *Extension {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extension{logger: logger}
}

func (e *Extension) Name() string { return "logging" }
func (e *Extension) Order() int   { return 10 }

func (e *Extension) Wrap(next func(), op reactor.Operation) func() {
	return func() {
		start := time.Now()
		next()
		e.logger.Debug("operation completed",
			"kind", string(op.Kind),
			"name", op.Name,
			"duration", time.Since(start),
		)
	}
}

func (e *Extension) OnError(err error, op reactor.Operation) {
	e.logger.Error("operation failed", "kind", string(op.Kind), "name", op.Name, "error", err)
}

func (e *Extension) Spy(ev core.SpyEvent) {
	e.logger.Debug("spy", "kind", string(ev.Kind), "name", ev.Name)
}
