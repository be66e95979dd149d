package graphdebug

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// SilentHandler discards everything; useful for tests that want the
// extension wired (so Wrap/OnError/Spy still run) without noisy output.
type SilentHandler struct{}

func NewSilentHandler() *SilentHandler { return &SilentHandler{} }

func (h *SilentHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (h *SilentHandler) Handle(context.Context, slog.Record) error { return nil }
func (h *SilentHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h *SilentHandler) WithGroup(string) slog.Handler             { return h }

// HumanHandler formats "Reaction Error" records with line breaks and a
// banner instead of slog's default single-line format.
type HumanHandler struct {
	writer io.Writer
	level  slog.Level
}

func NewHumanHandler(w io.Writer, level slog.Level) *HumanHandler {
	return &HumanHandler{writer: w, level: level}
}

func (h *HumanHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *HumanHandler) Handle(_ context.Context, record slog.Record) error {
	if record.Message == "Reaction Error" {
		return h.handleReactionError(record)
	}
	if _, err := fmt.Fprintf(h.writer, "[%s] %s\n", record.Level, record.Message); err != nil {
		return err
	}
	var writeErr error
	record.Attrs(func(a slog.Attr) bool {
		if _, err := fmt.Fprintf(h.writer, "  %s: %v\n", a.Key, a.Value); err != nil {
			writeErr = err
			return false
		}
		return true
	})
	return writeErr
}

func (h *HumanHandler) handleReactionError(record slog.Record) error {
	var reaction, errMsg, graph string
	record.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case "reaction":
			reaction = a.Value.String()
		case "error":
			errMsg = a.Value.String()
		case "observer_graph":
			graph = a.Value.String()
		}
		return true
	})

	bar := strings.Repeat("=", 70)
	fmt.Fprintln(h.writer)
	fmt.Fprintln(h.writer, bar)
	fmt.Fprintln(h.writer, "[graphdebug] Reaction Error")
	fmt.Fprintln(h.writer, bar)
	fmt.Fprintf(h.writer, "\nReaction: %s\n", reaction)
	fmt.Fprintf(h.writer, "Error: %s\n", errMsg)
	fmt.Fprintf(h.writer, "\nObserver graph:%s", graph)
	fmt.Fprintln(h.writer, bar)
	fmt.Fprintln(h.writer)
	return nil
}

func (h *HumanHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *HumanHandler) WithGroup(string) slog.Handler      { return h }
