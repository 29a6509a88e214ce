package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // The slog attribute key used for filtering tags

// filteringHandler wraps a base slog.Handler and drops records by tag,
// package or file according to the processed Config.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{
		baseHandler: base,
		cfg:         cfg,
	}
}

// Enabled checks if the level is enabled by the base handler.
func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

// passes applies the enable/disable pair for one dimension. Disabled wins;
// a non-empty enabled set admits only its members.
func passes(enabled, disabled map[string]struct{}, key string) bool {
	key = strings.ToLower(key)
	if disabled != nil {
		if _, found := disabled[key]; found {
			return false
		}
	}
	if enabled != nil {
		if _, found := enabled[key]; !found {
			return false
		}
	}
	return true
}

// recordSource returns the package directory and file name of the record's caller.
func recordSource(r slog.Record) (pkg, file string, ok bool) {
	if r.PC == 0 {
		return "", "", false
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()
	if frame.File == "" {
		return "", "", false
	}
	return filepath.Base(filepath.Dir(frame.File)), filepath.Base(frame.File), true
}

// recordTag returns the value of the tag attribute, if present.
func recordTag(r slog.Record) (tag string, ok bool) {
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = a.Value.String()
			ok = true
			return false
		}
		return true
	})
	return tag, ok
}

// Handle applies filtering logic before passing the record to the base handler.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.baseHandler.Handle(ctx, r)
	}

	if pkg, file, ok := recordSource(r); ok {
		if !passes(h.cfg.enabledPackagesSet, h.cfg.disabledPackagesSet, pkg) {
			h.trace("package %q filtered: %s", pkg, r.Message)
			return nil
		}
		if !passes(h.cfg.enabledFilesSet, h.cfg.disabledFilesSet, file) {
			h.trace("file %q filtered: %s", file, r.Message)
			return nil
		}
	}

	if tag, ok := recordTag(r); ok {
		if !passes(h.cfg.enabledTagsSet, h.cfg.disabledTagsSet, tag) {
			h.trace("tag %q filtered: %s", tag, r.Message)
			return nil
		}
	} else if h.cfg.enabledTagsSet != nil {
		// Untagged records are dropped once specific tags are requested.
		h.trace("untagged record filtered: %s", r.Message)
		return nil
	}

	return h.baseHandler.Handle(ctx, r)
}

func (h *filteringHandler) trace(format string, args ...interface{}) {
	if debugFilter {
		fmt.Fprintf(os.Stderr, "[FILTER] "+format+"\n", args...)
	}
}

// WithAttrs returns a new handler with attributes added.
func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
}

// WithGroup returns a new handler with a group added.
func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
}
