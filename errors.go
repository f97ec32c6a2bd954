package scrollview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Configuration and runtime errors reported by views.
var (
	// ErrFlexibleLineCount is returned when a view is configured with a
	// flexible (auto) line count. Only fixed counts are supported.
	ErrFlexibleLineCount = errors.New("scrollview: flexible line count is not supported")

	// ErrInvalidLineCount is returned for a negative line count.
	ErrInvalidLineCount = errors.New("scrollview: line count must be positive")

	// ErrMissingCallback is returned when an item provider callback is unset.
	ErrMissingCallback = errors.New("scrollview: item provider callback is nil")

	// ErrIndexOutOfRange is returned when a caller-supplied index is invalid.
	ErrIndexOutOfRange = errors.New("scrollview: index out of range")

	// ErrProviderMiss is reported when the provider returns no item for an
	// index it claims is valid.
	ErrProviderMiss = errors.New("scrollview: provider returned no item")

	// ErrDestroyed is returned by operations on a destroyed view.
	ErrDestroyed = errors.New("scrollview: view destroyed")
)

// validateLineCount rejects flexible and non-positive line counts.
func validateLineCount(n int) error {
	switch {
	case n == LineCountFlexible:
		return ErrFlexibleLineCount
	case n < 0:
		return fmt.Errorf("line count %d: %w", n, ErrInvalidLineCount)
	}
	return nil
}

// DiagnosticKind classifies a diagnostic.
type DiagnosticKind uint8

const (
	DiagConfig      DiagnosticKind = iota // Misconfiguration; operation aborted
	DiagOutOfRange                        // Caller-supplied index is invalid
	DiagProviderMiss                      // Slot skipped, provider returned nil
	DiagEmpty                             // Collection has no items
)

// String returns a short name for the kind.
func (k DiagnosticKind) String() string {
	switch k {
	case DiagConfig:
		return "config"
	case DiagOutOfRange:
		return "out_of_range"
	case DiagProviderMiss:
		return "provider_miss"
	case DiagEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Diagnostic describes a non-fatal problem noticed by a view.
type Diagnostic struct {
	Kind  DiagnosticKind
	Index int // Affected index, if any
	Err   error
}

// DiagnosticFunc receives diagnostics. It is called synchronously on the
// thread that drives the view.
type DiagnosticFunc func(Diagnostic)

// LogDiagnostics is the default sink: it writes each diagnostic to the
// package logger.
func LogDiagnostics(d Diagnostic) {
	level := slog.LevelWarn
	switch d.Kind {
	case DiagConfig:
		level = slog.LevelError
	case DiagEmpty:
		level = slog.LevelInfo
	}
	logger.Log(context.Background(), level, "scrollview diagnostic",
		"kind", d.Kind.String(),
		"index", d.Index,
		"err", d.Err)
}
