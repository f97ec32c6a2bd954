package scrollview

// Option configures a scroll view.
type Option func(*options)

// options holds all view configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for view options.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptRowTint = scrollview.NewOptKey("rowTint", scrollview.ColorGray)
//
//	// Set options
//	view, _ := scrollview.NewRecycleView(vp, provider, scrollview.WithOpt(OptRowTint, tint))
//
//	// Read in an extension
//	tint := scrollview.ApplyAndGet(opts, OptRowTint)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages that define their own keys.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// LineCountFlexible asks the layout to pick the line count itself.
// Views reject it; grids need a fixed count.
const LineCountFlexible = 0

var (
	OptScrollAxis        = NewOptKey("scrollAxis", AxisVertical)
	OptLineCount         = NewOptKey("lineCount", 1)
	OptSpacing           = NewOptKey[float32]("spacing", 0)
	OptCrossSpacing      = NewOptKey[float32]("crossSpacing", 0)
	OptPadding           = NewOptKey("padding", Padding{})
	OptInertia           = NewOptKey("inertia", true)
	OptDecelerationRate  = NewOptKey[float32]("decelerationRate", 0.135)
	OptScrollSensitivity = NewOptKey[float32]("scrollSensitivity", 30) // Units per wheel notch
	OptMovement          = NewOptKey("movement", MovementUnrestricted)
	OptDragThreshold     = NewOptKey[float32]("dragThreshold", 4)
	OptDiagnostics       = NewOptKey[DiagnosticFunc]("diagnostics", nil)
)

// Vertical scrolls along the Y axis (the default).
func Vertical() Option { return WithOpt(OptScrollAxis, AxisVertical) }

// Horizontal scrolls along the X axis.
func Horizontal() Option { return WithOpt(OptScrollAxis, AxisHorizontal) }

// LineCount sets how many items share one cross-axis line (grid columns for
// a vertical view, rows for a horizontal one).
func LineCount(n int) Option { return WithOpt(OptLineCount, n) }

// Spacing sets the gap between lines along the scroll axis.
func Spacing(px float32) Option { return WithOpt(OptSpacing, px) }

// CrossSpacing sets the gap between items of one line.
func CrossSpacing(px float32) Option { return WithOpt(OptCrossSpacing, px) }

// Pad sets padding before the first and after the last line.
func Pad(start, end float32) Option { return WithOpt(OptPadding, Padding{Start: start, End: end}) }

// Inertia enables or disables inertial scrolling after a drag.
func Inertia(on bool) Option { return WithOpt(OptInertia, on) }

// DecelerationRate sets the per-second velocity retention for inertia.
func DecelerationRate(rate float32) Option { return WithOpt(OptDecelerationRate, rate) }

// ScrollSensitivity sets how far one wheel notch scrolls.
func ScrollSensitivity(px float32) Option { return WithOpt(OptScrollSensitivity, px) }

// Movement sets the movement type.
func Movement(m MovementType) Option { return WithOpt(OptMovement, m) }

// WithDiagnostics routes diagnostics to fn instead of the package logger.
func WithDiagnostics(fn DiagnosticFunc) Option { return WithOpt(OptDiagnostics, fn) }

// diagnosticsFrom returns the configured sink or the logging default.
func diagnosticsFrom(o options) DiagnosticFunc {
	if fn := GetOpt(o, OptDiagnostics); fn != nil {
		return fn
	}
	return LogDiagnostics
}

// lineLayoutFrom builds a LineLayout from options.
func lineLayoutFrom(o options) LineLayout {
	return LineLayout{
		Axis:         GetOpt(o, OptScrollAxis),
		LineCount:    GetOpt(o, OptLineCount),
		Spacing:      GetOpt(o, OptSpacing),
		CrossSpacing: GetOpt(o, OptCrossSpacing),
		Padding:      GetOpt(o, OptPadding),
	}
}
