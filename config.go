package scrollview

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the file form of view options, read from a TOML file:
//
//	[view]
//	axis = "vertical"
//	line_count = 3
//	spacing = 10
//	padding_start = 8
//
//	[log]
//	verbose = true
type Config struct {
	View ViewConfig `toml:"view"`
	Log  LogConfig  `toml:"log"`
}

// ViewConfig holds scroll view settings.
type ViewConfig struct {
	Axis         string  `toml:"axis"` // "vertical" or "horizontal"
	LineCount    int     `toml:"line_count"`
	Spacing      float32 `toml:"spacing"`
	CrossSpacing float32 `toml:"cross_spacing"`
	PaddingStart float32 `toml:"padding_start"`
	PaddingEnd   float32 `toml:"padding_end"`

	Inertia           bool    `toml:"inertia"`
	DecelerationRate  float32 `toml:"deceleration_rate"`
	ScrollSensitivity float32 `toml:"scroll_sensitivity"`
	Movement          string  `toml:"movement"` // "unrestricted" or "clamped"
	DragThreshold     float32 `toml:"drag_threshold"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Verbose bool `toml:"verbose"`
}

// DefaultConfig returns the configuration matching the option defaults.
func DefaultConfig() Config {
	return Config{
		View: ViewConfig{
			Axis:              OptScrollAxis.Default().String(),
			LineCount:         OptLineCount.Default(),
			Inertia:           OptInertia.Default(),
			DecelerationRate:  OptDecelerationRate.Default(),
			ScrollSensitivity: OptScrollSensitivity.Default(),
			Movement:          OptMovement.Default().String(),
			DragThreshold:     OptDragThreshold.Default(),
		},
	}
}

// LoadConfig reads a TOML config file. Keys missing from the file keep
// their defaults. If the file doesn't exist, returns the default config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML data over the defaults and validates it.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	if _, err := cfg.Options(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Marshal encodes the config as TOML.
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Options converts the view section into options for NewRecycleView or
// NewDefaultView.
func (c Config) Options() ([]Option, error) {
	v := c.View

	var axis Axis
	switch strings.ToLower(v.Axis) {
	case "", "vertical":
		axis = AxisVertical
	case "horizontal":
		axis = AxisHorizontal
	default:
		return nil, fmt.Errorf("view.axis %q: must be vertical or horizontal", v.Axis)
	}

	var movement MovementType
	switch strings.ToLower(v.Movement) {
	case "", "unrestricted":
		movement = MovementUnrestricted
	case "clamped":
		movement = MovementClamped
	default:
		return nil, fmt.Errorf("view.movement %q: must be unrestricted or clamped", v.Movement)
	}

	if err := validateLineCount(v.LineCount); err != nil {
		return nil, fmt.Errorf("view.line_count: %w", err)
	}

	return []Option{
		WithOpt(OptScrollAxis, axis),
		LineCount(v.LineCount),
		Spacing(v.Spacing),
		CrossSpacing(v.CrossSpacing),
		Pad(v.PaddingStart, v.PaddingEnd),
		Inertia(v.Inertia),
		DecelerationRate(v.DecelerationRate),
		ScrollSensitivity(v.ScrollSensitivity),
		Movement(movement),
		WithOpt(OptDragThreshold, v.DragThreshold),
	}, nil
}

// ApplyLogging sets the package log level from the log section.
func (c Config) ApplyLogging() {
	SetVerbose(c.Log.Verbose)
}
