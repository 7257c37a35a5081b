// Package chart computes the radial trip-chart layout and issues drawing
// commands against a backend-neutral Surface.
//
// The chart places an origin station at the center, concentric reference
// rings at fixed count increments, and one radiating spoke per destination
// station whose length is proportional to its trip count. Rendering is a
// single deterministic pass: calling Render twice with the same inputs
// produces the same sequence of drawing commands, so it is safe to invoke
// once per animation frame.
package chart

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/errors"
)

// Default visual constants, matching the published Berkeley chart.
const (
	DefaultWidth    = 600.0
	DefaultHeight   = 600.0
	DefaultMinLen   = 70.0
	DefaultMaxLen   = 210.0
	DefaultTickStep = 5000

	defaultBackground = "#EAEAEA"
	defaultForeground = "#333333"
	defaultTickColor  = "#FFFFFF"
	defaultTitle      = "Bart trips from Downtown Berkeley to other stations in March 2024."
	defaultOrigin     = "Berkeley"
)

// Config holds the visual parameters for a chart. Zero values are not
// usable; start from [DefaultConfig] and override fields, or load overrides
// from a TOML or YAML file with [LoadConfig].
type Config struct {
	// Canvas geometry in pixels.
	Width  float64 `toml:"width" yaml:"width" validate:"gt=0"`
	Height float64 `toml:"height" yaml:"height" validate:"gt=0"`

	// Spoke length bounds: a zero-count station draws at MinLen, the
	// busiest station draws at MaxLen.
	MinLen float64 `toml:"min_len" yaml:"min_len" validate:"gt=0"`
	MaxLen float64 `toml:"max_len" yaml:"max_len" validate:"gtfield=MinLen"`

	// TickStep is the trip-count increment between reference rings.
	TickStep int `toml:"tick_step" yaml:"tick_step" validate:"gt=0"`

	// Colors as hex strings.
	Background string `toml:"background" yaml:"background" validate:"hexcolor"`
	Foreground string `toml:"foreground" yaml:"foreground" validate:"hexcolor"`
	TickColor  string `toml:"tick_color" yaml:"tick_color" validate:"hexcolor"`

	// Title is drawn centered near the bottom edge; Origin is the label
	// drawn at the chart center.
	Title  string `toml:"title" yaml:"title" validate:"required"`
	Origin string `toml:"origin" yaml:"origin" validate:"required"`

	// Font sizes in points.
	TitleFontSize  float64 `toml:"title_font_size" yaml:"title_font_size" validate:"gt=0"`
	OriginFontSize float64 `toml:"origin_font_size" yaml:"origin_font_size" validate:"gt=0"`
	LabelFontSize  float64 `toml:"label_font_size" yaml:"label_font_size" validate:"gt=0"`
}

// DefaultConfig returns the configuration used for the published chart.
func DefaultConfig() Config {
	return Config{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		MinLen:         DefaultMinLen,
		MaxLen:         DefaultMaxLen,
		TickStep:       DefaultTickStep,
		Background:     defaultBackground,
		Foreground:     defaultForeground,
		TickColor:      defaultTickColor,
		Title:          defaultTitle,
		Origin:         defaultOrigin,
		TitleFontSize:  14,
		OriginFontSize: 20,
		LabelFontSize:  10,
	}
}

// LoadConfig reads style overrides from a TOML or YAML file, applied on top
// of [DefaultConfig]. The format is chosen by file extension. The merged
// configuration is validated before being returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	case ".yaml", ".yml":
		data, err := readFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	default:
		return cfg, errors.New(errors.ErrCodeInvalidFormat, "unsupported config format %q (must be .toml, .yaml, or .yml)", filepath.Ext(path))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid chart configuration")
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	return data, nil
}
