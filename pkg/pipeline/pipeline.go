// Package pipeline provides the core load → render pipeline for bartviz.
//
// This package implements the complete dataset-to-artifact flow shared by
// the CLI commands and the interactive viewer. By centralizing this logic,
// every entry point loads, configures, and renders the same way.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Load: Parse the CSV dataset into ordered station records
//  2. Render: Draw the radial chart in one or more output formats
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Input:   "berkeley_trips.csv",
//	    Formats: []string{pipeline.FormatPNG},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data := result.Artifacts[pipeline.FormatPNG]
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/chart"
	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/errors"
	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/trips"
)

// DefaultScale is the default raster scale factor.
const DefaultScale = 1.0

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatSVG:  true,
	FormatJSON: true,
}

// ValidateFormats checks that all requested formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if !ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: png, svg, json)", f)
		}
	}
	return nil
}

// Options contains all configuration for a pipeline run.
type Options struct {
	// Input is the path of the CSV dataset.
	Input string

	// ConfigPath optionally names a TOML or YAML chart style file applied
	// on top of chart.DefaultConfig.
	ConfigPath string

	// Overrides applied after the style file. Zero/empty values leave the
	// configured value untouched.
	Title  string
	Origin string
	Width  float64
	Height float64

	// Formats lists the artifacts to produce; defaults to PNG.
	Formats []string

	// Scale is the raster scale factor for PNG output; defaults to 1.0.
	Scale float64

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger
}

// setDefaults applies defaults for unset options.
func (o *Options) setDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
}

// chartConfig resolves the effective chart configuration: defaults, then
// the style file, then explicit overrides, validated as a whole.
func (o *Options) chartConfig() (chart.Config, error) {
	cfg := chart.DefaultConfig()
	if o.ConfigPath != "" {
		var err error
		cfg, err = chart.LoadConfig(o.ConfigPath)
		if err != nil {
			return cfg, err
		}
	}

	if o.Title != "" {
		cfg.Title = o.Title
	}
	if o.Origin != "" {
		cfg.Origin = o.Origin
	}
	if o.Width != 0 {
		cfg.Width = o.Width
	}
	if o.Height != 0 {
		cfg.Height = o.Height
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Records is the loaded dataset, sorted ascending by count.
	Records []trips.Station

	// Config is the effective chart configuration used for rendering.
	Config chart.Config

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RecordCount int
	MaxCount    int
	LoadTime    time.Duration
	RenderTime  time.Duration
}
