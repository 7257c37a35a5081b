package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/chart"
	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/chart/sink"
	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/trips"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store run
// results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	opts.setDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, err
	}
	logger := r.logger(opts)

	cfg, err := opts.chartConfig()
	if err != nil {
		return nil, err
	}

	result := &Result{
		Config:    cfg,
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	records, err := r.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Records = records
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.RecordCount = len(records)
	result.Stats.MaxCount = trips.MaxCount(records)

	logger.Info("loaded dataset",
		"stations", len(records),
		"max_count", result.Stats.MaxCount,
		"duration", result.Stats.LoadTime)

	// Stage 2: Render
	renderStart := time.Now()
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := renderFormat(records, cfg, format, opts.Scale)
		if err != nil {
			return nil, err
		}
		result.Artifacts[format] = data
		logger.Debug("rendered artifact", "format", format, "bytes", len(data))
	}
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads and parses the dataset named by opts.Input.
func (r *Runner) Load(ctx context.Context, opts Options) ([]trips.Station, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return trips.LoadFile(opts.Input)
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

func renderFormat(records []trips.Station, cfg chart.Config, format string, scale float64) ([]byte, error) {
	switch format {
	case FormatPNG:
		return sink.RenderPNG(records, cfg, sink.WithScale(scale))
	case FormatSVG:
		return sink.RenderSVG(records, cfg)
	case FormatJSON:
		var buf bytes.Buffer
		if err := trips.WriteJSON(records, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		// Unreachable after ValidateFormats; kept for direct callers.
		return nil, ValidateFormats([]string{format})
	}
}
