package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	input   string   // input dataset path
	output  string   // output file path (or base path for multiple formats)
	formats []string // output formats: "png", "svg", "json"
	config  string   // chart style file (TOML or YAML)
	title   string   // title override
	origin  string   // origin station label override
	width   float64  // frame width override
	height  float64  // frame height override
	scale   float64  // raster scale factor
}

// renderCommand creates the render command for batch chart generation.
//
// Default settings:
//   - format: png
//   - scale: 1.0 (use 2.0 for 2x resolution)
//   - geometry and colors: chart defaults, overridable via --config
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [dataset]",
		Short: "Render the trip chart to an image file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.input = args[0]
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, json (comma-separated)")
	cmd.Flags().StringVar(&opts.config, "config", "", "chart style file (.toml, .yaml)")
	cmd.Flags().StringVar(&opts.title, "title", "", "override the chart title")
	cmd.Flags().StringVar(&opts.origin, "origin", "", "override the origin station label")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "frame width (default from config)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "frame height (default from config)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster scale factor for png output")

	return cmd
}

// runRender executes the pipeline and writes each artifact to disk.
func (c *CLI) runRender(ctx context.Context, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", opts.input)
	prog := newProgress(logger)

	result, err := c.newRunner().Execute(ctx, pipeline.Options{
		Input:      opts.input,
		ConfigPath: opts.config,
		Title:      opts.title,
		Origin:     opts.origin,
		Width:      opts.width,
		Height:     opts.height,
		Formats:    opts.formats,
		Scale:      opts.scale,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	for _, format := range opts.formats {
		path := outputPath(opts.output, opts.input, format, len(opts.formats) > 1)
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return err
		}
		printFile(path)
	}

	prog.done(fmt.Sprintf("Rendered %d stations", result.Stats.RecordCount))
	return nil
}

// outputPath derives where to write an artifact. A single format honors
// the -o flag as-is; multiple formats treat it as a base path and append
// the format extension. With no -o flag the path derives from the input
// file name.
func outputPath(output, input, format string, multiple bool) string {
	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	} else if !multiple {
		return base
	}
	ext := filepath.Ext(base)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		base = strings.TrimSuffix(base, ext)
	}
	return base + "." + format
}
