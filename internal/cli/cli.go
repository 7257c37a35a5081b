// Package cli implements the bartviz command-line interface.
//
// This package provides commands for rendering the radial trip chart to
// image files, showing it in a desktop window, and inspecting the parsed
// dataset. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Generate PNG, SVG, or JSON output from a CSV dataset
//   - show: Open the chart in an interactive window
//   - stations: List the parsed station records
//
// Running the bare binary keeps the original one-file tool's contract:
// zero arguments opens the default dataset interactively, and exactly two
// arguments render input to output in batch mode.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	stderrors "errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/buildinfo"
	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/errors"
	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "bartviz"

	// defaultDataLocation is the dataset used when none is given.
	defaultDataLocation = "berkeley_trips.csv"

	// usageString is printed when the bare-binary argument contract is
	// violated.
	usageString = "USAGE: bartviz [input_loc output_loc]"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered. The root command itself implements the legacy argument
// contract: no arguments opens the default dataset in a window, two
// arguments render input to output.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "bartviz [input_loc output_loc]",
		Short:        "Bartviz draws monthly BART ridership as a radial chart",
		Long:         `Bartviz renders the number of trips from one origin station to every destination station as lines radiating from a center point, with concentric reference rings at fixed trip-count increments.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRoot(cmd, args)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.stationsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// runRoot dispatches the bare-binary modes by argument count.
func (c *CLI) runRoot(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return c.runShow(cmd.Context(), showOpts{input: defaultDataLocation})
	case 2:
		opts := renderOpts{
			input:   args[0],
			output:  args[1],
			formats: []string{formatForOutput(args[1])},
			scale:   pipeline.DefaultScale,
		}
		return c.runRender(cmd.Context(), &opts)
	default:
		cmd.PrintErrln(usageString)
		return errors.New(errors.ErrCodeUsage, "expected 0 or 2 arguments, got %d", len(args))
	}
}

// Execute runs the root command against ctx. Failures other than
// cancellation are reported with a user-facing message before the error
// propagates to the caller for exit-code handling.
func (c *CLI) Execute(ctx context.Context) error {
	err := c.RootCommand().ExecuteContext(ctx)
	if err != nil && !stderrors.Is(err, context.Canceled) {
		printError("%s", errors.UserMessage(err))
	}
	return err
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatPNG}
	}
	return strings.Split(s, ",")
}

// formatForOutput infers the output format from a file extension,
// defaulting to PNG for unrecognized extensions.
func formatForOutput(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if pipeline.ValidFormats[ext] {
		return ext
	}
	return pipeline.FormatPNG
}
