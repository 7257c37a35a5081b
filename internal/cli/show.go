package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/chart"
	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/trips"
	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/viewer"
)

// showOpts holds the command-line flags for the show command.
type showOpts struct {
	input  string // input dataset path
	config string // chart style file (TOML or YAML)
	title  string // title override
	origin string // origin station label override
}

// showCommand creates the show command, which opens the chart in an
// interactive window.
func (c *CLI) showCommand() *cobra.Command {
	var opts showOpts

	cmd := &cobra.Command{
		Use:   "show [dataset]",
		Short: "Display the trip chart in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.input = defaultDataLocation
			if len(args) == 1 {
				opts.input = args[0]
			}
			return c.runShow(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.config, "config", "", "chart style file (.toml, .yaml)")
	cmd.Flags().StringVar(&opts.title, "title", "", "override the chart title")
	cmd.Flags().StringVar(&opts.origin, "origin", "", "override the origin station label")

	return cmd
}

// runShow loads the dataset and hands the chart to the windowed viewer.
// The viewer blocks until the window closes.
func (c *CLI) runShow(ctx context.Context, opts showOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Loading %s", opts.input)

	records, err := trips.LoadFile(opts.input)
	if err != nil {
		return err
	}

	cfg, err := showConfig(opts)
	if err != nil {
		return err
	}

	logger.Info("Opening viewer", "stations", len(records))
	return viewer.Run(records, cfg)
}

// showConfig resolves the chart configuration for the show command.
func showConfig(opts showOpts) (chart.Config, error) {
	cfg := chart.DefaultConfig()
	if opts.config != "" {
		loaded, err := chart.LoadConfig(opts.config)
		if err != nil {
			return chart.Config{}, err
		}
		cfg = loaded
	}
	if opts.title != "" {
		cfg.Title = opts.title
	}
	if opts.origin != "" {
		cfg.Origin = opts.origin
	}
	if err := cfg.Validate(); err != nil {
		return chart.Config{}, err
	}
	return cfg, nil
}
