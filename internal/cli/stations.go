package cli

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/chart"
	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/trips"
)

// stationsCommand creates the stations command for inspecting the parsed
// dataset without rendering anything.
func (c *CLI) stationsCommand() *cobra.Command {
	var (
		asJSON      bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "stations [dataset]",
		Short: "List the station records in a dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := defaultDataLocation
			if len(args) == 1 {
				input = args[0]
			}
			return c.runStations(cmd.Context(), input, asJSON, interactive)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit records as JSON")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse records in an interactive list")

	return cmd
}

// runStations loads the dataset and prints or browses the records.
// Records arrive sorted by ascending trip count, which is the order the
// chart draws them in.
func (c *CLI) runStations(ctx context.Context, input string, asJSON, interactive bool) error {
	logger := loggerFromContext(ctx)
	logger.Debug("Loading dataset", "input", input)

	records, err := trips.LoadFile(input)
	if err != nil {
		return err
	}

	if asJSON {
		return trips.WriteJSON(records, os.Stdout)
	}

	if interactive {
		model := NewStationListModel(records)
		_, err := tea.NewProgram(model).Run()
		return err
	}

	printSuccess("%d stations in %s", len(records), input)
	for _, r := range records {
		printDetail("%-28s %-6s %s", r.Name, r.Code, StyleNumber.Render(chart.FormatThousands(r.Count)))
	}
	return nil
}
