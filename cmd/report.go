package cmd

import (
	"github.com/philipparndt/photodist/internal/journal"
	"github.com/philipparndt/photodist/internal/report"
	"github.com/spf13/cobra"
)

func newReportCmd(shared *options) *cobra.Command {
	var opts report.Options

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize the points and connections logs",
		Long:  "Read the points and connections logs written by a measuring session and print every line with summary statistics.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := shared.resolve(cmd)
			if err != nil {
				return err
			}

			points, err := journal.ReadPoints(cfg.PointsFile)
			if err != nil {
				return err
			}
			connections, err := journal.ReadConnections(cfg.ConnectionsFile)
			if err != nil {
				return err
			}

			return report.Render(cmd.OutOrStdout(), points, connections, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Top, "top", "n", 5, "number of longest and shortest lines to list")
	cmd.Flags().Float64Var(&opts.MinLength, "min", 0, "list lines at least this long (with --max)")
	cmd.Flags().Float64Var(&opts.MaxLength, "max", 0, "list lines at most this long")
	return cmd
}
