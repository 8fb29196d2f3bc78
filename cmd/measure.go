package cmd

import (
	"fmt"
	"strconv"

	"github.com/philipparndt/photodist/pkg/analysis"
	"github.com/philipparndt/photodist/pkg/geometry"
	"github.com/spf13/cobra"
)

func newMeasureCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "measure x1 y1 x2 y2",
		Short: "Measure distance between two points",
		Long: `Measure the straight-line distance between two pixel positions and report
whether a click at the second position would snap to a point at the first.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			coords := make([]float64, len(args))
			for i, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid coordinate %q: %w", arg, err)
				}
				coords[i] = v
			}

			p1 := geometry.NewPoint(coords[0], coords[1])
			p2 := geometry.NewPoint(coords[2], coords[3])

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Point-to-Point Measurement")
			fmt.Fprintln(out, "==========================")
			fmt.Fprintf(out, "Point 1: %s\n", analysis.FormatPoint(p1))
			fmt.Fprintf(out, "Point 2: %s\n", analysis.FormatPoint(p2))
			fmt.Fprintf(out, "Midpoint: %s\n", analysis.FormatPoint(geometry.Midpoint(p1, p2)))
			fmt.Fprintf(out, "Distance: %s\n", analysis.FormatMeasurement(geometry.Distance(p1, p2), "px"))

			if geometry.AreClose(p1, p2, cfg.Threshold) {
				fmt.Fprintf(out, "Snaps: yes (within %.2f px)\n", cfg.Threshold)
			} else {
				fmt.Fprintf(out, "Snaps: no (threshold %.2f px)\n", cfg.Threshold)
			}
			return nil
		},
	}
}
