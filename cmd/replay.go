package cmd

import (
	"fmt"
	"os"

	"github.com/philipparndt/photodist/internal/journal"
	"github.com/philipparndt/photodist/internal/measurement"
	"github.com/philipparndt/photodist/internal/replay"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newReplayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <script>",
		Short: "Run a recorded click sequence without a window",
		Long: `Replay a script of cursor moves and clicks through a measuring session and write
the same points and connections logs an interactive session would.

Script lines:
  move X Y    move the cursor to (X, Y)
  click       press the left mouse button
  close       stop the session
Blank lines and lines starting with # are ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open replay script: %w", err)
			}
			defer file.Close()

			events, err := replay.Parse(file)
			if err != nil {
				return err
			}

			files := journal.New(cfg.PointsFile, cfg.ConnectionsFile, logger)
			files.Reset()
			session := measurement.NewSession(cfg.Threshold, files, logger)

			handled, err := replay.Run(session, events)
			if err != nil {
				return fmt.Errorf("replay stopped after %d events: %w", handled, err)
			}

			logger.Info("Replay finished",
				zap.Int("events", handled),
				zap.Int("points", session.Points.Len()),
				zap.Int("connections", session.Connections.Len()))
			fmt.Fprintf(cmd.OutOrStdout(), "%d points, %d connections\n", session.Points.Len(), session.Connections.Len())
			return nil
		},
	}
}
