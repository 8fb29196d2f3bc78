package cmd

import (
	"fmt"
	"os"

	"github.com/philipparndt/photodist/internal/app"
	"github.com/philipparndt/photodist/internal/config"
	"github.com/philipparndt/photodist/internal/logging"
	"github.com/philipparndt/photodist/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options collects the flag values shared by all commands
type options struct {
	configPath string
	values     config.Config
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &options{values: *config.Default()}

	rootCmd := &cobra.Command{
		Use:   "photodist",
		Short: "Measure pixel distances on a photograph",
		Long: `photodist opens a photograph in a window and measures straight-line distances
between clicked points. Clicks within the snap threshold of an existing point reuse it.
Every point is appended to the points log and every measured line to the connections log.`,
		Version:       version.GetFullVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			return app.Run(cfg, logger)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	flags.StringVarP(&opts.values.Image, "image", "i", opts.values.Image, "background photograph")
	flags.StringVar(&opts.values.Font, "font", opts.values.Font, "TTF font for labels (default: embedded Go Regular)")
	flags.Float64Var(&opts.values.FontSize, "font-size", opts.values.FontSize, "label font size in pixels")
	flags.Float64VarP(&opts.values.Threshold, "threshold", "t", opts.values.Threshold, "snap distance in pixels")
	flags.Float64Var(&opts.values.LabelOffset, "label-offset", opts.values.LabelOffset, "label distance above the line midpoint")
	flags.StringVar(&opts.values.PointsFile, "points", opts.values.PointsFile, "points log file")
	flags.StringVar(&opts.values.ConnectionsFile, "connections", opts.values.ConnectionsFile, "connections log file")
	flags.StringVar(&opts.values.Snapshot, "snapshot", opts.values.Snapshot, "PNG written when pressing S")
	flags.BoolVar(&opts.values.Watch, "watch", opts.values.Watch, "reload the photograph when it changes")
	flags.StringVar(&opts.values.LogLevel, "log-level", opts.values.LogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newMeasureCmd(opts))
	rootCmd.AddCommand(newReportCmd(opts))
	rootCmd.AddCommand(newReplayCmd(opts))

	return rootCmd
}

// resolve merges defaults, the config file and explicitly set flags, in that order
func (o *options) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.Override(&o.values, cmd.Flags().Changed)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup resolves the configuration and builds the logger
func (o *options) setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Configuration resolved", zap.Any("config", cfg))

	return cfg, logger, nil
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
