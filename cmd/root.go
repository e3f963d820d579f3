package cmd

import (
	"errors"
	"fmt"

	"github.com/jsphweid/chordcompanion/config"
	"github.com/jsphweid/chordcompanion/constants"
	"github.com/jsphweid/chordcompanion/logging"
	"github.com/jsphweid/chordcompanion/trial"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ErrTrialExpired = errors.New("trial expired")

var (
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "chords",
	Short: "Chord progression companion",
	Long: `Suggests what chord comes next and writes starter progressions.

Example usage:
  chords suggest C F            # what follows C - F
  chords starter -k Am -s sad   # a sad four chord progression in A minor
  chords session                # build a progression interactively`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return err
		}

		if cfg.Trial.Enabled {
			gate := trial.New(cfg.Trial.Dir, cfg.Trial.Days)
			if !gate.Valid() {
				logger.Warn("trial ended", zap.String("record", gate.Path), zap.Float64("days", gate.Days))
				return fmt.Errorf("%w: the %v day trial has ended", ErrTrialExpired, gate.Days)
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", constants.GetConfigPath(), "config file")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
