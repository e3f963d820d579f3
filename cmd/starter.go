package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordcompanion/starter"
	"github.com/spf13/cobra"
)

var (
	starterKey    string
	starterStyle  string
	starterLength int
	starterSeed   int64
)

func init() {
	starterCmd.Flags().StringVarP(&starterKey, "key", "k", "", "key (default from config)")
	starterCmd.Flags().StringVarP(&starterStyle, "style", "s", "", "one of "+strings.Join(starter.Styles, ", "))
	starterCmd.Flags().IntVarP(&starterLength, "length", "n", 0, "number of chords (default from config)")
	starterCmd.Flags().Int64Var(&starterSeed, "seed", 0, "seed for a repeatable progression")
	rootCmd.AddCommand(starterCmd)
}

var starterCmd = &cobra.Command{
	Use:   "starter",
	Short: "Generates a starter progression",
	Long:  `Generates a randomized progression from common patterns of a style`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		k := orDefault(starterKey, cfg.Defaults.Key)
		st := orDefault(starterStyle, cfg.Defaults.Style)
		length := starterLength
		if length == 0 {
			length = cfg.Defaults.Length
		}
		if length < 1 {
			return fmt.Errorf("length must be at least 1, got %v", length)
		}

		rng := starter.DefaultRandomizer()
		if cmd.Flags().Changed("seed") {
			rng = starter.NewRandomizer(starterSeed)
		}

		res := starter.Generate(k, length, st, rng)
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(res, " - "))
		return nil
	},
}

func orDefault(val string, fallback string) string {
	if val == "" {
		return fallback
	}
	return val
}
