package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/chordcompanion/model"
	"github.com/jsphweid/chordcompanion/style"
	"github.com/jsphweid/chordcompanion/suggest"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	suggestMode  string
	suggestKey   string
	suggestStyle string
)

func init() {
	suggestCmd.Flags().StringVarP(&suggestMode, "mode", "m", "", "advanced or simple (default from config)")
	suggestCmd.Flags().StringVarP(&suggestKey, "key", "k", "", "force a key instead of detecting it")
	suggestCmd.Flags().StringVarP(&suggestStyle, "style", "s", "", "weight suggestions by a style")
	rootCmd.AddCommand(suggestCmd)
}

var suggestCmd = &cobra.Command{
	Use:   "suggest CHORD...",
	Short: "Suggests the next chord",
	Long:  `Suggests chords to follow a progression, with a confidence for each`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mode := suggestMode
		if mode == "" {
			mode = cfg.Defaults.Mode
		}

		k := suggest.Key(args, suggestKey)
		res := suggest.Next(args, mode, suggestKey)
		if suggestStyle != "" {
			res = style.Apply(res, k, suggestStyle)
		}
		logger.Debug("suggested", zap.String("key", k), zap.String("mode", mode), zap.Int("count", len(res)))

		fmt.Fprintf(cmd.OutOrStdout(), "key: %v\n", k)
		printSuggestions(cmd.OutOrStdout(), res)
	},
}

func printSuggestions(w io.Writer, res []model.Suggestion) {
	if len(res) == 0 {
		fmt.Fprintln(w, "no suggestions")
		return
	}
	for _, s := range res {
		fmt.Fprintf(w, "%-6v %3.0f%%  %v\n", s.Chord, s.Confidence*100, s.Reason)
	}
}
