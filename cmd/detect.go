package cmd

import (
	"fmt"

	"github.com/jsphweid/chordcompanion/key"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(detectCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect CHORD...",
	Short: "Detects the key of a progression",
	Long:  `Detects the key whose chords cover most of the progression`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), key.Detect(args))
	},
}
