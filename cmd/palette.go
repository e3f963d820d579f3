package cmd

import (
	"fmt"

	"github.com/jsphweid/chordcompanion/chord"
	"github.com/jsphweid/chordcompanion/key"
	"github.com/jsphweid/chordcompanion/style"
	"github.com/spf13/cobra"
)

var (
	paletteKey   string
	paletteStyle string
)

func init() {
	paletteCmd.Flags().StringVarP(&paletteKey, "key", "k", "", "key (default from config)")
	paletteCmd.Flags().StringVarP(&paletteStyle, "style", "s", "", "style (default from config)")
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(keysCmd)
}

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Lists the chords of a key",
	Long:  `Lists the chords of a key, without the ones the style leaves out`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		k := orDefault(paletteKey, cfg.Defaults.Key)
		st := orDefault(paletteStyle, cfg.Defaults.Style)
		for _, ch := range style.Palette(k, st) {
			fmt.Fprintf(cmd.OutOrStdout(), "%-6v %-10v %v\n", ch, chord.QualityOf(ch), style.Numeral(ch, k))
		}
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Lists supported keys",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, k := range key.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
	},
}
