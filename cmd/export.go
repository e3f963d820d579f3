package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jsphweid/chordcompanion/midi"
	"github.com/jsphweid/chordcompanion/suggest"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportOut   string
	exportTempo float64
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "progression.mid", "file to write")
	exportCmd.Flags().Float64VarP(&exportTempo, "tempo", "t", 0, "beats per minute (default from config)")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(inspectCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export CHORD...",
	Short: "Writes a progression as a MIDI file",
	Long:  `Writes a progression as a MIDI file, one chord per beat`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tempo := exportTempo
		if tempo == 0 {
			tempo = cfg.Defaults.Tempo
		}
		return exportProgression(exportOut, args, tempo)
	},
}

func exportProgression(path string, progression []string, tempo float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %v: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close %v: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := midi.WriteProgression(f, progression, tempo); err != nil {
		return err
	}
	logger.Info("exported", zap.String("path", path), zap.Int("chords", len(progression)), zap.Float64("tempo", tempo))
	return nil
}

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Reads the chords of a MIDI file",
	Long:  `Reads the chords of a MIDI file and detects its key`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		progression, err := midi.ReadProgression(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		k := suggest.Key(progression, "")
		fmt.Fprintf(out, "chords: %v\n", strings.Join(progression, " - "))
		fmt.Fprintf(out, "key: %v\n", k)
		printSuggestions(out, suggest.Next(progression, cfg.Defaults.Mode, k))
		return nil
	},
}
