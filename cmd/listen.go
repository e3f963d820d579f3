package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordcompanion/chord"
	"github.com/jsphweid/chordcompanion/session"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
	"go.uber.org/zap"
)

var (
	listenPort   int
	listenSettle time.Duration
)

func init() {
	listenCmd.Flags().IntVar(&listenPort, "port", 0, "MIDI input port number")
	listenCmd.Flags().DurationVar(&listenSettle, "settle", 150*time.Millisecond, "how long held notes must stay put to count as a chord")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Suggests chords while you play",
	Long:  `Listens to a MIDI keyboard, adds each chord you play and suggests the next one`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer gomidi.CloseDriver()
		in, err := gomidi.InPort(listenPort)
		if err != nil {
			return fmt.Errorf("can't find MIDI input port %v: %w", listenPort, err)
		}

		l := newListener(session.New(cfg.Defaults.Key, cfg.Defaults.Style, nil), cmd.OutOrStdout(), listenSettle)
		stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
			var ch, key, vel uint8
			switch {
			case msg.GetNoteStart(&ch, &key, &vel):
				l.noteOn(key)
			case msg.GetNoteEnd(&ch, &key):
				l.noteOff(key)
			}
		})
		if err != nil {
			return fmt.Errorf("could not listen: %w", err)
		}
		defer stop()

		logger.Info("listening", zap.String("port", in.String()))
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		<-interrupt
		return nil
	},
}

// listener turns held notes into chords once they stop changing.
type listener struct {
	mu        sync.Mutex
	held      map[uint8]bool
	last      string
	session   *session.Session
	out       io.Writer
	debounced func(f func())
}

func newListener(s *session.Session, out io.Writer, settle time.Duration) *listener {
	return &listener{
		held:      make(map[uint8]bool),
		session:   s,
		out:       out,
		debounced: debounce.New(settle),
	}
}

func (l *listener) noteOn(note uint8) {
	l.mu.Lock()
	l.held[note] = true
	l.mu.Unlock()
	l.debounced(l.settle)
}

func (l *listener) noteOff(note uint8) {
	l.mu.Lock()
	delete(l.held, note)
	l.mu.Unlock()
}

func (l *listener) settle() {
	l.mu.Lock()
	defer l.mu.Unlock()

	notes := make([]int, 0, len(l.held))
	for n := range l.held {
		notes = append(notes, int(n))
	}
	name := chord.Identify(notes, l.session.Palette())
	if name == "" || name == l.last {
		return
	}
	l.last = name
	l.session.Add(name)

	logger.Debug("heard chord", zap.String("chord", name), zap.Ints("notes", notes))
	printProgression(l.out, l.session)
	printSuggestions(l.out, l.session.Suggestions())
}
