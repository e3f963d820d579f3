package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jsphweid/chordcompanion/chord"
	"github.com/jsphweid/chordcompanion/key"
	"github.com/jsphweid/chordcompanion/model"
	"github.com/jsphweid/chordcompanion/util"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

var (
	ErrNoChords = errors.New("no recognizable chords")
	ErrBadTempo = errors.New("tempo must be positive")
)

const (
	octave   = 4
	velocity = 89 // 0.7 of full scale
	channel  = 0

	// chords sound for this share of a beat
	sustain = 0.9
)

// Palette is every chord any key knows about, in catalog order.
func Palette() []string {
	var all []string
	for _, k := range key.Catalog {
		all = append(all, k.Chords...)
	}
	return util.Unique(all)
}

// WriteProgression writes one chord per quarter note as a Standard MIDI File.
// Unknown chords become a beat of silence.
func WriteProgression(w io.Writer, progression model.Progression, tempo float64) error {
	if len(progression) == 0 {
		return ErrNoChords
	}
	if tempo <= 0 {
		return fmt.Errorf("%w, got %v", ErrBadTempo, tempo)
	}

	s := smf.New()
	clock := smf.MetricTicks(960)
	s.TimeFormat = clock
	beat := clock.Ticks4th()
	held := uint32(float64(beat) * sustain)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(tempo))

	var pending uint32
	for _, ch := range progression {
		notes := chord.Voicing(ch, octave)
		if len(notes) == 0 {
			pending += beat
			continue
		}

		for i, n := range notes {
			delta := uint32(0)
			if i == 0 {
				delta = pending
			}
			tr.Add(delta, gomidi.NoteOn(channel, n, velocity))
		}
		for i, n := range notes {
			delta := uint32(0)
			if i == 0 {
				delta = held
			}
			tr.Add(delta, gomidi.NoteOff(channel, n))
		}
		pending = beat - held
	}
	tr.Close(pending)

	if err := s.Add(tr); err != nil {
		return fmt.Errorf("could not add track: %w", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("could not write midi: %w", err)
	}
	return nil
}

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// smf can panic on malformed input
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = fmt.Errorf("error parsing midi file %v: %v", filepath, r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file: %w", err)
	}
	return ReadMidi(dat)
}

func ReadMidi(dat []byte) (*smf.SMF, error) {
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("error parsing midi: %w", err)
	}
	return res, nil
}

// Progression names the chords struck at each onset of a parsed file.
// Notes starting on the same tick form one chord.
func Progression(s *smf.SMF) (model.Progression, error) {
	onsets := make(map[int64][]int)
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var ch, note, vel uint8
			if event.Message.GetNoteOn(&ch, &note, &vel) && vel > 0 {
				onsets[absTicks] = append(onsets[absTicks], int(note))
			}
		}
	}

	ticks := make([]int64, 0, len(onsets))
	for t := range onsets {
		ticks = append(ticks, t)
	}
	sort.Slice(ticks, func(i, j int) bool {
		return ticks[i] < ticks[j]
	})

	palette := Palette()
	var res model.Progression
	for _, t := range ticks {
		if name := chord.Identify(onsets[t], palette); name != "" {
			res = append(res, name)
		}
	}
	if len(res) == 0 {
		return nil, ErrNoChords
	}
	return res, nil
}

func ReadProgression(filepath string) (model.Progression, error) {
	s, err := ReadMidiFile(filepath)
	if err != nil {
		return nil, err
	}
	return Progression(s)
}
