package score

import (
	"github.com/jsphweid/chordcompanion/chord"
	"github.com/jsphweid/chordcompanion/key"
	"github.com/jsphweid/chordcompanion/util"
)

// damping constants, keep them exact
const (
	ceiling     = 0.85
	sharedFloor = 0.6
)

// BassGravity rewards root motion by step or by fourth/fifth.
func BassGravity(from, to string) float64 {
	a := chord.NoteIndex(chord.Root(from))
	b := chord.NoteIndex(chord.Root(to))
	if a < 0 || b < 0 {
		return 0.7
	}

	d := chord.Distance(a, b)
	switch {
	case d <= 2:
		return 1.0
	case d == 5 || d == 7:
		return 0.95
	default:
		return 0.6
	}
}

// SharedTone is the fraction of a triad the two chords have in common.
func SharedTone(a, b string) float64 {
	shared := util.Intersect(chord.Tones(a), chord.Tones(b))
	return float64(len(shared)) / 3
}

// TopNoteContour scores the motion of the highest chord tone.
func TopNoteContour(prev, next, k string) float64 {
	a := chord.TopNote(prev)
	b := chord.TopNote(next)
	if a < 0 || b < 0 {
		return 0.8
	}

	tonic := key.Tonic(k)
	step := chord.Distance(a, b)
	switch {
	case step == 1 || step == 2:
		return 1.15
	case b == tonic:
		return 1.2
	case b > a && a != tonic:
		return 1.05
	case step >= 6:
		return 0.7
	default:
		return 0.9
	}
}

// Confidence combines the three factors into [0, 1].
func Confidence(last, next, k string) float64 {
	c := ceiling * BassGravity(last, next) * (sharedFloor + SharedTone(last, next)) * TopNoteContour(last, next, k)
	return util.Min(1, c)
}
