package chord

import (
	"regexp"
	"strings"

	"github.com/jsphweid/chordcompanion/constants"
	"github.com/jsphweid/chordcompanion/model"
	"golang.org/x/exp/slices"
)

var qualitySuffix = regexp.MustCompile(`m|dim|7`)

// Root strips every quality suffix from a chord symbol, "Bdim" -> "B", "E7" -> "E".
func Root(ch string) string {
	return qualitySuffix.ReplaceAllString(ch, "")
}

// NoteIndex returns -1 for anything that isn't a pitch class name.
func NoteIndex(name string) int {
	return slices.Index(constants.Chromatic, name)
}

func intervals(ch string) []int {
	var res []int
	switch {
	case strings.HasSuffix(ch, "dim"):
		res = []int{0, 3, 6}
	case strings.HasSuffix(ch, "m"):
		res = []int{0, 3, 7}
	default:
		res = []int{0, 4, 7}
	}
	if strings.HasSuffix(ch, "7") {
		res = append(res, 10)
	}
	return res
}

// Tones lists the pitch classes of a chord, root first. Unknown roots give
// an empty list.
func Tones(ch string) model.Tones {
	root := NoteIndex(Root(ch))
	if root < 0 {
		return model.Tones{}
	}

	var res model.Tones
	for _, i := range intervals(ch) {
		res = append(res, constants.Chromatic[(root+i)%12])
	}
	return res
}

// TopNote is the pitch class index of the last chord tone, or -1.
func TopNote(ch string) int {
	tones := Tones(ch)
	if len(tones) == 0 {
		return -1
	}
	return NoteIndex(tones[len(tones)-1])
}

// Distance is the shortest way around the pitch class circle.
func Distance(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if 12-d < d {
		return 12 - d
	}
	return d
}

func QualityOf(ch string) model.Quality {
	switch {
	case strings.HasSuffix(ch, "dim"):
		return model.Diminished
	case strings.HasSuffix(ch, "7"):
		return model.Seventh
	case strings.HasSuffix(ch, "m"):
		return model.Minor
	default:
		return model.Major
	}
}

// Voicing gives MIDI note numbers for a chord in root position, C4 = 60.
func Voicing(ch string, octave int) []uint8 {
	root := NoteIndex(Root(ch))
	if root < 0 {
		return nil
	}

	base := (octave + 1) * 12
	var notes []uint8
	for _, i := range intervals(ch) {
		n := base + root + i
		if n < 0 || n > 127 {
			continue
		}
		notes = append(notes, uint8(n))
	}
	return notes
}

func pitchClassSet(tones model.Tones) map[int]bool {
	set := make(map[int]bool)
	for _, t := range tones {
		set[NoteIndex(t)] = true
	}
	return set
}

// Identify names a set of sounding pitch classes using the chords of a palette.
// An exact match wins, otherwise the palette chord covering every pitch class
// with the fewest extra tones. Returns "" when nothing covers them.
func Identify(pitchClasses []int, palette []string) string {
	held := make(map[int]bool)
	for _, pc := range pitchClasses {
		held[((pc%12)+12)%12] = true
	}
	if len(held) == 0 {
		return ""
	}

	best := ""
	bestExtra := 13
	for _, ch := range palette {
		set := pitchClassSet(Tones(ch))
		covered := true
		for pc := range held {
			if !set[pc] {
				covered = false
				break
			}
		}
		if !covered {
			continue
		}

		extra := len(set) - len(held)
		if extra < bestExtra {
			best = ch
			bestExtra = extra
		}
	}
	return best
}
