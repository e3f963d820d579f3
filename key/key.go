package key

import (
	"strings"

	"github.com/jsphweid/chordcompanion/chord"
	"github.com/jsphweid/chordcompanion/constants"
	"github.com/jsphweid/chordcompanion/model"
	"golang.org/x/exp/slices"
)

// Catalog lists every supported key in a fixed order. The order matters:
// Detect breaks ties in favor of the earlier key.
// NOTE: major and minor coverage differ on purpose, don't fill the gaps
var Catalog = []model.KeyCatalog{
	{Name: "C", Chords: []string{"C", "Dm", "Em", "F", "G", "Am", "Bdim", "E7", "A7", "D7", "G7"}},
	{Name: "D", Chords: []string{"D", "Em", "F#m", "G", "A", "Bm", "C#dim", "E7", "A7", "B7"}},
	{Name: "E", Chords: []string{"E", "F#m", "G#m", "A", "B", "C#m", "D#dim", "B7", "E7"}},
	{Name: "F", Chords: []string{"F", "Gm", "Am", "A#", "C", "Dm", "Edim", "C7", "G7"}},
	{Name: "G", Chords: []string{"G", "Am", "Bm", "C", "D", "Em", "F#dim", "D7", "G7"}},
	{Name: "A", Chords: []string{"A", "Bm", "C#m", "D", "E", "F#m", "G#dim", "E7", "A7"}},
	{Name: "Am", Chords: []string{"Am", "Bdim", "C", "Dm", "Em", "F", "G", "E7", "A7"}},
	{Name: "Em", Chords: []string{"Em", "F#dim", "G", "Am", "Bm", "C", "D", "B7", "E7"}},
	{Name: "Dm", Chords: []string{"Dm", "Edim", "F", "Gm", "Am", "A#", "C", "A7", "D7"}},
	{Name: "Bm", Chords: []string{"Bm", "C#dim", "D", "Em", "F#m", "G", "A", "F#7", "B7"}},
	{Name: "Cm", Chords: []string{"Cm", "Ddim", "D#", "Fm", "Gm", "G#", "A#", "G7", "C7"}},
}

func Lookup(name string) (model.KeyCatalog, bool) {
	for _, k := range Catalog {
		if k.Name == name {
			return k, true
		}
	}
	return model.KeyCatalog{}, false
}

func Names() []string {
	names := make([]string, 0, len(Catalog))
	for _, k := range Catalog {
		names = append(names, k.Name)
	}
	return names
}

// StartingChords returns the catalog of a key, C major's if it isn't known.
func StartingChords(name string) []string {
	k, ok := Lookup(name)
	if !ok {
		k = Catalog[0]
	}
	return slices.Clone(k.Chords)
}

// Diatonic returns the scale degree chords, I..VII or i..VII.
func Diatonic(name string) []string {
	chords := StartingChords(name)
	if len(chords) > constants.DegreeCount {
		chords = chords[:constants.DegreeCount]
	}
	return chords
}

// Tonic is the pitch class index of the key's first degree, C when unknown.
func Tonic(name string) int {
	k, ok := Lookup(name)
	if !ok || len(k.Chords) == 0 {
		return 0
	}
	idx := chord.NoteIndex(chord.Root(k.Chords[0]))
	if idx < 0 {
		return 0
	}
	return idx
}

func IsMinor(name string) bool {
	return strings.HasSuffix(name, "m")
}

// Detect picks the key whose catalog contains the most chords of the
// progression. The first key to reach the max wins.
func Detect(progression model.Progression) string {
	best := Catalog[0].Name
	bestScore := -1
	for _, k := range Catalog {
		var score int
		for _, ch := range progression {
			if slices.Contains(k.Chords, ch) {
				score++
			}
		}
		if score > bestScore {
			best = k.Name
			bestScore = score
		}
	}
	return best
}

func degree(d []string, i int) string {
	if i < len(d) {
		return d[i]
	}
	return ""
}

// Degrees groups the diatonic chords of a key by harmonic function.
func Degrees(name string) (tonic []string, predominant []string, dominant []string) {
	d := Diatonic(name)
	tonic = []string{degree(d, 0), degree(d, 2), degree(d, 5)}
	predominant = []string{degree(d, 1), degree(d, 3)}
	dominant = []string{degree(d, 4), degree(d, 6)}
	return
}

// Function labels a chord's role in a key. Anything unmatched is Tonic.
func Function(ch string, name string) model.Function {
	if ch == "" {
		return model.Tonic
	}
	t, p, d := Degrees(name)
	switch {
	case slices.Contains(t, ch):
		return model.Tonic
	case slices.Contains(p, ch):
		return model.Predominant
	case slices.Contains(d, ch) || strings.HasSuffix(ch, "7"):
		return model.Dominant
	}
	return model.Tonic
}
