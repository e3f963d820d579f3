package style

import (
	"strings"

	"github.com/jsphweid/chordcompanion/key"
	"github.com/jsphweid/chordcompanion/model"
	"github.com/jsphweid/chordcompanion/util"
	"golang.org/x/exp/slices"
)

const (
	preferWeight = 1.15
	avoidWeight  = 0.85
)

type Bias struct {
	Prefer []string
	Avoid  []string
}

var biases = map[string]Bias{
	"pop":          {Prefer: []string{"I", "V", "vi", "IV"}, Avoid: []string{"vii°"}},
	"sad":          {Prefer: []string{"vi", "ii", "iii"}, Avoid: []string{"V"}},
	"cinematic":    {Prefer: []string{"iv", "VI", "vii°"}},
	"uplifting":    {Prefer: []string{"I", "V", "IV"}, Avoid: []string{"iii"}},
	"jazzish":      {Prefer: []string{"ii", "V", "vii°"}},
	"experimental": {},
}

// chords containing any of these are hidden from the palette
var exclusions = map[string][]string{
	"pop":       {"dim"},
	"uplifting": {"dim"},
}

var majorNumerals = []string{"I", "ii", "iii", "IV", "V", "vi", "vii°"}
var minorNumerals = []string{"i", "ii°", "III", "iv", "v", "VI", "VII"}

// Numeral names a chord's scale degree in a key, "" outside the seven degrees.
func Numeral(ch string, k string) string {
	i := slices.Index(key.Diatonic(k), ch)
	if i < 0 {
		return ""
	}
	if key.IsMinor(k) {
		return minorNumerals[i]
	}
	return majorNumerals[i]
}

func BiasFor(style string) Bias {
	return biases[style]
}

// Palette is the key's catalog minus whatever the style hides.
func Palette(k string, style string) []string {
	var res []string
	for _, ch := range key.StartingChords(k) {
		hidden := false
		for _, ex := range exclusions[style] {
			if strings.Contains(ch, ex) {
				hidden = true
				break
			}
		}
		if !hidden {
			res = append(res, ch)
		}
	}
	return res
}

// Apply weights suggestions by the style's preferred and avoided degrees and
// clamps the result to [0, 1]. The input is left untouched.
func Apply(suggestions []model.Suggestion, k string, style string) []model.Suggestion {
	bias := BiasFor(style)
	res := make([]model.Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		numeral := Numeral(s.Chord, k)
		if numeral != "" {
			if slices.Contains(bias.Prefer, numeral) {
				s.Confidence *= preferWeight
			}
			if slices.Contains(bias.Avoid, numeral) {
				s.Confidence *= avoidWeight
			}
		}
		s.Confidence = util.Clamp(s.Confidence, 0, 1)
		res = append(res, s)
	}
	return res
}
