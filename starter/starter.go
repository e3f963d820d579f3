package starter

import (
	"math/rand"
	"time"

	"github.com/jsphweid/chordcompanion/key"
	"github.com/jsphweid/chordcompanion/model"
)

// Randomizer is the only source of nondeterminism. *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

func NewRandomizer(seed int64) Randomizer {
	return rand.New(rand.NewSource(seed))
}

func DefaultRandomizer() Randomizer {
	return NewRandomizer(time.Now().UnixNano())
}

// maxStalledRounds is how many rounds in a row may add nothing before a
// constraint is relaxed.
const maxStalledRounds = 32

type pattern = []int

// degree patterns per style, major then minor
var patterns = map[string][2][]pattern{
	"pop": {
		{{0, 4, 5, 3}, {0, 3, 4, 5}},
		{{0, 3, 4, 0}, {0, 5, 3, 4}},
	},
	"sad": {
		{{5, 1, 2, 0}, {5, 2, 1, 0}},
		{{0, 3, 4, 1}, {0, 4, 3, 1}},
	},
	"uplifting": {
		{{0, 4, 3, 0}},
		{{0, 4, 3, 0}},
	},
	"cinematic": {
		{{0, 3, 4, 5}},
		{{0, 5, 3, 4}},
	},
	"jazzish": {
		{{1, 4, 0, 3}},
		{{1, 4, 0, 3}},
	},
	"experimental": {
		{{0, 3, 4, 5}},
		{{0, 3, 4, 5}},
	},
}

// Styles lists the styles with their own patterns, in display order.
var Styles = []string{"pop", "sad", "uplifting", "cinematic", "jazzish", "experimental"}

func patternsFor(style string, minor bool) []pattern {
	p, ok := patterns[style]
	if !ok {
		p = patterns["pop"]
	}
	if minor {
		return p[1]
	}
	return p[0]
}

// Generate builds a starter progression from shuffled style patterns, never
// repeating a chord back to back. Sad progressions in major keys leave out
// the tonic.
func Generate(k string, length int, style string, rng Randomizer) model.Progression {
	minor := key.IsMinor(k)
	return generate(key.Diatonic(k), patternsFor(style, minor), !minor && style == "sad", length, rng)
}

// generate relaxes its constraints one at a time once rounds stop adding
// chords: first the tonic exclusion, then the no repeat rule. If even that
// adds nothing the progression is returned short of length.
func generate(diatonic []string, available []pattern, skipTonic bool, length int, rng Randomizer) model.Progression {
	if length <= 0 || len(available) == 0 {
		return model.Progression{}
	}

	res := make(model.Progression, 0, length)
	allowRepeat := false

	var last string
	stalled := 0
	for len(res) < length {
		chosen := available[rng.Intn(len(available))]
		shuffled := make([]string, 0, len(chosen))
		for _, d := range chosen {
			if d >= 0 && d < len(diatonic) {
				shuffled = append(shuffled, diatonic[d])
			}
		}
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		before := len(res)
		for _, ch := range shuffled {
			if len(res) >= length {
				break
			}
			if ch == last && !allowRepeat {
				continue
			}
			if skipTonic && ch == diatonic[0] {
				continue
			}
			res = append(res, ch)
			last = ch
		}

		if len(res) > before {
			stalled = 0
			continue
		}
		stalled++
		switch {
		case stalled >= maxStalledRounds*3:
			// nothing left to relax
			return res
		case stalled >= maxStalledRounds*2:
			allowRepeat = true
		case stalled >= maxStalledRounds:
			skipTonic = false
		}
	}

	return res
}
