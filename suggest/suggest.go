package suggest

import (
	"github.com/jsphweid/chordcompanion/constants"
	"github.com/jsphweid/chordcompanion/key"
	"github.com/jsphweid/chordcompanion/model"
	"github.com/jsphweid/chordcompanion/score"
	"github.com/jsphweid/chordcompanion/util"
)

const (
	ModeAdvanced = "advanced"
	ModeSimple   = "simple"
)

// simpleCandidates is how many catalog entries non advanced modes offer.
const simpleCandidates = 4

func candidates(last string, mode string, k string) []string {
	if mode != ModeAdvanced {
		chords := key.StartingChords(k)
		return chords[:util.Min(simpleCandidates, len(chords))]
	}

	t, p, d := key.Degrees(k)
	switch key.Function(last, k) {
	case model.Tonic:
		return p
	case model.Predominant:
		return d
	case model.Dominant:
		return t
	}
	return nil
}

// Next proposes chords to follow the progression. The key is forcedKey when
// given, detected otherwise. Results keep candidate order, callers re-rank.
func Next(progression model.Progression, mode string, forcedKey string) []model.Suggestion {
	res := make([]model.Suggestion, 0)
	if len(progression) == 0 {
		return res
	}

	k := forcedKey
	if k == "" {
		k = key.Detect(progression)
	}
	last := progression[len(progression)-1]

	for _, ch := range util.Unique(candidates(last, mode, k)) {
		if ch == "" {
			continue
		}
		res = append(res, model.Suggestion{
			Chord:      ch,
			Confidence: score.Confidence(last, ch, k),
			Reason:     constants.SuggestionReason,
		})
	}
	return res
}

// Key reports which key Next would use for the same input.
func Key(progression model.Progression, forcedKey string) string {
	if forcedKey != "" {
		return forcedKey
	}
	if len(progression) == 0 {
		return constants.DefaultKey
	}
	return key.Detect(progression)
}
