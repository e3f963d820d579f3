package session

import (
	"github.com/jsphweid/chordcompanion/constants"
	"github.com/jsphweid/chordcompanion/model"
	"github.com/jsphweid/chordcompanion/starter"
	"github.com/jsphweid/chordcompanion/style"
	"github.com/jsphweid/chordcompanion/suggest"
	"golang.org/x/exp/slices"
)

// Session holds the state a front end owns between engine calls: the chosen
// key and style plus the progression being built.
type Session struct {
	key         string
	style       string
	progression model.Progression
	rng         starter.Randomizer
}

func New(key string, style string, rng starter.Randomizer) *Session {
	if key == "" {
		key = constants.DefaultKey
	}
	if style == "" {
		style = constants.DefaultStyle
	}
	if rng == nil {
		rng = starter.DefaultRandomizer()
	}
	return &Session{key: key, style: style, rng: rng}
}

func (s *Session) Key() string   { return s.key }
func (s *Session) Style() string { return s.style }

func (s *Session) Progression() model.Progression {
	return slices.Clone(s.progression)
}

func (s *Session) Add(ch string) {
	s.progression = append(s.progression, ch)
}

func (s *Session) Clear() {
	s.progression = nil
}

// SetKey switches key and starts over with an empty progression.
func (s *Session) SetKey(key string) {
	s.key = key
	s.Clear()
}

func (s *Session) SetStyle(style string) {
	s.style = style
}

func (s *Session) Palette() []string {
	return style.Palette(s.key, s.style)
}

// Starter replaces the progression with a freshly generated one.
func (s *Session) Starter(length int) model.Progression {
	s.progression = starter.Generate(s.key, length, s.style, s.rng)
	return s.Progression()
}

// Suggestions runs the advanced suggester in the session key and weights the
// result by the session style.
func (s *Session) Suggestions() []model.Suggestion {
	res := suggest.Next(s.progression, suggest.ModeAdvanced, s.key)
	return style.Apply(res, s.key, s.style)
}
