package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsphweid/chordcompanion/config"
	"github.com/jsphweid/chordcompanion/midi"
	"github.com/jsphweid/chordcompanion/model"
	"github.com/jsphweid/chordcompanion/session"
	"github.com/jsphweid/chordcompanion/starter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setup() {
	cfg = config.DefaultConfig()
	logger = zap.NewNop()
}

func TestSessionCommands(t *testing.T) {
	setup()
	path := filepath.Join(t.TempDir(), "out.mid")
	input := strings.Join([]string{
		"add C",
		"suggest",
		"key Am",
		"add Am Dm",
		"style sad",
		"bogus",
		"export " + path,
		"quit",
		"add G",
	}, "\n")

	s := session.New("C", "experimental", starter.NewRandomizer(1))
	var out bytes.Buffer
	require.NoError(t, runSession(s, strings.NewReader(input), &out))

	assert := assert.New(t)
	assert.Contains(out.String(), "Dm      59%")
	assert.Contains(out.String(), "[Am, experimental] progression: Am - Dm")
	assert.Contains(out.String(), `unknown command "bogus"`)
	assert.Equal(model.Progression{"Am", "Dm"}, s.Progression(), "nothing runs after quit")
	assert.Equal("sad", s.Style())

	res, err := midi.ReadProgression(path)
	require.NoError(t, err)
	assert.Equal(model.Progression{"Am", "Dm"}, res)
}

func TestSessionStarter(t *testing.T) {
	setup()
	s := session.New("G", "pop", starter.NewRandomizer(2))
	var out bytes.Buffer
	require.NoError(t, runSession(s, strings.NewReader("starter 6\nstarter x\n"), &out))

	assert.Len(t, s.Progression(), 6)
	assert.Contains(t, out.String(), `bad length "x"`)
}

func TestPrintSuggestionsEmpty(t *testing.T) {
	var out bytes.Buffer
	printSuggestions(&out, nil)
	assert.Equal(t, "no suggestions\n", out.String())
}
