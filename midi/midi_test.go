package midi

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/chordcompanion/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenReadProgression(t *testing.T) {
	progression := model.Progression{"C", "Am", "F", "G7", "Bdim", "A#"}

	var buf bytes.Buffer
	require.NoError(t, WriteProgression(&buf, progression, 80))

	s, err := ReadMidi(buf.Bytes())
	require.NoError(t, err)
	res, err := Progression(s)
	require.NoError(t, err)
	assert.Equal(t, progression, res)
}

func TestUnknownChordsAreSilent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProgression(&buf, model.Progression{"C", "Zx", "G"}, 120))

	s, err := ReadMidi(buf.Bytes())
	require.NoError(t, err)
	res, err := Progression(s)
	require.NoError(t, err)
	assert.Equal(t, model.Progression{"C", "G"}, res)
}

func TestWriteEmptyProgression(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, WriteProgression(&buf, model.Progression{}, 80), ErrNoChords)
}

func TestProgressionWithoutChords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProgression(&buf, model.Progression{"Zx"}, 80))

	s, err := ReadMidi(buf.Bytes())
	require.NoError(t, err)
	_, err = Progression(s)
	assert.ErrorIs(t, err, ErrNoChords)
}

func TestReadProgressionFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progression.mid")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, WriteProgression(f, model.Progression{"Em", "D", "C"}, 90))
	require.NoError(t, f.Close())

	res, err := ReadProgression(path)
	require.NoError(t, err)
	assert.Equal(t, model.Progression{"Em", "D", "C"}, res)
}

func TestReadMissingFile(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "nope.mid"))
	assert.Error(t, err)
}

func TestPaletteHasNoDuplicates(t *testing.T) {
	seen := make(map[string]bool)
	for _, ch := range Palette() {
		assert.False(t, seen[ch], ch)
		seen[ch] = true
	}
	assert.Equal(t, "C", Palette()[0])
}

func TestWriteRejectsBadTempo(t *testing.T) {
	for _, tempo := range []float64{0, -5} {
		var buf bytes.Buffer
		assert.ErrorIs(t, WriteProgression(&buf, model.Progression{"C", "G"}, tempo), ErrBadTempo)
		assert.Zero(t, buf.Len())
	}
}
