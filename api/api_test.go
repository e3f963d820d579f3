package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsphweid/chordcompanion/config"
	"github.com/jsphweid/chordcompanion/midi"
	"github.com/jsphweid/chordcompanion/model"
	"github.com/jsphweid/chordcompanion/starter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer() http.Handler {
	s := New(config.DefaultConfig(), zap.NewNop())
	s.NewRandomizer = func() starter.Randomizer { return starter.NewRandomizer(42) }
	return s.Handler()
}

func do(t *testing.T, h http.Handler, method string, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if s, ok := body.(string); ok {
		reader = bytes.NewReader([]byte(s))
	} else {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestKeys(t *testing.T) {
	w := do(t, newTestServer(), http.MethodGet, "/keys", "")
	require.Equal(t, http.StatusOK, w.Code)

	var keys []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &keys))
	assert.Len(t, keys, 11)
	assert.Equal(t, "C", keys[0])
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/keys", nil)
	req.Header.Set(requestIDHeader, "abc")
	w := httptest.NewRecorder()
	newTestServer().ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(requestIDHeader))
}

func TestPalette(t *testing.T) {
	w := do(t, newTestServer(), http.MethodGet, "/keys/C/chords?style=pop", "")
	require.Equal(t, http.StatusOK, w.Code)

	var res model.PaletteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "pop", res.Style)
	assert.Len(t, res.Chords, 10)
	assert.Equal(t, model.PaletteChord{Chord: "Dm", Quality: "minor"}, res.Chords[1])
}

func TestDetect(t *testing.T) {
	w := do(t, newTestServer(), http.MethodPost, "/detect", model.DetectRequestBody{Progression: model.Progression{"C", "F", "G", "C"}})
	require.Equal(t, http.StatusOK, w.Code)

	var res model.DetectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "C", res.Key)
}

func TestDetectNeedsChords(t *testing.T) {
	w := do(t, newTestServer(), http.MethodPost, "/detect", model.DetectRequestBody{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, strings.HasPrefix(res.Error, "Invalid request"))
}

func TestBadJSON(t *testing.T) {
	w := do(t, newTestServer(), http.MethodPost, "/suggest", "{")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSuggest(t *testing.T) {
	body := model.SuggestRequestBody{Progression: model.Progression{"C"}, Mode: "advanced", Key: "C"}
	w := do(t, newTestServer(), http.MethodPost, "/suggest", body)
	require.Equal(t, http.StatusOK, w.Code)

	var res model.SuggestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "C", res.Key)
	require.Len(t, res.Suggestions, 2)
	assert.Equal(t, "Dm", res.Suggestions[0].Chord)
	assert.InDelta(t, 0.5865, res.Suggestions[0].Confidence, 1e-9)
}

func TestSuggestEmptyProgression(t *testing.T) {
	w := do(t, newTestServer(), http.MethodPost, "/suggest", model.SuggestRequestBody{})
	require.Equal(t, http.StatusOK, w.Code)

	var res model.SuggestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Empty(t, res.Suggestions)
	assert.NotNil(t, res.Suggestions)
}

func TestSuggestWithStyle(t *testing.T) {
	body := model.SuggestRequestBody{Progression: model.Progression{"Dm"}, Key: "C", Style: "pop"}
	w := do(t, newTestServer(), http.MethodPost, "/suggest", body)
	require.Equal(t, http.StatusOK, w.Code)

	var res model.SuggestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Suggestions, 2)
	for _, s := range res.Suggestions {
		assert.LessOrEqual(t, s.Confidence, 1.0)
	}
}

func TestStarterWithSeedIsRepeatable(t *testing.T) {
	seed := int64(5)
	body := model.StarterRequestBody{Key: "G", Length: 6, Style: "pop", Seed: &seed}

	h := newTestServer()
	var first, second model.StarterResponse
	require.NoError(t, json.Unmarshal(do(t, h, http.MethodPost, "/starter", body).Body.Bytes(), &first))
	require.NoError(t, json.Unmarshal(do(t, h, http.MethodPost, "/starter", body).Body.Bytes(), &second))

	assert.Len(t, first.Progression, 6)
	assert.Equal(t, first, second)
}

func TestStarterDefaults(t *testing.T) {
	w := do(t, newTestServer(), http.MethodPost, "/starter", model.StarterRequestBody{})
	require.Equal(t, http.StatusOK, w.Code)

	var res model.StarterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "C", res.Key)
	assert.Equal(t, "pop", res.Style)
	assert.Len(t, res.Progression, 4)
}

func TestStarterRejectsHugeLength(t *testing.T) {
	w := do(t, newTestServer(), http.MethodPost, "/starter", model.StarterRequestBody{Length: 1000})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExport(t *testing.T) {
	body := model.ExportRequestBody{Progression: model.Progression{"C", "G", "Am", "F"}}
	w := do(t, newTestServer(), http.MethodPost, "/export", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/midi", w.Header().Get("Content-Type"))

	s, err := midi.ReadMidi(w.Body.Bytes())
	require.NoError(t, err)
	res, err := midi.Progression(s)
	require.NoError(t, err)
	assert.Equal(t, body.Progression, res)
}

func TestWrongMethod(t *testing.T) {
	w := do(t, newTestServer(), http.MethodGet, "/suggest", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
