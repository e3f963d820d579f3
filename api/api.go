package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordcompanion/chord"
	"github.com/jsphweid/chordcompanion/config"
	"github.com/jsphweid/chordcompanion/key"
	"github.com/jsphweid/chordcompanion/midi"
	"github.com/jsphweid/chordcompanion/model"
	"github.com/jsphweid/chordcompanion/starter"
	"github.com/jsphweid/chordcompanion/style"
	"github.com/jsphweid/chordcompanion/suggest"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-Id"

// maxBodyBytes caps request bodies, progressions are tiny
const maxBodyBytes = 64 * 1024

type Server struct {
	cfg      *config.Config
	logger   *zap.Logger
	validate *validator.Validate

	// NewRandomizer seeds starter progressions that don't ask for a seed.
	NewRandomizer func() starter.Randomizer
}

func New(cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		cfg:           cfg,
		logger:        logger,
		validate:      validator.New(),
		NewRandomizer: starter.DefaultRandomizer,
	}
}

func (s *Server) Handler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(s.requestLogger)
	router.HandleFunc("/keys", s.handleKeys).Methods(http.MethodGet)
	router.HandleFunc("/keys/{key}/chords", s.handlePalette).Methods(http.MethodGet)
	router.HandleFunc("/detect", s.handleDetect).Methods(http.MethodPost)
	router.HandleFunc("/suggest", s.handleSuggest).Methods(http.MethodPost)
	router.HandleFunc("/starter", s.handleStarter).Methods(http.MethodPost)
	router.HandleFunc("/export", s.handleExport).Methods(http.MethodPost)

	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{requestIDHeader},
	})
	return c.Handler(router)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)

		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

// decode reads and validates a JSON body, writing a 400 itself on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Could not decode request body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return false
	}
	return true
}

func (s *Server) orDefault(val string, fallback string) string {
	if val == "" {
		return fallback
	}
	return val
}

func (s *Server) handleKeys(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, key.Names())
}

func (s *Server) handlePalette(w http.ResponseWriter, r *http.Request) {
	k := mux.Vars(r)["key"]
	st := s.orDefault(r.URL.Query().Get("style"), s.cfg.Defaults.Style)

	res := model.PaletteResponse{Key: k, Style: st, Chords: make([]model.PaletteChord, 0)}
	for _, ch := range style.Palette(k, st) {
		res.Chords = append(res.Chords, model.PaletteChord{Chord: ch, Quality: chord.QualityOf(ch).String()})
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	var input model.DetectRequestBody
	if !s.decode(w, r, &input) {
		return
	}
	writeJSON(w, http.StatusOK, model.DetectResponse{Key: key.Detect(input.Progression)})
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var input model.SuggestRequestBody
	if !s.decode(w, r, &input) {
		return
	}

	mode := s.orDefault(input.Mode, s.cfg.Defaults.Mode)
	k := suggest.Key(input.Progression, input.Key)
	res := suggest.Next(input.Progression, mode, input.Key)
	if input.Style != "" {
		res = style.Apply(res, k, input.Style)
	}
	writeJSON(w, http.StatusOK, model.SuggestResponse{Key: k, Suggestions: res})
}

func (s *Server) handleStarter(w http.ResponseWriter, r *http.Request) {
	var input model.StarterRequestBody
	if !s.decode(w, r, &input) {
		return
	}

	k := s.orDefault(input.Key, s.cfg.Defaults.Key)
	st := s.orDefault(input.Style, s.cfg.Defaults.Style)
	length := input.Length
	if length == 0 {
		length = s.cfg.Defaults.Length
	}

	var rng starter.Randomizer
	if input.Seed != nil {
		rng = starter.NewRandomizer(*input.Seed)
	} else {
		rng = s.NewRandomizer()
	}

	writeJSON(w, http.StatusOK, model.StarterResponse{
		Key:         k,
		Style:       st,
		Progression: starter.Generate(k, length, st, rng),
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var input model.ExportRequestBody
	if !s.decode(w, r, &input) {
		return
	}
	tempo := input.Tempo
	if tempo == 0 {
		tempo = s.cfg.Defaults.Tempo
	}

	var buf bytes.Buffer
	if err := midi.WriteProgression(&buf, input.Progression, tempo); err != nil {
		s.logger.Error("export failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Could not export progression")
		return
	}

	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Disposition", `attachment; filename="progression.mid"`)
	w.Header().Set("Content-Length", fmt.Sprint(buf.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
