package trial

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jsphweid/chordcompanion/constants"
)

type record struct {
	Start int64 `json:"start"`
}

// Gate decides whether the app may start, based on when it first started.
type Gate struct {
	Path string
	Days float64
	Now  func() time.Time
}

func New(dir string, days float64) *Gate {
	if days <= 0 {
		days = constants.TrialDays
	}
	return &Gate{
		Path: filepath.Join(dir, constants.TrialFilename),
		Days: days,
		Now:  time.Now,
	}
}

// Start writes the first run time. An existing record is left alone.
func (g *Gate) Start() error {
	if _, err := os.Stat(g.Path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(g.Path), 0755); err != nil {
		return fmt.Errorf("could not create trial dir: %w", err)
	}
	data, err := json.Marshal(record{Start: g.Now().UnixMilli()})
	if err != nil {
		return err
	}
	return os.WriteFile(g.Path, data, 0644)
}

// DaysUsed is the time since the first run, in days.
func (g *Gate) DaysUsed() (float64, error) {
	data, err := os.ReadFile(g.Path)
	if err != nil {
		return 0, err
	}
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return 0, fmt.Errorf("could not parse %v: %w", g.Path, err)
	}
	elapsed := g.Now().Sub(time.UnixMilli(r.Start))
	return elapsed.Hours() / 24, nil
}

// Valid reports whether the trial still allows starting. A missing record
// starts the trial now, an unreadable one lets the app through.
func (g *Gate) Valid() bool {
	if _, err := os.Stat(g.Path); os.IsNotExist(err) {
		// fail open if the record can't be written either
		_ = g.Start()
		return true
	}

	days, err := g.DaysUsed()
	if err != nil {
		return true
	}
	return days <= g.Days
}
