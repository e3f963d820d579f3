package constants

import (
	"os"
	"path/filepath"
)

// Chromatic is the fixed pitch class order. A chord's tones index into it mod 12.
var Chromatic = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// DegreeCount is how many catalog entries are scale degrees, the rest of a
// key's catalog is extra palette.
const DegreeCount = 7

const SuggestionReason = "Bass + voice leading + top note contour"

const DefaultKey = "C"
const DefaultStyle = "pop"
const DefaultLength = 4
const DefaultTempo = 80

// TrialDays is how long the trial gate lets the app start.
const TrialDays = 3

const TrialFilename = "trial.json"

const ConfigFilename = "chords.yaml"

func GetConfigPath() string {
	path := os.Getenv("CHORDS_CONFIG")
	if path != "" {
		return path
	}
	return ConfigFilename
}

func GetDataDir() string {
	path := os.Getenv("CHORDS_DATA_DIR")
	if path != "" {
		return path
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "./data"
	}
	return filepath.Join(dir, "chordcompanion")
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}
