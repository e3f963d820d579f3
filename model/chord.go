package model

// Progression is an ordered list of chord symbols like "C", "Am", "Bdim", "G7".
type Progression = []string

type Tones = []string

// Function is the harmonic role of a chord within a key.
type Function uint8

const (
	Tonic Function = iota
	Predominant
	Dominant
)

func (f Function) String() string {
	switch f {
	case Predominant:
		return "P"
	case Dominant:
		return "D"
	default:
		return "T"
	}
}

type Quality uint8

const (
	Major Quality = iota
	Minor
	Diminished
	Seventh
)

func (q Quality) String() string {
	switch q {
	case Minor:
		return "minor"
	case Diminished:
		return "diminished"
	case Seventh:
		return "seventh"
	default:
		return "major"
	}
}

type Suggestion struct {
	Chord      string  `json:"chord"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

type KeyCatalog struct {
	Name   string
	Chords []string
}
