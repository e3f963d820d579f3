package model

type DetectRequestBody struct {
	Progression Progression `json:"progression" validate:"required,min=1,max=64,dive,required"`
}

type DetectResponse struct {
	Key string `json:"key"`
}

type SuggestRequestBody struct {
	Progression Progression `json:"progression" validate:"max=64,dive,required"`
	Mode        string      `json:"mode"`
	Key         string      `json:"key"`

	// NOTE: style bias is only applied when set
	Style string `json:"style"`
}

type SuggestResponse struct {
	Key         string       `json:"key"`
	Suggestions []Suggestion `json:"suggestions"`
}

type StarterRequestBody struct {
	Key    string `json:"key"`
	Length int    `json:"length" validate:"omitempty,min=1,max=64"`
	Style  string `json:"style"`
	Seed   *int64 `json:"seed"`
}

type StarterResponse struct {
	Key         string      `json:"key"`
	Style       string      `json:"style"`
	Progression Progression `json:"progression"`
}

type ExportRequestBody struct {
	Progression Progression `json:"progression" validate:"required,min=1,max=64,dive,required"`
	Tempo       float64     `json:"tempo" validate:"omitempty,gt=0,lte=400"`
}

type PaletteChord struct {
	Chord   string `json:"chord"`
	Quality string `json:"quality"`
}

type PaletteResponse struct {
	Key    string         `json:"key"`
	Style  string         `json:"style"`
	Chords []PaletteChord `json:"chords"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
