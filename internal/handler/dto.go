package handler

import "shapeshifter/pkg/llm"

type TransformRequest struct {
	Input    string           `json:"input"`
	Settings *SettingsRequest `json:"settings"`
}

// SettingsRequest overlays the defaults. Pointer fields distinguish an absent
// field from a zero value.
type SettingsRequest struct {
	IncludeEmojis   *bool    `json:"includeEmojis"`
	IncludeHashtags *bool    `json:"includeHashtags"`
	Length          *string  `json:"length"`
	XFormat         *string  `json:"xFormat"`
	XAccountType    *string  `json:"xAccountType"`
	LinkedInFormat  *string  `json:"linkedinFormat"`
	Temperature     *float64 `json:"temperature"`
}

func (r *SettingsRequest) apply(defaults llm.Settings) llm.Settings {
	if r == nil {
		return defaults
	}

	s := defaults
	if r.IncludeEmojis != nil {
		s.IncludeEmojis = *r.IncludeEmojis
	}
	if r.IncludeHashtags != nil {
		s.IncludeHashtags = *r.IncludeHashtags
	}
	if r.Length != nil {
		s.Length = *r.Length
	}
	if r.XFormat != nil {
		s.XFormat = *r.XFormat
	}
	if r.XAccountType != nil {
		s.XAccountType = *r.XAccountType
	}
	if r.LinkedInFormat != nil {
		s.LinkedInFormat = *r.LinkedInFormat
	}
	if r.Temperature != nil {
		s.Temperature = *r.Temperature
	}
	return s
}

type PersonaResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}
