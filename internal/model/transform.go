package model

// PlatformResult is one persona's final output as returned to clients. Stage
// records how the pipeline settled (edited, draft_fallback, error).
type PlatformResult struct {
	Platform   string `json:"platform"`
	PlatformID string `json:"platformId"`
	Content    string `json:"content"`
	Stage      string `json:"stage,omitempty"`
}

// TransformResponse is the aggregate result of one transform request and the
// unit stored in the response cache. Results holds exactly one entry per
// persona, in persona order.
type TransformResponse struct {
	ExtractedText string           `json:"extractedText"`
	ImageURL      *string          `json:"imageUrl"`
	Title         *string          `json:"title"`
	Results       []PlatformResult `json:"results"`
}
