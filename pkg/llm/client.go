package llm

import "context"

// CompletionRequest is one non-streaming generation call against a hosted
// text model.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int64
}

// Completer is implemented by each model provider.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Stage outcomes recorded on PlatformContent.
const (
	StageEdited        = "edited"
	StageDraftFallback = "draft_fallback"
	StageError         = "error"
)

// PlatformContent is one persona's settled pipeline output.
type PlatformContent struct {
	PlatformID string
	Platform   string
	Content    string
	Stage      string
}
