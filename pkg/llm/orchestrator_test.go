package llm

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/go-playground/assert/v2"
)

type fakeCompleter struct {
	mu    sync.Mutex
	reqs  []CompletionRequest
	reply func(req CompletionRequest) (string, error)
}

func (f *fakeCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	f.mu.Lock()
	f.reqs = append(f.reqs, req)
	f.mu.Unlock()
	return f.reply(req)
}

func (f *fakeCompleter) requests() []CompletionRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]CompletionRequest(nil), f.reqs...)
}

func TestGenerateAll_AllPersonasInOrder(t *testing.T) {
	draft := &fakeCompleter{reply: func(CompletionRequest) (string, error) { return "draft text", nil }}
	edit := &fakeCompleter{reply: func(CompletionRequest) (string, error) { return "final text", nil }}

	results := NewOrchestrator(draft, edit).GenerateAll(context.Background(), "some article", DefaultSettings())

	assert.Equal(t, len(Personas), len(results))
	for i, p := range Personas {
		assert.Equal(t, p.ID, results[i].PlatformID)
		assert.Equal(t, p.Name, results[i].Platform)
		assert.Equal(t, "final text", results[i].Content)
		assert.Equal(t, StageEdited, results[i].Stage)
	}
}

func TestGenerateAll_EditEmptyFallsBackToDraft(t *testing.T) {
	draft := &fakeCompleter{reply: func(CompletionRequest) (string, error) { return "draft text", nil }}
	edit := &fakeCompleter{reply: func(CompletionRequest) (string, error) { return "", nil }}

	results := NewOrchestrator(draft, edit).GenerateAll(context.Background(), "some article", DefaultSettings())

	for _, r := range results {
		assert.Equal(t, "draft text", r.Content)
		assert.Equal(t, StageDraftFallback, r.Stage)
	}
}

func TestGenerateAll_EditErrorFallsBackToDraft(t *testing.T) {
	draft := &fakeCompleter{reply: func(CompletionRequest) (string, error) { return "draft text", nil }}
	edit := &fakeCompleter{reply: func(CompletionRequest) (string, error) { return "", errors.New("provider down") }}

	results := NewOrchestrator(draft, edit).GenerateAll(context.Background(), "some article", DefaultSettings())

	for _, r := range results {
		assert.Equal(t, "draft text", r.Content)
		assert.Equal(t, StageDraftFallback, r.Stage)
	}
}

func TestGenerateAll_DraftErrorYieldsPlaceholder(t *testing.T) {
	draft := &fakeCompleter{reply: func(CompletionRequest) (string, error) { return "", errors.New("provider down") }}
	edit := &fakeCompleter{reply: func(CompletionRequest) (string, error) { return "final text", nil }}

	results := NewOrchestrator(draft, edit).GenerateAll(context.Background(), "some article", DefaultSettings())

	assert.Equal(t, len(Personas), len(results))
	for i, p := range Personas {
		assert.Equal(t, "Error: Could not generate "+p.Name+" content. Please try again.", results[i].Content)
		assert.Equal(t, StageError, results[i].Stage)
	}

	// Nothing to edit when drafting failed.
	assert.Equal(t, 0, len(edit.requests()))
}

func TestGenerateAll_DraftUsesPersonaSampling(t *testing.T) {
	draft := &fakeCompleter{reply: func(CompletionRequest) (string, error) { return "draft text", nil }}
	edit := &fakeCompleter{reply: func(CompletionRequest) (string, error) { return "final text", nil }}

	NewOrchestrator(draft, edit).GenerateAll(context.Background(), "some article", DefaultSettings())

	seen := map[float64]int64{}
	for _, req := range draft.requests() {
		seen[req.Temperature] = req.MaxTokens
	}

	for _, p := range Personas {
		assert.Equal(t, p.MaxTokens, seen[p.Temperature])
	}
}

func TestGenerateAll_EditTemperatureDefaultsLow(t *testing.T) {
	draft := &fakeCompleter{reply: func(CompletionRequest) (string, error) { return "draft text", nil }}
	edit := &fakeCompleter{reply: func(CompletionRequest) (string, error) { return "final text", nil }}

	NewOrchestrator(draft, edit).GenerateAll(context.Background(), "some article", DefaultSettings())

	for _, req := range edit.requests() {
		assert.Equal(t, editTemperature, req.Temperature)
	}
}

func TestGenerateAll_EditTemperatureFromSettings(t *testing.T) {
	draft := &fakeCompleter{reply: func(CompletionRequest) (string, error) { return "draft text", nil }}
	edit := &fakeCompleter{reply: func(CompletionRequest) (string, error) { return "final text", nil }}

	settings := DefaultSettings()
	settings.Temperature = 0.9

	NewOrchestrator(draft, edit).GenerateAll(context.Background(), "some article", settings)

	for _, req := range edit.requests() {
		assert.Equal(t, 0.9, req.Temperature)
	}
}

func TestGenerateAll_EditReceivesWrappedDraft(t *testing.T) {
	draft := &fakeCompleter{reply: func(CompletionRequest) (string, error) { return "draft text", nil }}
	edit := &fakeCompleter{reply: func(CompletionRequest) (string, error) { return "final text", nil }}

	NewOrchestrator(draft, edit).GenerateAll(context.Background(), "some article", DefaultSettings())

	for _, req := range edit.requests() {
		assert.Equal(t, true, strings.HasPrefix(req.User, editWrapper))
		assert.Equal(t, true, strings.HasSuffix(req.User, "draft text"))
	}
}
