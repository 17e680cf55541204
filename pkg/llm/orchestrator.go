package llm

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// editTemperature applies when the request doesn't set one. Low on purpose:
// the edit stage should follow rules, not get creative.
const editTemperature = 0.3

const editWrapper = "Edit and finalize this draft: "

// Orchestrator runs the two-stage draft -> edit pipeline for every persona.
type Orchestrator struct {
	draft Completer
	edit  Completer
}

func NewOrchestrator(draft, edit Completer) *Orchestrator {
	return &Orchestrator{draft: draft, edit: edit}
}

// GenerateAll runs all persona pipelines concurrently and returns once every
// one has settled. The result always has one entry per persona, in persona
// order: a failed pipeline yields a placeholder entry, never a missing one.
func (o *Orchestrator) GenerateAll(ctx context.Context, text string, settings Settings) []PlatformContent {
	results := make([]PlatformContent, len(Personas))

	var wg sync.WaitGroup
	for i, persona := range Personas {
		wg.Add(1)
		go func(i int, p Persona) {
			defer wg.Done()
			results[i] = o.generate(ctx, p, text, settings)
		}(i, persona)
	}
	wg.Wait()

	return results
}

func (o *Orchestrator) generate(ctx context.Context, p Persona, text string, settings Settings) PlatformContent {
	result := PlatformContent{PlatformID: p.ID, Platform: p.Name}

	prompts := BuildPrompts(p, settings)

	draft, err := o.draft.Complete(ctx, CompletionRequest{
		System:      prompts.Draft,
		User:        text,
		Temperature: p.Temperature,
		MaxTokens:   p.MaxTokens,
	})
	if err != nil || draft == "" {
		slog.Error("draft stage failed", "platform", p.ID, "error", err)
		result.Content = fmt.Sprintf("Error: Could not generate %s content. Please try again.", p.Name)
		result.Stage = StageError
		return result
	}

	temperature := settings.Temperature
	if temperature <= 0 {
		temperature = editTemperature
	}

	final, err := o.edit.Complete(ctx, CompletionRequest{
		System:      prompts.Edit,
		User:        editWrapper + draft,
		Temperature: temperature,
		MaxTokens:   p.MaxTokens,
	})
	if err != nil || final == "" {
		slog.Warn("edit stage failed, falling back to draft", "platform", p.ID, "error", err)
		result.Content = draft
		result.Stage = StageDraftFallback
		return result
	}

	result.Content = final
	result.Stage = StageEdited
	return result
}
