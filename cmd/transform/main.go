package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"

	"shapeshifter/pkg/llm"
	"shapeshifter/pkg/scraper"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	if len(os.Args) < 2 {
		log.Fatal("usage: transform <url or text>")
	}
	input := strings.TrimSpace(strings.Join(os.Args[1:], " "))

	groqKey := os.Getenv("GROQ_API_KEY")
	anthropicKey := os.Getenv("ANTHROPIC_API_KEY")
	if groqKey == "" || anthropicKey == "" {
		log.Fatal("GROQ_API_KEY and ANTHROPIC_API_KEY must be set")
	}

	ctx := context.Background()

	text := input
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		extracted, err := scraper.New().Extract(ctx, input)
		if err != nil {
			log.Fatalf("error extracting content: %v", err)
		}

		text = extracted.Text
		if extracted.Title != nil {
			slog.Info("extracted article", "title", *extracted.Title, "chars", len(text))
		}
	}

	if utf8.RuneCountInString(text) < 50 {
		log.Fatal("content too short, need at least 50 characters")
	}

	orchestrator := llm.NewOrchestrator(
		llm.NewGroqClient(groqKey),
		llm.NewAnthropicClient(anthropicKey),
	)

	for _, result := range orchestrator.GenerateAll(ctx, text, llm.DefaultSettings()) {
		fmt.Printf("=== %s ===\n\n%s\n\n", result.Platform, result.Content)
	}
}
