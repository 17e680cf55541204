package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// GroqClient runs the draft stage on a fast, cheap model behind Groq's
// OpenAI-compatible API.
type GroqClient struct {
	client *openai.Client
	model  openai.ChatModel
}

func NewGroqClient(apiKey string) *GroqClient {
	client := openai.NewClient(option.WithAPIKey(apiKey), option.WithBaseURL(groqBaseURL))
	return &GroqClient{
		client: &client,
		model:  openai.ChatModel("llama-3.1-8b-instant"),
	}
}

func (c *GroqClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
		Temperature: openai.Float(req.Temperature),
		MaxTokens:   openai.Int(req.MaxTokens),
	})

	if err != nil {
		return "", fmt.Errorf("groq API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from groq")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
