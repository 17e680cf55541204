package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"shapeshifter/internal/cache"
	"shapeshifter/internal/model"
	"shapeshifter/pkg/llm"
	"shapeshifter/pkg/scraper"
)

// Raw text or extracted articles below this length are rejected before any
// model call is made.
const minContentLength = 50

type Extractor interface {
	Extract(ctx context.Context, url string) (*scraper.ExtractedContent, error)
}

type Generator interface {
	GenerateAll(ctx context.Context, text string, settings llm.Settings) []llm.PlatformContent
}

type TransformHandler struct {
	extractor Extractor
	generator Generator
	cache     cache.ResponseCache
	cacheTTL  time.Duration
}

func NewTransformHandler(extractor Extractor, generator Generator, responseCache cache.ResponseCache) *TransformHandler {
	return &TransformHandler{
		extractor: extractor,
		generator: generator,
		cache:     responseCache,
		cacheTTL:  cache.DefaultTTL,
	}
}

func (h *TransformHandler) Transform(c *gin.Context) {
	var req TransformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is required"})
		return
	}

	input := strings.TrimSpace(req.Input)
	if input == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is required"})
		return
	}

	settings := req.Settings.apply(llm.DefaultSettings())

	key := cache.Fingerprint(input, settings)
	cached, hit, err := h.cache.Get(c.Request.Context(), key)
	if err != nil {
		slog.Warn("cache lookup failed", "error", err)
	}
	if hit {
		c.JSON(http.StatusOK, cached)
		return
	}

	extractedText := input
	var imageURL, title *string

	if isURL(input) {
		extracted, err := h.extractor.Extract(c.Request.Context(), input)
		if err != nil {
			var fetchErr *scraper.FetchError
			if errors.As(err, &fetchErr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": fetchErr.Reason})
				return
			}
			slog.Error("error extracting content", "url", input, "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to scrape URL"})
			return
		}

		extractedText = extracted.Text
		imageURL = extracted.ImageURL
		title = extracted.Title
	}

	if utf8.RuneCountInString(extractedText) < minContentLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content too short. Please provide at least 50 characters."})
		return
	}

	generated := h.generator.GenerateAll(c.Request.Context(), extractedText, settings)

	results := make([]model.PlatformResult, len(generated))
	for i, g := range generated {
		results[i] = model.PlatformResult{
			Platform:   g.Platform,
			PlatformID: g.PlatformID,
			Content:    g.Content,
			Stage:      g.Stage,
		}
	}

	res := &model.TransformResponse{
		ExtractedText: extractedText,
		ImageURL:      imageURL,
		Title:         title,
		Results:       results,
	}

	if err := h.cache.Set(c.Request.Context(), key, res, h.cacheTTL); err != nil {
		slog.Warn("cache store failed", "error", err)
	}

	c.JSON(http.StatusOK, res)
}

func (h *TransformHandler) GetPersonas(c *gin.Context) {
	res := make([]PersonaResponse, len(llm.Personas))
	for i, p := range llm.Personas {
		res[i] = PersonaResponse{
			ID:          p.ID,
			Name:        p.Name,
			Icon:        p.Icon,
			Description: p.Description,
		}
	}
	c.JSON(http.StatusOK, res)
}

func (h *TransformHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func isURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}
