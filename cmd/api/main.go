package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"shapeshifter/db"
	"shapeshifter/internal/cache"
	"shapeshifter/internal/handler"
	"shapeshifter/pkg/llm"
	"shapeshifter/pkg/scraper"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	groqKey := os.Getenv("GROQ_API_KEY")
	anthropicKey := os.Getenv("ANTHROPIC_API_KEY")
	if groqKey == "" || anthropicKey == "" {
		log.Fatal("GROQ_API_KEY and ANTHROPIC_API_KEY must be set")
	}

	var responseCache cache.ResponseCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		client, err := db.OpenRedis(redisURL)
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer client.Close()

		responseCache = cache.NewRedis(client)
		slog.Info("using redis response cache")
	} else {
		memory := cache.NewMemory()
		memory.StartSweeper(context.Background(), 10*time.Minute)

		responseCache = memory
		slog.Info("using in-memory response cache")
	}

	orchestrator := llm.NewOrchestrator(
		llm.NewGroqClient(groqKey),
		llm.NewAnthropicClient(anthropicKey),
	)
	transformHandler := handler.NewTransformHandler(scraper.New(), orchestrator, responseCache)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.POST("/transform", transformHandler.Transform)
	r.GET("/personas", transformHandler.GetPersonas)
	r.GET("/health", transformHandler.GetHealth)

	err := r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
