package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth
	DocrankAPIKey string

	// Embedding backend (optional; empty model disables the semantic signal)
	EmbeddingProvider string // "openai" or "ollama"
	EmbeddingBaseURL  string
	EmbeddingAPIKey   string
	EmbeddingModel    string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Result sizing
	TopSections    int
	TopSubsections int

	// Job state
	JobTTL time.Duration

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		DocrankAPIKey: os.Getenv("DOCRANK_API_KEY"),

		EmbeddingProvider: envOr("EMBEDDING_PROVIDER", "openai"),
		EmbeddingBaseURL:  envOr("EMBEDDING_BASE_URL", "https://api.openai.com/v1"),
		EmbeddingAPIKey:   os.Getenv("EMBEDDING_API_KEY"),
		EmbeddingModel:    os.Getenv("EMBEDDING_MODEL"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 50),

		TopSections:    envInt("TOP_SECTIONS", 5),
		TopSubsections: envInt("TOP_SUBSECTIONS", 5),

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 50
	}
	if cfg.TopSections <= 0 {
		cfg.TopSections = 5
	}
	if cfg.TopSubsections <= 0 {
		cfg.TopSubsections = 5
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

// Validate checks keys the HTTP server cannot run without. The CLI does
// not call this; it needs no API key.
func (c Config) Validate() error {
	if c.DocrankAPIKey == "" {
		return fmt.Errorf("DOCRANK_API_KEY is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
