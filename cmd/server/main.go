package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/docrank/internal/api"
	"github.com/dgallion1/docrank/internal/config"
	"github.com/dgallion1/docrank/internal/embed"
	"github.com/dgallion1/docrank/internal/pipeline"
	"github.com/dgallion1/docrank/internal/rank"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	embedder := buildEmbedder(cfg, log)
	ranker := rank.NewRanker(embedder, log)
	processor := pipeline.NewProcessor(cfg, ranker, log)

	orch := pipeline.NewOrchestrator(cfg, processor, log)
	orch.Start(ctx)

	srv := api.NewServer(orch, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting docrank", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

// buildEmbedder wires the optional semantic backend. Without a model the
// semantic signal degrades to neutral scores.
func buildEmbedder(cfg config.Config, log *slog.Logger) embed.Embedder {
	if cfg.EmbeddingModel == "" {
		log.Info("no embedding model configured, semantic signal disabled")
		return nil
	}

	var (
		embedder embed.Embedder
		err      error
	)
	switch cfg.EmbeddingProvider {
	case "ollama":
		embedder, err = embed.NewOllama(cfg.EmbeddingBaseURL, cfg.EmbeddingModel)
	default:
		embedder, err = embed.NewOpenAI(cfg.EmbeddingBaseURL, cfg.EmbeddingAPIKey, cfg.EmbeddingModel)
	}
	if err != nil {
		log.Warn("embedding backend unavailable, semantic signal disabled", "error", err)
		return nil
	}
	return embed.WithRetry(embedder)
}
