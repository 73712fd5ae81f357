// Command docrank processes document collections in batch: every child
// directory of -dir containing an input spec is ranked and its output
// written in place.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dgallion1/docrank/internal/config"
	"github.com/dgallion1/docrank/internal/embed"
	"github.com/dgallion1/docrank/internal/pipeline"
	"github.com/dgallion1/docrank/internal/rank"
)

func main() {
	var (
		rootDir    = flag.String("dir", ".", "directory containing collection subdirectories")
		collection = flag.String("collection", "", "process a single collection directory instead")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg := config.Load()

	embedder := buildEmbedder(cfg, log)
	ranker := rank.NewRanker(embedder, log)
	processor := pipeline.NewProcessor(cfg, ranker, log)

	ctx := context.Background()

	if *collection != "" {
		if err := processOne(ctx, processor, *collection, log); err != nil {
			os.Exit(1)
		}
		return
	}

	entries, err := os.ReadDir(*rootDir)
	if err != nil {
		log.Error("cannot read collections directory", "dir", *rootDir, "error", err)
		os.Exit(1)
	}

	processed, failed := 0, 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(*rootDir, entry.Name())
		if _, err := os.Stat(filepath.Join(dir, pipeline.InputFileName)); err != nil {
			continue
		}
		// Per-collection failures are isolated; the batch continues.
		if err := processOne(ctx, processor, dir, log); err != nil {
			failed++
		} else {
			processed++
		}
	}
	log.Info("batch complete", "processed", processed, "failed", failed)
	if processed == 0 && failed > 0 {
		os.Exit(1)
	}
}

func processOne(ctx context.Context, processor *pipeline.Processor, dir string, log *slog.Logger) error {
	log.Info("processing collection", "dir", dir)
	out, err := processor.ProcessCollection(ctx, dir, nil)
	if err != nil {
		log.Error("collection failed", "dir", dir, "error", err)
		return err
	}
	outPath := filepath.Join(dir, pipeline.OutputFileName)
	if err := pipeline.WriteOutput(outPath, out); err != nil {
		log.Error("cannot write output", "dir", dir, "error", err)
		return err
	}
	log.Info("collection done",
		"dir", dir,
		"sections", len(out.ExtractedSections),
		"subsections", len(out.SubsectionAnalysis),
	)
	return nil
}

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
