package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8091" {
		t.Errorf("Port = %q, want 8091", cfg.Port)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("WorkerCount = %d, want 4", cfg.WorkerCount)
	}
	if cfg.TopSections != 5 || cfg.TopSubsections != 5 {
		t.Errorf("result sizing = %d/%d, want 5/5", cfg.TopSections, cfg.TopSubsections)
	}
	if cfg.JobTTL != time.Hour {
		t.Errorf("JobTTL = %v, want 1h", cfg.JobTTL)
	}
	if cfg.EmbeddingProvider != "openai" {
		t.Errorf("EmbeddingProvider = %q, want openai", cfg.EmbeddingProvider)
	}
	if !cfg.PDFFallbackPdftotext {
		t.Error("PDFFallbackPdftotext should default to true")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("JOB_TTL", "30m")
	t.Setenv("PDF_FALLBACK_PDFTOTEXT", "false")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.WorkerCount != 8 {
		t.Errorf("WorkerCount = %d, want 8", cfg.WorkerCount)
	}
	if cfg.JobTTL != 30*time.Minute {
		t.Errorf("JobTTL = %v, want 30m", cfg.JobTTL)
	}
	if cfg.PDFFallbackPdftotext {
		t.Error("PDFFallbackPdftotext should be false")
	}
}

func TestLoad_ClampsNonPositiveValues(t *testing.T) {
	t.Setenv("WORKER_COUNT", "0")
	t.Setenv("TOP_SECTIONS", "-1")
	t.Setenv("MAX_QUEUE_SIZE", "0")

	cfg := Load()
	if cfg.WorkerCount != 4 {
		t.Errorf("WorkerCount = %d, want clamped to 4", cfg.WorkerCount)
	}
	if cfg.TopSections != 5 {
		t.Errorf("TopSections = %d, want clamped to 5", cfg.TopSections)
	}
	if cfg.MaxQueueSize != 50 {
		t.Errorf("MaxQueueSize = %d, want clamped to 50", cfg.MaxQueueSize)
	}
}

func TestValidate(t *testing.T) {
	if err := (Config{}).Validate(); err == nil {
		t.Error("expected error when API key missing")
	}
	if err := (Config{DocrankAPIKey: "k"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
