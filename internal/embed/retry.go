package embed

import (
	"context"
	"math/rand/v2"
	"time"
)

const maxRetries = 3

// WithRetry wraps an embedder so transient backend failures are retried
// with jittered exponential backoff before the caller degrades the
// semantic signal.
func WithRetry(next Embedder) Embedder {
	return &retryEmbedder{next: next}
}

type retryEmbedder struct {
	next Embedder
}

func (e *retryEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	var vec []float32
	err := retry(ctx, func() error {
		var err error
		vec, err = e.next.EmbedQuery(ctx, text)
		return err
	})
	return vec, err
}

func (e *retryEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	var vecs [][]float32
	err := retry(ctx, func() error {
		var err error
		vecs, err = e.next.EmbedDocuments(ctx, texts)
		return err
	})
	return vecs, err
}

func retry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff(attempt - 1)):
			}
		}
		if err = fn(); err == nil {
			return nil
		}
	}
	return err
}

// backoff returns a duration for attempt n (0-indexed) with jitter.
func backoff(attempt int) time.Duration {
	base := time.Duration(1<<uint(attempt)) * time.Second
	if base > 30*time.Second {
		base = 30 * time.Second
	}
	jitter := time.Duration(rand.Int64N(int64(base) / 2))
	return base + jitter
}
