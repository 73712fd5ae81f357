package rank

import (
	"context"
	"log/slog"

	"github.com/dgallion1/docrank/internal/document"
	"github.com/dgallion1/docrank/internal/embed"
)

// neutralScore is reported for every section when a signal cannot be
// computed, keeping the fusion deterministic without the signal.
const neutralScore = 0.5

// SemanticScorer measures cosine similarity between embeddings of the
// query context and each section body.
type SemanticScorer struct {
	embedder embed.Embedder
	log      *slog.Logger
}

func NewSemanticScorer(embedder embed.Embedder, log *slog.Logger) *SemanticScorer {
	return &SemanticScorer{embedder: embedder, log: log}
}

func (s *SemanticScorer) Name() string { return "semantic" }

func (s *SemanticScorer) Score(ctx context.Context, q Query, sections []document.Section) []float64 {
	if s.embedder == nil {
		return neutral(len(sections))
	}

	queryVec, err := s.embedder.EmbedQuery(ctx, q.Text)
	if err != nil {
		s.warn("query embedding failed", err)
		return neutral(len(sections))
	}

	texts := make([]string, len(sections))
	for i, section := range sections {
		texts[i] = section.Content
	}
	sectionVecs, err := s.embedder.EmbedDocuments(ctx, texts)
	if err != nil || len(sectionVecs) != len(sections) {
		s.warn("section embedding failed", err)
		return neutral(len(sections))
	}

	scores := make([]float64, len(sections))
	for i, vec := range sectionVecs {
		scores[i] = embed.Cosine(queryVec, vec)
	}
	return scores
}

func (s *SemanticScorer) warn(msg string, err error) {
	if s.log != nil {
		s.log.Warn(msg, "error", err)
	}
}

func neutral(n int) []float64 {
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = neutralScore
	}
	return scores
}
