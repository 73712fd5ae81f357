// Package rank fuses independent similarity signals into one relevance
// score per section and orders sections by it.
package rank

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/dgallion1/docrank/internal/document"
	"github.com/dgallion1/docrank/internal/embed"
	"github.com/dgallion1/docrank/internal/persona"
)

// Query carries everything a scorer may need: the flattened query-context
// text plus the structured profile it was built from.
type Query struct {
	Text    string
	Profile *persona.Profile
	Job     string
}

// Scorer computes one similarity signal for a batch of sections. Each
// returned score is roughly within [0,1]; a failing scorer degrades to a
// neutral constant instead of returning an error.
type Scorer interface {
	Name() string
	Score(ctx context.Context, q Query, sections []document.Section) []float64
}

// Fusion weights per signal. Fixed; tuned against the reference corpus.
const (
	semanticWeight   = 0.4
	lexicalWeight    = 0.3
	keywordWeight    = 0.2
	structuralWeight = 0.1
)

type weightedScorer struct {
	scorer Scorer
	weight float64
}

// Ranker orders sections by fused, boosted relevance.
type Ranker struct {
	scorers []weightedScorer
	log     *slog.Logger
}

// NewRanker wires the four standard signals. A nil embedder disables the
// semantic signal (it reports neutral scores).
func NewRanker(embedder embed.Embedder, log *slog.Logger) *Ranker {
	return &Ranker{
		scorers: []weightedScorer{
			{NewSemanticScorer(embedder, log), semanticWeight},
			{NewLexicalScorer(), lexicalWeight},
			{NewKeywordScorer(), keywordWeight},
			{NewStructuralScorer(), structuralWeight},
		},
		log: log,
	}
}

// RankSections scores every section against the profile and job task and
// returns them sorted descending by final score. The sort is stable, so
// re-running on the same input yields the identical order.
func (r *Ranker) RankSections(ctx context.Context, sections []document.Section, profile *persona.Profile, jobTask string) []document.ScoredSection {
	if len(sections) == 0 {
		return nil
	}

	q := Query{
		Text:    buildQueryContext(profile, jobTask),
		Profile: profile,
		Job:     jobTask,
	}

	signals := make([][]float64, len(r.scorers))
	for i, ws := range r.scorers {
		signals[i] = ws.scorer.Score(ctx, q, sections)
	}

	scored := make([]document.ScoredSection, len(sections))
	for i, section := range sections {
		var base float64
		for s, ws := range r.scorers {
			base += signals[s][i] * ws.weight
		}
		scored[i] = document.ScoredSection{
			Section: section,
			Score:   applyBoosts(section, base, profile, jobTask),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if r.log != nil && len(scored) > 0 {
		r.log.Debug("ranked sections",
			"count", len(scored),
			"top_title", scored[0].Title,
			"top_score", scored[0].Score,
		)
	}
	return scored
}

// buildQueryContext flattens the persona, job, and profile vocabulary
// into a single query string for the text-similarity signals.
func buildQueryContext(profile *persona.Profile, jobTask string) string {
	parts := []string{
		profile.Persona,
		jobTask,
		strings.Join(profile.Keywords, " "),
		strings.Join(profile.Actions, " "),
		strings.Join(profile.Priorities, " "),
	}
	parts = append(parts, profile.Requirements.Dietary...)
	parts = append(parts, profile.Requirements.SpecialNeeds...)

	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}
