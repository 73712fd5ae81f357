package rank

import (
	"context"
	"regexp"
	"strings"

	"github.com/dgallion1/docrank/internal/document"
)

// StructuralScorer rewards sections whose shape suggests usable content:
// moderate length, definitions, lists, information-dense vocabulary, and
// persona-specific content cues. Capped at 1.0.
type StructuralScorer struct{}

func NewStructuralScorer() *StructuralScorer { return &StructuralScorer{} }

func (s *StructuralScorer) Name() string { return "structural" }

var numberedItemRe = regexp.MustCompile(`\d+\.`)

var infoIndicators = []string{
	"ingredients", "steps", "instructions", "how to", "recipe",
	"procedure", "method", "technique", "tip", "recommendation",
}

// personaContentCues are persona-type specific terms whose presence makes
// a section structurally more useful to that reader.
var personaContentCues = map[string][]string{
	"contractor":   {"recipe", "ingredients", "cooking"},
	"planner":      {"activity", "visit", "explore", "enjoy"},
	"professional": {"form", "process", "step", "create"},
}

func (s *StructuralScorer) Score(ctx context.Context, q Query, sections []document.Section) []float64 {
	scores := make([]float64, len(sections))
	for i, section := range sections {
		scores[i] = structuralScore(section.Content, q.Profile.Type)
	}
	return scores
}

func structuralScore(content, personaType string) float64 {
	var score float64

	switch length := len(content); {
	case length >= 200 && length <= 1000:
		score += 0.3
	case length >= 100 && length <= 1500:
		score += 0.2
	case length > 50:
		score += 0.1
	}

	if strings.Contains(content, ":") {
		score += 0.2
	}
	if numberedItemRe.MatchString(content) {
		score += 0.2
	}
	if strings.ContainsAny(content, "•-*") {
		score += 0.15
	}

	lower := strings.ToLower(content)
	infoCount := 0
	for _, indicator := range infoIndicators {
		if strings.Contains(lower, indicator) {
			infoCount++
		}
	}
	infoBonus := float64(infoCount) * 0.05
	if infoBonus > 0.3 {
		infoBonus = 0.3
	}
	score += infoBonus

	for _, cue := range personaContentCues[personaType] {
		if strings.Contains(lower, cue) {
			score += 0.2
			break
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
