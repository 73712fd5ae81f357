package rank

import (
	"context"
	"regexp"
	"strings"

	"github.com/dgallion1/docrank/internal/document"
)

// KeywordScorer blends Jaccard overlap between the profile's full
// vocabulary and each section's word set with a capped keyword-density
// term (0.7 / 0.3).
type KeywordScorer struct{}

func NewKeywordScorer() *KeywordScorer { return &KeywordScorer{} }

func (s *KeywordScorer) Name() string { return "keyword" }

var wordRe = regexp.MustCompile(`\b\w+\b`)

func (s *KeywordScorer) Score(ctx context.Context, q Query, sections []document.Section) []float64 {
	keywords := profileVocabulary(q)

	scores := make([]float64, len(sections))
	for i, section := range sections {
		scores[i] = keywordSimilarity(keywords, section.Content)
	}
	return scores
}

// profileVocabulary collects the profile's keyword, action, priority and
// requirement terms into one lowercase set.
func profileVocabulary(q Query) map[string]struct{} {
	vocab := make(map[string]struct{})
	add := func(terms []string) {
		for _, t := range terms {
			vocab[strings.ToLower(t)] = struct{}{}
		}
	}
	add(q.Profile.Keywords)
	add(q.Profile.Actions)
	add(q.Profile.Priorities)
	add(q.Profile.Requirements.Dietary)
	add(q.Profile.Requirements.SpecialNeeds)
	return vocab
}

func keywordSimilarity(keywords map[string]struct{}, content string) float64 {
	lower := strings.ToLower(content)

	words := make(map[string]struct{})
	for _, w := range wordRe.FindAllString(lower, -1) {
		words[w] = struct{}{}
	}

	intersection := 0
	for kw := range keywords {
		if _, ok := words[kw]; ok {
			intersection++
		}
	}
	union := len(words) + len(keywords) - intersection

	var jaccard float64
	if union > 0 {
		jaccard = float64(intersection) / float64(union)
	}

	// Occurrence density: keywords present anywhere in the text, relative
	// to section length, rescaled and capped.
	occurrences := 0
	for kw := range keywords {
		if strings.Contains(lower, kw) {
			occurrences++
		}
	}
	var density float64
	if fields := strings.Fields(lower); len(fields) > 0 {
		density = float64(occurrences) / float64(len(fields))
	}
	density *= 10
	if density > 1 {
		density = 1
	}

	return jaccard*0.7 + density*0.3
}
