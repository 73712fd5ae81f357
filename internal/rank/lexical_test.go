package rank

import (
	"context"
	"reflect"
	"testing"

	"github.com/dgallion1/docrank/internal/document"
)

func TestLexicalScorer_SharedTermsScoreHigher(t *testing.T) {
	scorer := NewLexicalScorer()
	q := Query{Text: "vegetarian buffet recipes"}
	sections := []document.Section{
		{Content: "vegetarian buffet recipes"},
		{Content: "quantum tensor harmonics simulation"},
	}

	scores := scorer.Score(context.Background(), q, sections)
	if scores[0] < 0.99 {
		t.Errorf("identical text scored %f, want ~1.0", scores[0])
	}
	if scores[1] > 0.01 {
		t.Errorf("disjoint text scored %f, want ~0.0", scores[1])
	}
}

func TestLexicalScorer_EmptyCorpusIsNeutral(t *testing.T) {
	scorer := NewLexicalScorer()
	sections := []document.Section{{Content: ""}}

	scores := scorer.Score(context.Background(), Query{Text: ""}, sections)
	if len(scores) != 1 || scores[0] != neutralScore {
		t.Errorf("expected neutral score for empty corpus, got %v", scores)
	}
}

func TestTokenize_DropsStopAndShortWords(t *testing.T) {
	got := tokenize("The quick brown fox is a go")
	want := []string{"quick", "brown", "fox", "go"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokenize = %v, want %v", got, want)
	}
}

func TestNgrams_UnigramsPlusBigrams(t *testing.T) {
	got := ngrams([]string{"fresh", "buffet", "menu"})
	want := []string{"fresh", "buffet", "menu", "fresh buffet", "buffet menu"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ngrams = %v, want %v", got, want)
	}
}

func TestFitVocabulary_DropsUbiquitousTerms(t *testing.T) {
	scorer := NewLexicalScorer()
	// "catering" is in every document and exceeds the df bound; "menu" is
	// not ubiquitous and survives.
	docs := [][]string{
		{"catering", "menu"},
		{"catering", "venue"},
		{"catering", "staff"},
	}

	vocab := scorer.fitVocabulary(docs)
	if _, ok := vocab["catering"]; ok {
		t.Error("expected ubiquitous term dropped from vocabulary")
	}
	if _, ok := vocab["menu"]; !ok {
		t.Error("expected rare term kept in vocabulary")
	}
}

func TestFitVocabulary_FeatureCapDeterministic(t *testing.T) {
	scorer := NewLexicalScorer()
	scorer.maxFeatures = 2

	docs := [][]string{{"aa", "bb", "cc"}}
	first := scorer.fitVocabulary(docs)
	second := scorer.fitVocabulary(docs)

	if len(first) != 2 {
		t.Fatalf("expected vocabulary capped at 2, got %d", len(first))
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("vocabulary fit not deterministic: %v vs %v", first, second)
	}
	// Equal frequencies break ties lexicographically.
	if _, ok := first["aa"]; !ok {
		t.Errorf("expected lexicographically first term kept, got %v", first)
	}
}

func TestSparseCosine_Bounds(t *testing.T) {
	a := map[string]float64{"x": 0.6, "y": 0.8}
	if got := sparseCosine(a, a); got < 0.999 || got > 1.001 {
		t.Errorf("self-similarity = %f, want 1.0", got)
	}
	b := map[string]float64{"z": 1.0}
	if got := sparseCosine(a, b); got != 0 {
		t.Errorf("disjoint similarity = %f, want 0", got)
	}
	if got := sparseCosine(nil, a); got != 0 {
		t.Errorf("nil vector similarity = %f, want 0", got)
	}
}
