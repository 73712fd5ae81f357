package rank

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/dgallion1/docrank/internal/document"
)

// LexicalScorer measures cosine similarity between TF-IDF vectors of the
// query context and each section. The vectorizer is fit jointly over
// {query, all sections} on every call; nothing persists between calls.
type LexicalScorer struct {
	maxFeatures int
	maxDF       float64
}

func NewLexicalScorer() *LexicalScorer {
	return &LexicalScorer{maxFeatures: 1000, maxDF: 0.95}
}

func (s *LexicalScorer) Name() string { return "lexical" }

func (s *LexicalScorer) Score(ctx context.Context, q Query, sections []document.Section) []float64 {
	docs := make([][]string, 0, len(sections)+1)
	docs = append(docs, ngrams(tokenize(q.Text)))
	for _, section := range sections {
		docs = append(docs, ngrams(tokenize(section.Content)))
	}

	vocab := s.fitVocabulary(docs)
	if len(vocab) == 0 {
		return neutral(len(sections))
	}

	idf := inverseDocFreq(docs, vocab)
	queryVec := tfidfVector(docs[0], vocab, idf)
	if queryVec == nil {
		return neutral(len(sections))
	}

	scores := make([]float64, len(sections))
	for i := range sections {
		scores[i] = sparseCosine(queryVec, tfidfVector(docs[i+1], vocab, idf))
	}
	return scores
}

// fitVocabulary builds the term set: document-frequency bounded, capped
// at maxFeatures by total frequency (ties broken lexicographically so the
// fit is deterministic).
func (s *LexicalScorer) fitVocabulary(docs [][]string) map[string]struct{} {
	df := make(map[string]int)
	total := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, term := range doc {
			total[term]++
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				df[term]++
			}
		}
	}

	dfLimit := s.maxDF * float64(len(docs))
	terms := make([]string, 0, len(df))
	for term, count := range df {
		if len(docs) > 1 && float64(count) > dfLimit {
			continue
		}
		terms = append(terms, term)
	}

	sort.Slice(terms, func(i, j int) bool {
		if total[terms[i]] != total[terms[j]] {
			return total[terms[i]] > total[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > s.maxFeatures {
		terms = terms[:s.maxFeatures]
	}

	vocab := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		vocab[t] = struct{}{}
	}
	return vocab
}

// inverseDocFreq uses the smoothed formulation ln((1+n)/(1+df)) + 1.
func inverseDocFreq(docs [][]string, vocab map[string]struct{}) map[string]float64 {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, term := range doc {
			if _, ok := vocab[term]; !ok {
				continue
			}
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				df[term]++
			}
		}
	}

	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = math.Log((1+n)/(1+float64(count))) + 1
	}
	return idf
}

// tfidfVector returns the L2-normalized TF-IDF weights of one document,
// or nil when no term survives the vocabulary.
func tfidfVector(doc []string, vocab map[string]struct{}, idf map[string]float64) map[string]float64 {
	tf := make(map[string]int)
	for _, term := range doc {
		if _, ok := vocab[term]; ok {
			tf[term]++
		}
	}
	if len(tf) == 0 {
		return nil
	}

	vec := make(map[string]float64, len(tf))
	var norm float64
	for term, count := range tf {
		w := float64(count) * idf[term]
		vec[term] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for term := range vec {
		vec[term] /= norm
	}
	return vec
}

func sparseCosine(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for term, wa := range a {
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	return dot
}

// ngrams expands a token stream into unigrams plus consecutive bigrams.
func ngrams(tokens []string) []string {
	terms := make([]string, 0, len(tokens)*2)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

// tokenize lowercases, splits on non-alphanumerics, and drops stop words
// and single-character tokens.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, ok := stopWords[f]; ok {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "about", "above", "after", "again", "against", "all", "also", "am",
		"an", "and", "any", "are", "as", "at", "be", "because", "been", "before",
		"being", "below", "between", "both", "but", "by", "can", "could", "did",
		"do", "does", "doing", "down", "during", "each", "few", "for", "from",
		"further", "had", "has", "have", "having", "he", "her", "here", "hers",
		"him", "his", "how", "if", "in", "into", "is", "it", "its", "just",
		"more", "most", "my", "no", "nor", "not", "now", "of", "off", "on",
		"once", "only", "or", "other", "our", "out", "over", "own", "same",
		"she", "should", "so", "some", "such", "than", "that", "the", "their",
		"them", "then", "there", "these", "they", "this", "those", "through",
		"to", "too", "under", "until", "up", "very", "was", "we", "were",
		"what", "when", "where", "which", "while", "who", "whom", "why",
		"will", "with", "would", "you", "your",
	} {
		stopWords[w] = struct{}{}
	}
}
