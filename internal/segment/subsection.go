package segment

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dgallion1/docrank/internal/document"
	"github.com/dgallion1/docrank/internal/persona"
)

var (
	numberedListRe = regexp.MustCompile(`\n\s*\d+\.\s+`)
	bulletListRe   = regexp.MustCompile(`\n\s*[•·-]\s+`)
	sentenceEndRe  = regexp.MustCompile(`[.!?]+\s+`)
)

// ExtractSubsections splits a section body into candidate passages,
// scores each against the persona profile and job task, and returns the
// top candidates in descending score order. At most maxSubsections are
// returned; ties keep original split order.
func ExtractSubsections(section document.Section, profile *persona.Profile, jobTask string) []document.Subsection {
	candidates := splitBody(section.Content)

	var scored []document.Subsection
	for idx, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if len(candidate) < minSubsectionLen {
			continue
		}
		scored = append(scored, document.Subsection{
			Document:   section.Document,
			Content:    candidate,
			PageNumber: section.PageNumber,
			Score:      scoreSubsection(candidate, profile),
			Index:      idx,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > maxSubsections {
		scored = scored[:maxSubsections]
	}
	return scored
}

// splitBody tries splitting strategies in order; the first applicable
// strategy wins.
func splitBody(content string) []string {
	// Numbered list items.
	if numberedListRe.MatchString(content) {
		if parts := trimNonEmpty(numberedListRe.Split(content, -1)); len(parts) > 1 {
			return parts
		}
	}

	// Bullet items.
	if bulletListRe.MatchString(content) {
		if parts := trimNonEmpty(bulletListRe.Split(content, -1)); len(parts) > 1 {
			return parts
		}
	}

	// Long prose: group sentences into ~200-char chunks.
	sentences := sentenceEndRe.Split(content, -1)
	if len(sentences) > 10 {
		var chunks []string
		var current []string
		for _, sentence := range sentences {
			current = append(current, sentence)
			if len(strings.Join(current, " ")) > 200 {
				chunks = append(chunks, strings.Join(current, " "))
				current = nil
			}
		}
		if len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
		}
		return chunks
	}

	// Oversized single block: bisect at the sentence boundary nearest
	// the midpoint.
	if len(content) > maxSectionLen {
		mid := len(content) / 2
		limit := mid + 100
		if limit > len(content) {
			limit = len(content)
		}
		for i := mid; i < limit; i++ {
			if c := content[i]; c == '.' || c == '!' || c == '?' {
				return []string{
					strings.TrimSpace(content[:i+1]),
					strings.TrimSpace(content[i+1:]),
				}
			}
		}
	}

	return []string{content}
}

func trimNonEmpty(parts []string) []string {
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

var (
	instructionalCues = []string{"instructions", "steps", "ingredients", "how to"}
	descriptiveCues   = []string{"description", "features", "details", "includes"}
)

// scoreSubsection accumulates keyword, action, requirement, content-type
// and length bonuses for one candidate passage.
func scoreSubsection(candidate string, profile *persona.Profile) float64 {
	lower := strings.ToLower(candidate)
	var score float64

	for _, kw := range profile.Keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			score += 0.1
		}
	}
	for _, action := range profile.Actions {
		if strings.Contains(lower, action) {
			score += 0.15
		}
	}
	for _, dietary := range profile.Requirements.Dietary {
		if strings.Contains(lower, strings.ToLower(dietary)) {
			score += 0.2
		}
	}
	for _, need := range profile.Requirements.SpecialNeeds {
		if strings.Contains(lower, strings.ToLower(need)) {
			score += 0.1
		}
	}

	if containsAny(lower, instructionalCues) {
		score += profile.Weights.Instructional
	}
	if containsAny(lower, descriptiveCues) {
		score += profile.Weights.Descriptive
	}

	// Prefer substantial passages; full bonus at 500 chars.
	lengthRatio := float64(len(candidate)) / 500.0
	if lengthRatio > 1.0 {
		lengthRatio = 1.0
	}
	score += lengthRatio * 0.1

	return score
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
