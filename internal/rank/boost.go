package rank

import (
	"strings"

	"github.com/dgallion1/docrank/internal/document"
	"github.com/dgallion1/docrank/internal/persona"
)

// maxScore caps the final relevance score after all boosts compound.
const maxScore = 2.0

// Persona-type boost tables: the first cue set multiplies by 1.3, the
// second by 1.2, compounding when both match.
var personaBoosts = map[string]struct {
	strong []string // x1.3
	mild   []string // x1.2
}{
	"contractor": {
		strong: []string{"recipe", "ingredients", "cooking", "preparation"},
	},
	"planner": {
		strong: []string{"activity", "attraction", "visit", "explore", "destination"},
		mild:   []string{"group", "friends", "together", "party"},
	},
	"professional": {
		strong: []string{"form", "process", "procedure", "workflow", "step"},
		mild:   []string{"compliance", "professional", "business", "corporate"},
	},
}

// applyBoosts multiplies the fused base score by persona-specific and
// job-specific factors, then caps the result.
func applyBoosts(section document.Section, base float64, profile *persona.Profile, jobTask string) float64 {
	score := base
	content := strings.ToLower(section.Content)

	if boosts, ok := personaBoosts[profile.Type]; ok {
		if containsAnyTerm(content, boosts.strong) {
			score *= 1.3
		}
		if containsAnyTerm(content, boosts.mild) {
			score *= 1.2
		}
	}

	// A contractor's dietary requirements boost per matched term.
	if profile.Type == "contractor" {
		for _, req := range profile.Requirements.Dietary {
			if strings.Contains(content, strings.ToLower(req)) {
				score *= 1.2
			}
		}
	}

	// Job-term boosts: literal terms shared between the job text and the
	// section content.
	job := strings.ToLower(jobTask)
	if strings.Contains(job, "buffet") && strings.Contains(content, "buffet") {
		score *= 1.3
	}
	if strings.Contains(job, "vegetarian") && strings.Contains(content, "vegetarian") {
		score *= 1.3
	}
	if strings.Contains(job, "college") && containsAnyTerm(content, []string{"budget", "affordable", "cheap", "student"}) {
		score *= 1.2
	}
	if strings.Contains(job, "corporate") && containsAnyTerm(content, []string{"professional", "business", "corporate"}) {
		score *= 1.2
	}

	// Title overlap with the profile's domain keywords.
	titleWords := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(section.Title)) {
		titleWords[w] = struct{}{}
	}
	overlap := 0
	counted := make(map[string]struct{})
	for _, kw := range profile.Keywords {
		kw = strings.ToLower(kw)
		if _, dup := counted[kw]; dup {
			continue
		}
		counted[kw] = struct{}{}
		if _, ok := titleWords[kw]; ok {
			overlap++
		}
	}
	if overlap > 0 {
		score *= 1.0 + float64(overlap)*0.1
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}

func containsAnyTerm(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
