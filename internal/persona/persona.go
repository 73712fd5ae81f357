// Package persona maps free-text role and task descriptions into a
// structured query profile consumed by the ranking and splitting stages.
package persona

import (
	"fmt"
	"strconv"
	"strings"
)

// Profile is the structured interpretation of a persona and its
// job-to-be-done. Built once per run and read-only afterward.
type Profile struct {
	Persona      string
	Type         string
	Job          string
	Actions      []string
	Keywords     []string
	Requirements Requirements
	Priorities   []string
	Weights      ContentWeights
}

// Requirements holds constraints extracted from the job text.
type Requirements struct {
	Dietary      []string
	GroupSize    int    // 0 when the job names no group size.
	Duration     string // e.g. "3 days"; empty when not stated.
	SpecialNeeds []string
}

// ContentWeights expresses the profile's preference across content types.
// The four weights always sum to 1.0.
type ContentWeights struct {
	Instructional float64
	Descriptive   float64
	Analytical    float64
	Reference     float64
}

// NewProfile builds a profile from the raw persona and job strings.
// Deterministic: the same inputs always yield the same profile. Empty
// inputs fall through to the fallback type and default action.
func NewProfile(personaText, jobTask string) *Profile {
	personaLower := strings.ToLower(personaText)
	taskLower := strings.ToLower(jobTask)

	personaType := identifyType(personaLower)
	actions := extractActions(taskLower)

	return &Profile{
		Persona:      personaText,
		Type:         personaType,
		Job:          jobTask,
		Actions:      actions,
		Keywords:     domainKeywords(personaType, taskLower),
		Requirements: extractRequirements(taskLower),
		Priorities:   priorities(personaType, actions),
		Weights:      contentWeights(personaType, actions),
	}
}

// identifyType resolves the persona type: first category whose name or
// top-3 keywords appear as a substring wins, then domain-hint fallbacks,
// then the default.
func identifyType(persona string) string {
	for _, cat := range personaCategories {
		if strings.Contains(persona, cat.name) {
			return cat.name
		}
		for _, kw := range cat.keywords[:3] {
			if strings.Contains(persona, kw) {
				return cat.name
			}
		}
	}

	for _, fb := range fallbackHints {
		for _, hint := range fb.hints {
			if strings.Contains(persona, hint) {
				return fb.typ
			}
		}
	}
	return defaultPersonaType
}

func extractActions(task string) []string {
	var actions []string
	add := func(action string) {
		for _, a := range actions {
			if a == action {
				return
			}
		}
		actions = append(actions, action)
	}

	for _, cat := range actionCategories {
		if strings.Contains(task, cat.name) {
			add(cat.name)
			continue
		}
		for _, syn := range cat.synonyms {
			if strings.Contains(task, syn) {
				add(cat.name)
				break
			}
		}
	}

	for _, fa := range forcedActions {
		for _, trigger := range fa.triggers {
			if strings.Contains(task, trigger) {
				add(fa.action)
				break
			}
		}
	}

	if len(actions) == 0 {
		actions = []string{"analyze"}
	}
	return actions
}

func domainKeywords(personaType, task string) []string {
	var keywords []string
	for _, cat := range personaCategories {
		if cat.name == personaType {
			keywords = append(keywords, cat.keywords...)
			break
		}
	}

	for _, set := range taskKeywordSets {
		for _, trigger := range set.triggers {
			if strings.Contains(task, trigger) {
				keywords = append(keywords, set.keywords...)
				break
			}
		}
	}
	return keywords
}

func extractRequirements(task string) Requirements {
	var req Requirements

	for _, term := range dietaryTerms {
		if strings.Contains(task, term) {
			req.Dietary = append(req.Dietary, term)
		}
	}

	if m := groupSizeRe.FindStringSubmatch(task); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			req.GroupSize = n
		}
	}

	if m := durationRe.FindStringSubmatch(task); m != nil {
		req.Duration = fmt.Sprintf("%s %ss", m[1], m[2])
	}

	for _, sn := range specialNeedTags {
		if strings.Contains(task, sn.trigger) {
			req.SpecialNeeds = append(req.SpecialNeeds, sn.tag)
		}
	}
	return req
}

func priorities(personaType string, actions []string) []string {
	base, ok := priorityAreas[personaType]
	if !ok {
		base = defaultPriorities
	}

	var out []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	for _, p := range base {
		add(p)
	}
	for _, action := range actions {
		for _, p := range actionPriorities[action] {
			add(p)
		}
	}
	return out
}

// contentWeights starts from a fixed baseline, applies persona-type and
// action adjustments, and renormalizes so the weights sum to 1.0.
func contentWeights(personaType string, actions []string) ContentWeights {
	w := ContentWeights{
		Instructional: 0.3,
		Descriptive:   0.3,
		Analytical:    0.2,
		Reference:     0.2,
	}

	switch personaType {
	case "student", "researcher":
		w.Analytical += 0.2
		w.Reference += 0.1
	case "planner", "contractor":
		w.Instructional += 0.2
		w.Descriptive += 0.1
	}

	has := func(action string) bool {
		for _, a := range actions {
			if a == action {
				return true
			}
		}
		return false
	}
	if has("create") || has("prepare") {
		w.Instructional += 0.2
	}
	if has("analyze") {
		w.Analytical += 0.2
	}
	if has("plan") {
		w.Descriptive += 0.2
	}

	total := w.Instructional + w.Descriptive + w.Analytical + w.Reference
	w.Instructional /= total
	w.Descriptive /= total
	w.Analytical /= total
	w.Reference /= total
	return w
}
