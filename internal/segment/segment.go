// Package segment turns extracted pages into candidate sections and
// splits ranked sections into finer-grained subsections.
package segment

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dgallion1/docrank/internal/document"
)

const (
	minSectionLen    = 50
	maxSectionLen    = 2000
	minSubsectionLen = 100
	maxSubsections   = 3
)

// ExtractSections extracts explicit and implicit sections from every page
// of a document, drops invalid ones, deduplicates, and orders the rest by
// a content-quality heuristic.
func ExtractSections(doc *document.Document) []document.Section {
	var sections []document.Section

	for _, page := range doc.Pages {
		for _, header := range page.Headers {
			content := headerContent(page.Text, header.Text)
			if !isValidSection(content) {
				continue
			}
			sections = append(sections, document.Section{
				Document:   doc.Filename,
				Title:      header.Text,
				Content:    content,
				PageNumber: page.Number,
				Kind:       document.KindExplicit,
			})
		}

		sections = append(sections, implicitSections(page, doc.Filename)...)
	}

	sections = Deduplicate(sections)
	rankByQuality(sections)
	return sections
}

// headerContent collects the lines following the header's line, stopping
// at the next header-looking line once at least 3 content lines have been
// accumulated, or at end of page.
func headerContent(pageText, title string) string {
	lines := strings.Split(pageText, "\n")
	start := -1
	titleLower := strings.ToLower(title)
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), titleLower) {
			start = i
			break
		}
	}
	if start == -1 {
		return ""
	}

	var content []string
	for _, line := range lines[start+1:] {
		line = strings.TrimSpace(line)
		if looksLikeHeader(line) && len(content) > 3 {
			break
		}
		if line != "" {
			content = append(content, line)
		}
	}
	return strings.Join(content, " ")
}

// implicitSections walks paragraph blocks with a small accumulator state
// machine: a header-looking first line opens a new section and flushes
// the previous one; the final open section flushes at end of page.
func implicitSections(page document.Page, filename string) []document.Section {
	paragraphs := splitParagraphs(page.Text)

	var sections []document.Section
	var acc accumulator

	flush := func() {
		if acc.title == "" || len(acc.parts) == 0 {
			return
		}
		content := strings.Join(acc.parts, " ")
		if !isValidSection(content) {
			return
		}
		sections = append(sections, document.Section{
			Document:   filename,
			Title:      acc.title,
			Content:    content,
			PageNumber: page.Number,
			Kind:       document.KindImplicit,
		})
	}

	for _, para := range paragraphs {
		firstLine := strings.TrimSpace(strings.SplitN(para, "\n", 2)[0])

		if looksLikeHeader(firstLine) && len(acc.parts) > 0 {
			flush()
			acc = accumulator{title: firstLine}
			if rest := strings.TrimSpace(para[len(firstLine):]); rest != "" {
				acc.parts = append(acc.parts, rest)
			}
		} else {
			acc.parts = append(acc.parts, para)
		}
	}
	flush()

	return sections
}

// accumulator holds the implicit-section state: empty title means no
// section is open yet.
type accumulator struct {
	title string
	parts []string
}

func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// isValidSection enforces the section invariant: length within
// [minSectionLen, maxSectionLen] and a distinct-word ratio of at least 0.3.
func isValidSection(content string) bool {
	trimmed := strings.TrimSpace(content)
	if len(trimmed) < minSectionLen {
		return false
	}
	if len(content) > maxSectionLen {
		return false
	}

	words := strings.Fields(content)
	distinct := make(map[string]struct{}, len(words))
	for _, w := range words {
		distinct[w] = struct{}{}
	}
	return float64(len(distinct)) >= float64(len(words))*0.3
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Deduplicate drops sections whose whitespace-normalized lowercase content
// was already seen. Exact matches only; near-duplicates are kept.
func Deduplicate(sections []document.Section) []document.Section {
	seen := make(map[string]struct{}, len(sections))
	unique := sections[:0:0]

	for _, s := range sections {
		normalized := whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(s.Content)), " ")
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		unique = append(unique, s)
	}
	return unique
}

var infoWords = []string{"how", "what", "where", "when", "why", "include", "contain"}

// rankByQuality stably sorts sections best-first by length fit, structural
// markers, and informativeness keywords.
func rankByQuality(sections []document.Section) {
	sort.SliceStable(sections, func(i, j int) bool {
		return qualityScore(sections[i].Content) > qualityScore(sections[j].Content)
	})
}

func qualityScore(content string) float64 {
	var score float64

	switch length := len(content); {
	case length >= 200 && length <= 1000:
		score += 2
	case length >= 100 && length <= 1500:
		score += 1
	}

	for _, marker := range []string{":", "1.", "•", "-"} {
		if strings.Contains(content, marker) {
			score += 1
			break
		}
	}

	lower := strings.ToLower(content)
	for _, w := range infoWords {
		if strings.Contains(lower, w) {
			score += 0.5
		}
	}
	return score
}
