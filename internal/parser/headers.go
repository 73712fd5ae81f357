package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dgallion1/docrank/internal/document"
)

// Header detection used when emitting explicit header candidates from a
// page. The segmenter carries its own, slightly different predicate for
// implicit-section boundaries; the two are tuned independently and must
// not be unified.
var headerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z][A-Za-z\s]{2,50}:?\s*$`),      // Title case
	regexp.MustCompile(`^[A-Z\s]{3,50}:?\s*$`),              // All caps
	regexp.MustCompile(`^\d+\.\s+[A-Za-z\s]{3,50}:?\s*$`),   // Numbered
	regexp.MustCompile(`^[A-Za-z\s]{3,50}\s*-\s*`),          // Dash separated
	regexp.MustCompile(`^\*\*[A-Za-z\s]{3,50}\*\*`),         // Bold markdown
}

// IsSectionHeader reports whether a single line is likely a section header.
func IsSectionHeader(line string) bool {
	line = strings.TrimSpace(line)
	if len(line) < 3 || len(line) > 100 {
		return false
	}

	for _, p := range headerPatterns {
		if p.MatchString(line) {
			return true
		}
	}

	words := strings.Fields(line)

	// Short all-caps phrases without sentence punctuation.
	if isUpperLine(line) && len(words) <= 8 &&
		!strings.HasSuffix(line, ".") && !strings.Contains(line, ":") {
		return true
	}

	// Short title-cased phrases, tolerating a single colon.
	if isTitleLine(line) && len(words) <= 10 &&
		!strings.HasSuffix(line, ".") && strings.Count(line, ":") <= 1 {
		return true
	}

	return false
}

// isUpperLine reports whether the line contains letters and none of them
// are lowercase.
func isUpperLine(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

// isTitleLine reports whether every word starts with an uppercase letter
// followed only by lowercase letters.
func isTitleLine(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		runes := []rune(w)
		seenFirst := false
		for _, r := range runes {
			if !unicode.IsLetter(r) {
				continue
			}
			if !seenFirst {
				if !unicode.IsUpper(r) {
					return false
				}
				seenFirst = true
			} else if !unicode.IsLower(r) {
				return false
			}
		}
	}
	return true
}

// headersFromLines runs the predicate over every line of plain text,
// producing geometry-free header candidates for formats that have none.
func headersFromLines(text string) []document.HeaderLine {
	var headers []document.HeaderLine
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if IsSectionHeader(line) {
			headers = append(headers, document.HeaderLine{Text: line})
		}
	}
	return headers
}
