package segment

import (
	"regexp"
	"strings"
)

// The segmenter's own header-likeness predicate, used for implicit-section
// boundaries and for stopping explicit content accumulation. It is tuned
// separately from the parser's candidate predicate and intentionally not
// shared with it.
var boundaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z][a-z\s]+:?\s*$`),   // Capitalized phrase
	regexp.MustCompile(`^[A-Z\s]{3,}:?\s*$`),     // All caps phrase
	regexp.MustCompile(`^\d+\.\s+[A-Za-z]`),      // Numbered phrase
	regexp.MustCompile(`^[A-Za-z\s]+ - [A-Za-z]`), // Hyphen separated
}

func looksLikeHeader(line string) bool {
	line = strings.TrimSpace(line)
	if len(line) < 3 || len(line) > 100 {
		return false
	}
	for _, p := range boundaryPatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}
