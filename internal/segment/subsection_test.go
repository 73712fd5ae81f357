package segment

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dgallion1/docrank/internal/document"
	"github.com/dgallion1/docrank/internal/persona"
)

func TestSplitBody_NumberedList(t *testing.T) {
	parts := splitBody("1. First step\n2. Second step\n3. Third step")
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %d: %q", len(parts), parts)
	}
	if parts[1] != "Second step" {
		t.Errorf("expected middle part 'Second step', got %q", parts[1])
	}
}

func TestSplitBody_BulletList(t *testing.T) {
	parts := splitBody("Checklist\n- Confirm the headcount\n- Review dietary notes")
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %d: %q", len(parts), parts)
	}
	if parts[2] != "Review dietary notes" {
		t.Errorf("expected last part 'Review dietary notes', got %q", parts[2])
	}
}

func TestSplitBody_SentenceGrouping(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 12; i++ {
		b.WriteString("The caterer confirms the order with the venue manager. ")
	}

	parts := splitBody(strings.TrimSpace(b.String()))
	if len(parts) < 2 {
		t.Fatalf("expected multiple chunks from long prose, got %d", len(parts))
	}
	for i, p := range parts {
		if strings.TrimSpace(p) == "" {
			t.Errorf("chunk %d is empty", i)
		}
	}
}

func TestSplitBody_OversizedBisect(t *testing.T) {
	filler := strings.Repeat("lorem ipsum dolor sit amet ", 46)
	content := filler + "extra padding words here. " + filler

	parts := splitBody(content)
	if len(parts) != 2 {
		t.Fatalf("expected bisection into 2 parts, got %d", len(parts))
	}
	if !strings.HasSuffix(parts[0], ".") {
		t.Errorf("expected first half to end at a sentence boundary, got %q",
			parts[0][len(parts[0])-20:])
	}
}

func TestSplitBody_PlainContentKeptWhole(t *testing.T) {
	content := "A single short paragraph with nothing to split on at all."
	parts := splitBody(content)
	if len(parts) != 1 || parts[0] != content {
		t.Fatalf("expected content kept whole, got %q", parts)
	}
}

func TestExtractSubsections_ShortCandidatesFiltered(t *testing.T) {
	profile := persona.NewProfile("Food Contractor", "Prepare a buffet")
	section := document.Section{
		Document:   "menu.pdf",
		Content:    "1. First step\n2. Second step\n3. Third step",
		PageNumber: 1,
	}

	subs := ExtractSubsections(section, profile, "Prepare a buffet")
	if len(subs) != 0 {
		t.Fatalf("expected all sub-minimum candidates filtered, got %d", len(subs))
	}
}

func TestExtractSubsections_CapAndOrder(t *testing.T) {
	item := strings.Repeat("rinse and chop the produce before the morning delivery arrives ", 2)
	var b strings.Builder
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&b, "\n%d. %s", i, item)
	}

	profile := persona.NewProfile("Food Contractor", "Prepare a buffet")
	section := document.Section{Document: "menu.pdf", Content: b.String(), PageNumber: 2}

	subs := ExtractSubsections(section, profile, "Prepare a buffet")
	if len(subs) != maxSubsections {
		t.Fatalf("expected %d subsections, got %d", maxSubsections, len(subs))
	}
	// Identical candidates score identically, so split order is preserved.
	for i := 1; i < len(subs); i++ {
		if subs[i-1].Index > subs[i].Index {
			t.Errorf("tie order not preserved: index %d before %d",
				subs[i-1].Index, subs[i].Index)
		}
	}
	for _, s := range subs {
		if s.Document != "menu.pdf" || s.PageNumber != 2 {
			t.Errorf("subsection lost provenance: %+v", s)
		}
	}
}

func TestExtractSubsections_DietaryMatchRanksFirst(t *testing.T) {
	pad := strings.Repeat("the station layout is reviewed with the venue staff early ", 2)
	content := "1. " + pad + "\n2. vegetarian dishes are plated separately here " + pad

	profile := persona.NewProfile(
		"Food Contractor",
		"Prepare a vegetarian buffet menu for a corporate event of 50 people",
	)
	section := document.Section{Document: "menu.pdf", Content: content, PageNumber: 1}

	subs := ExtractSubsections(section, profile, "Prepare a vegetarian buffet menu")
	if len(subs) != 2 {
		t.Fatalf("expected 2 subsections, got %d", len(subs))
	}
	if !strings.Contains(subs[0].Content, "vegetarian") {
		t.Errorf("expected dietary match ranked first, got %q", subs[0].Content)
	}
}
