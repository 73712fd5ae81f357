package parser

import (
	"strings"
	"testing"
)

func TestTextParser_SinglePageWithHeaders(t *testing.T) {
	input := strings.Join([]string{
		"CATERING OVERVIEW",
		"This guide walks through planning a large event from first contact",
		"with the venue to the final teardown at the end of the night.",
		"",
		"Venue Checklist",
		"Confirm the room layout and the available kitchen equipment early.",
	}, "\n")

	doc, err := (&TextParser{}).Parse(strings.NewReader(input), "guide.txt")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Filename != "guide.txt" {
		t.Errorf("filename = %q", doc.Filename)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}

	page := doc.Pages[0]
	if page.Number != 1 {
		t.Errorf("page number = %d, want 1", page.Number)
	}
	if !strings.Contains(page.Text, "\n\nVenue Checklist") {
		t.Errorf("paragraph boundary lost:\n%s", page.Text)
	}
	if len(page.Headers) != 2 {
		t.Fatalf("expected 2 headers, got %d: %v", len(page.Headers), page.Headers)
	}
	if page.Headers[0].Text != "CATERING OVERVIEW" {
		t.Errorf("first header = %q", page.Headers[0].Text)
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	doc, err := (&TextParser{}).Parse(strings.NewReader("  \n\n  "), "empty.txt")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Pages) != 0 {
		t.Errorf("expected no pages for blank input, got %d", len(doc.Pages))
	}
}
