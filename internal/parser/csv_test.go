package parser

import (
	"fmt"
	"strings"
	"testing"
)

func TestCSVParser_BatchesRowsIntoPages(t *testing.T) {
	var b strings.Builder
	b.WriteString("dish,type\n")
	for i := 1; i <= 25; i++ {
		fmt.Fprintf(&b, "dish%d,vegetarian\n", i)
	}

	doc, err := (&CSVParser{}).Parse(strings.NewReader(b.String()), "menu.csv")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// 25 data rows at 20 per batch gives two pages.
	if len(doc.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(doc.Pages))
	}

	first := doc.Pages[0]
	if first.Number != 1 {
		t.Errorf("first page number = %d", first.Number)
	}
	if len(first.Headers) != 1 || first.Headers[0].Text != "Rows 2 - 21" {
		t.Errorf("unexpected first page header: %v", first.Headers)
	}
	if !strings.Contains(first.Text, "dish: dish1, type: vegetarian") {
		t.Errorf("expected column-labeled cells, got:\n%s", first.Text)
	}

	second := doc.Pages[1]
	if len(second.Headers) != 1 || second.Headers[0].Text != "Rows 22 - 26" {
		t.Errorf("unexpected second page header: %v", second.Headers)
	}
}

func TestCSVParser_EmptyInput(t *testing.T) {
	doc, err := (&CSVParser{}).Parse(strings.NewReader(""), "empty.csv")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Pages) != 0 {
		t.Errorf("expected no pages, got %d", len(doc.Pages))
	}
}
