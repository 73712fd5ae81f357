package parser

import (
	"strings"
	"testing"
)

func TestIsSectionHeader(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"INTRODUCTION", true},
		{"Getting Started", true},
		{"1. Overview", true},
		{"Appendix - supplementary tables", true},
		{"**Bold Heading**", true},
		{"Getting Started: The Basics", true},
		{"Cooking Techniques:", true},

		{"ab", false},
		{strings.Repeat("x", 101), false},
		{"This is a normal sentence that ends with a period.", false},
		{"plain lowercase prose without structure", false},
		{"A Very Long Title Line That Keeps Going On And On Well Past The Word Limit", false},
	}

	for _, tc := range cases {
		if got := IsSectionHeader(tc.line); got != tc.want {
			t.Errorf("IsSectionHeader(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestIsUpperLine(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"SERVING SUGGESTIONS", true},
		{"PART 2", true},
		{"Serving Suggestions", false},
		{"12345", false},
	}
	for _, tc := range cases {
		if got := isUpperLine(tc.line); got != tc.want {
			t.Errorf("isUpperLine(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestIsTitleLine(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"Venue Checklist", true},
		{"Venue checklist", false},
		{"VENUE CHECKLIST", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := isTitleLine(tc.line); got != tc.want {
			t.Errorf("isTitleLine(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestHeadersFromLines(t *testing.T) {
	text := strings.Join([]string{
		"OVERVIEW",
		"This first paragraph explains what the document covers in plain prose.",
		"",
		"Venue Checklist",
		"and this one continues with more ordinary sentences about the venue.",
	}, "\n")

	headers := headersFromLines(text)
	if len(headers) != 2 {
		t.Fatalf("expected 2 headers, got %d: %v", len(headers), headers)
	}
	if headers[0].Text != "OVERVIEW" || headers[1].Text != "Venue Checklist" {
		t.Errorf("unexpected headers: %v", headers)
	}
}
