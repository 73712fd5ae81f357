package parser

import "testing"

func TestForFile(t *testing.T) {
	cases := []struct {
		filename string
		wantErr  bool
	}{
		{"report.txt", false},
		{"notes.md", false},
		{"data.csv", false},
		{"page.html", false},
		{"page.htm", false},
		{"South of France - Cuisine.pdf", false},
		{"handbook.docx", false},
		{"archive.zip", true},
		{"noextension", true},
	}

	for _, tc := range cases {
		p, err := ForFile(tc.filename)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ForFile(%q): expected error, got %T", tc.filename, p)
			}
			continue
		}
		if err != nil {
			t.Errorf("ForFile(%q): unexpected error: %v", tc.filename, err)
		}
		if p == nil {
			t.Errorf("ForFile(%q): nil parser", tc.filename)
		}
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("Menu Ideas.PDF") {
		t.Error("expected extension check to be case-insensitive")
	}
	if IsSupportedExtension("image.png") {
		t.Error("expected .png to be unsupported")
	}
}
