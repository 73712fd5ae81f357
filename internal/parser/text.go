package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/docrank/internal/document"
)

// TextParser handles plain text files. The whole file becomes a single
// page; blank lines are preserved so paragraph boundaries survive.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), " \t"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(strings.Join(lines, "\n"))
	doc := &document.Document{Filename: filename}
	if text == "" {
		return doc, nil
	}

	doc.Pages = []document.Page{{
		Number:  1,
		Text:    text,
		Headers: headersFromLines(text),
	}}
	return doc, nil
}
