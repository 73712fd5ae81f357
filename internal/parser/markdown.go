package parser

import (
	"io"
	"strings"

	"github.com/dgallion1/docrank/internal/document"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Headings become
// header candidates; the rendered page keeps headings on their own line
// with blank-line separated paragraphs below them.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	root := md.Parser().Parse(reader)

	var blocks []string
	var headers []document.HeaderLine

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := strings.TrimSpace(string(node.Text(src)))
			if title != "" {
				blocks = append(blocks, title)
				headers = append(headers, document.HeaderLine{Text: title})
			}
		default:
			t := strings.TrimSpace(string(n.Text(src)))
			if t != "" {
				blocks = append(blocks, t)
			}
		}
	}

	doc := &document.Document{Filename: filename}
	if len(blocks) == 0 {
		return doc, nil
	}
	doc.Pages = []document.Page{{
		Number:  1,
		Text:    strings.Join(blocks, "\n\n"),
		Headers: headers,
	}}
	return doc, nil
}
