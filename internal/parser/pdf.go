package parser

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/dgallion1/docrank/internal/document"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFParser handles PDF files. It tries the Go library first,
// then falls back to pdftotext if available.
type PDFParser struct {
	FallbackPdftotext bool
}

func (p *PDFParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "docrank-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	doc, err := extractPDFPages(tmpPath, filename)
	if err != nil && p.FallbackPdftotext {
		doc, err = extractPdftotext(tmpPath, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}
	return doc, nil
}

// extractPDFPages walks every page, reconstructs reading-order lines from
// positioned text runs, and flags header-line candidates.
func extractPDFPages(path, filename string) (*document.Document, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc := &document.Document{Filename: filename}
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows := rowsFromContent(page.Content())
		if len(rows) == 0 {
			continue
		}

		var lines []string
		var headers []document.HeaderLine
		body := medianFontSize(rows)

		for _, row := range rows {
			text := strings.TrimSpace(row.text)
			if text == "" {
				continue
			}
			lines = append(lines, text)

			if isHeaderRow(row, text, body) {
				headers = append(headers, document.HeaderLine{
					Text:     text,
					X:        row.x,
					Y:        row.y,
					Width:    row.width,
					FontSize: row.fontSize,
				})
			}
		}

		if len(lines) == 0 {
			continue
		}
		doc.Pages = append(doc.Pages, document.Page{
			Number:  i,
			Text:    strings.Join(lines, "\n"),
			Headers: headers,
		})
	}
	return doc, nil
}

// isHeaderRow accepts a row as a header candidate when the line text looks
// like a header, or when the row is set noticeably larger than the page's
// body font and is short enough to be a heading.
func isHeaderRow(row pdfRow, text string, bodyFontSize float64) bool {
	if len(text) < 3 || len(text) > 100 {
		return false
	}
	if IsSectionHeader(text) {
		return true
	}
	return bodyFontSize > 0 && row.fontSize >= bodyFontSize*1.2 &&
		len(strings.Fields(text)) <= 8
}

// pdfRow is one reconstructed text line with its dominant geometry.
type pdfRow struct {
	text     string
	x, y     float64
	width    float64
	fontSize float64
}

// yTolerance groups text runs whose baselines differ by less than this
// many points into the same line.
const yTolerance = 2.0

func rowsFromContent(content pdflib.Content) []pdfRow {
	texts := make([]pdflib.Text, len(content.Text))
	copy(texts, content.Text)
	if len(texts) == 0 {
		return nil
	}

	// Top-to-bottom (PDF Y grows upward), then left-to-right.
	sort.SliceStable(texts, func(i, j int) bool {
		if diff := texts[i].Y - texts[j].Y; diff > yTolerance || diff < -yTolerance {
			return texts[i].Y > texts[j].Y
		}
		return texts[i].X < texts[j].X
	})

	var rows []pdfRow
	var cur pdfRow
	var prevEnd float64
	open := false

	flush := func() {
		if open && strings.TrimSpace(cur.text) != "" {
			cur.width = prevEnd - cur.x
			rows = append(rows, cur)
		}
		open = false
	}

	for _, t := range texts {
		if t.S == "" {
			continue
		}
		if !open || cur.y-t.Y > yTolerance || t.Y-cur.y > yTolerance {
			flush()
			cur = pdfRow{x: t.X, y: t.Y, fontSize: t.FontSize}
			prevEnd = t.X
			open = true
		}
		// Runs are often split mid-line; re-insert a space across gaps.
		if cur.text != "" && !strings.HasSuffix(cur.text, " ") &&
			!strings.HasPrefix(t.S, " ") && t.X-prevEnd > 1.0 {
			cur.text += " "
		}
		cur.text += t.S
		if t.FontSize > cur.fontSize {
			cur.fontSize = t.FontSize
		}
		prevEnd = t.X + t.W
	}
	flush()

	return rows
}

func medianFontSize(rows []pdfRow) float64 {
	if len(rows) == 0 {
		return 0
	}
	sizes := make([]float64, 0, len(rows))
	for _, r := range rows {
		if r.fontSize > 0 {
			sizes = append(sizes, r.fontSize)
		}
	}
	if len(sizes) == 0 {
		return 0
	}
	sort.Float64s(sizes)
	return sizes[len(sizes)/2]
}

// extractPdftotext shells out to pdftotext. Only line text survives this
// path, so header candidates carry no geometry.
func extractPdftotext(path, filename string) (*document.Document, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}

	doc := &document.Document{Filename: filename}
	for i, pageText := range strings.Split(string(out), "\f") {
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}
		doc.Pages = append(doc.Pages, document.Page{
			Number:  i + 1,
			Text:    pageText,
			Headers: headersFromLines(pageText),
		})
	}
	return doc, nil
}
