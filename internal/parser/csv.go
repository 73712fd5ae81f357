package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/docrank/internal/document"
)

// CSVParser handles CSV files. Rows are grouped into batches; each batch
// becomes its own page so result records can point at a row range.
type CSVParser struct{}

const csvBatchSize = 20

func (p *CSVParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	doc := &document.Document{Filename: filename}
	if len(records) == 0 {
		return doc, nil
	}

	// First row is headers.
	columns := records[0]
	dataRows := records[1:]

	page := 0
	for i := 0; i < len(dataRows); i += csvBatchSize {
		end := i + csvBatchSize
		if end > len(dataRows) {
			end = len(dataRows)
		}
		batch := dataRows[i:end]
		title := fmt.Sprintf("Rows %d - %d", i+2, end+1) // 1-indexed, skip header

		var text strings.Builder
		text.WriteString(title + "\n")
		for _, row := range batch {
			for j, cell := range row {
				if j < len(columns) {
					text.WriteString(columns[j] + ": " + cell)
				} else {
					text.WriteString(cell)
				}
				if j < len(row)-1 {
					text.WriteString(", ")
				}
			}
			text.WriteString("\n")
		}

		page++
		doc.Pages = append(doc.Pages, document.Page{
			Number:  page,
			Text:    strings.TrimRight(text.String(), "\n"),
			Headers: []document.HeaderLine{{Text: title}},
		})
	}

	return doc, nil
}
