package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dgallion1/docrank/internal/config"
	"github.com/dgallion1/docrank/internal/document"
	"github.com/dgallion1/docrank/internal/parser"
	"github.com/dgallion1/docrank/internal/persona"
	"github.com/dgallion1/docrank/internal/rank"
	"github.com/dgallion1/docrank/internal/segment"
)

// documentsDirName is where a collection keeps its source documents.
const documentsDirName = "PDFs"

// Processor runs one collection through parse, segment, profile, rank
// and refine stages. Safe for concurrent use.
type Processor struct {
	ranker         *rank.Ranker
	log            *slog.Logger
	topSections    int
	topSubsections int
	parseWorkers   int
	pdfFallback    bool
}

func NewProcessor(cfg config.Config, ranker *rank.Ranker, log *slog.Logger) *Processor {
	workers := cfg.WorkerCount
	if workers <= 0 {
		workers = 1
	}
	return &Processor{
		ranker:         ranker,
		log:            log,
		topSections:    cfg.TopSections,
		topSubsections: cfg.TopSubsections,
		parseWorkers:   workers,
		pdfFallback:    cfg.PDFFallbackPdftotext,
	}
}

// ProcessCollection reads the input spec in dir, processes it, and
// returns the assembled output. The report callback, when non-nil,
// receives phase transitions.
func (p *Processor) ProcessCollection(ctx context.Context, dir string, report func(phase string)) (*Output, error) {
	spec, err := ReadInputSpec(filepath.Join(dir, InputFileName))
	if err != nil {
		return nil, err
	}

	docsDir := filepath.Join(dir, documentsDirName)
	if _, err := os.Stat(docsDir); err != nil {
		docsDir = dir
	}
	return p.ProcessSpec(ctx, spec, docsDir, report)
}

// ProcessSpec runs the pipeline over an already-loaded spec. A document
// that fails to parse contributes no sections and does not abort the run.
func (p *Processor) ProcessSpec(ctx context.Context, spec *InputSpec, docsDir string, report func(phase string)) (*Output, error) {
	phase := func(name string) {
		if report != nil {
			report(name)
		}
	}

	phase("parsing")
	candidates := p.parseAndSegment(ctx, spec, docsDir)

	phase("profiling")
	profile := persona.NewProfile(spec.Persona.Role, spec.JobToBeDone.Task)
	p.log.Info("created persona profile",
		"persona_type", profile.Type,
		"actions", profile.Actions,
	)

	phase("ranking")
	ranked := p.ranker.RankSections(ctx, candidates, profile, spec.JobToBeDone.Task)

	topSections := ranked
	if len(topSections) > p.topSections {
		topSections = topSections[:p.topSections]
	}

	phase("refining")
	var subsections []document.Subsection
	for _, section := range topSections {
		subsections = append(subsections,
			segment.ExtractSubsections(section.Section, profile, spec.JobToBeDone.Task)...)
	}
	if len(subsections) > p.topSubsections {
		subsections = subsections[:p.topSubsections]
	}

	return assembleOutput(spec, topSections, subsections), nil
}

// parseAndSegment parses every listed document and extracts its section
// candidates. Documents are independent, so they are processed
// concurrently; output order still follows the input spec's document order.
func (p *Processor) parseAndSegment(ctx context.Context, spec *InputSpec, docsDir string) []document.Section {
	perDoc := make([][]document.Section, len(spec.Documents))

	sem := make(chan struct{}, p.parseWorkers)
	var wg sync.WaitGroup
	for i, ref := range spec.Documents {
		wg.Add(1)
		go func(i int, ref DocumentRef) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			doc, err := p.parseDocument(filepath.Join(docsDir, ref.Filename), ref.Filename)
			if err != nil {
				p.log.Warn("document extraction failed, skipping",
					"document", ref.Filename, "error", err)
				return
			}
			perDoc[i] = segment.ExtractSections(doc)
			p.log.Info("extracted sections",
				"document", ref.Filename, "sections", len(perDoc[i]))
		}(i, ref)
	}
	wg.Wait()

	var candidates []document.Section
	for _, sections := range perDoc {
		candidates = append(candidates, sections...)
	}
	return candidates
}

func (p *Processor) parseDocument(path, filename string) (*document.Document, error) {
	pr, err := parser.ForFile(filename)
	if err != nil {
		return nil, err
	}
	if pdf, ok := pr.(*parser.PDFParser); ok {
		pdf.FallbackPdftotext = p.pdfFallback
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()
	return pr.Parse(f, filename)
}

func assembleOutput(spec *InputSpec, sections []document.ScoredSection, subsections []document.Subsection) *Output {
	out := &Output{
		Metadata: Metadata{
			Persona:             spec.Persona.Role,
			JobToBeDone:         spec.JobToBeDone.Task,
			ProcessingTimestamp: time.Now().Format(time.RFC3339),
		},
		ExtractedSections:  []SectionSummary{},
		SubsectionAnalysis: []SubsectionSummary{},
	}
	for _, ref := range spec.Documents {
		out.Metadata.InputDocuments = append(out.Metadata.InputDocuments, ref.Filename)
	}
	for i, s := range sections {
		out.ExtractedSections = append(out.ExtractedSections, SectionSummary{
			Document:       s.Document,
			SectionTitle:   s.Title,
			ImportanceRank: i + 1,
			PageNumber:     s.PageNumber,
		})
	}
	for _, sub := range subsections {
		out.SubsectionAnalysis = append(out.SubsectionAnalysis, SubsectionSummary{
			Document:    sub.Document,
			RefinedText: sub.Content,
			PageNumber:  sub.PageNumber,
		})
	}
	return out
}
