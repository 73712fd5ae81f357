package document

// Document is a fully extracted input document. Immutable once parsed.
type Document struct {
	Filename string
	Pages    []Page
}

// Page holds the reading-order text of one page plus any header-line
// candidates the parser detected. Page numbers are 1-based.
type Page struct {
	Number  int
	Text    string // Newline-joined lines.
	Headers []HeaderLine
}

// HeaderLine is a line the parser flagged as a likely section header,
// with page-relative geometry where the source format provides it.
type HeaderLine struct {
	Text     string
	X        float64
	Y        float64
	Width    float64
	FontSize float64
}

// SectionKind distinguishes how a section was discovered.
type SectionKind string

const (
	// KindExplicit sections are anchored to a detected header line.
	KindExplicit SectionKind = "explicit"
	// KindImplicit sections are inferred from paragraph boundaries.
	KindImplicit SectionKind = "implicit"
)

// Section is a contiguous passage of document text with a title.
type Section struct {
	Document   string
	Title      string
	Content    string
	PageNumber int
	Kind       SectionKind
}

// ScoredSection pairs a section with its fused relevance score.
type ScoredSection struct {
	Section
	Score float64
}

// Subsection is a finer-grained passage split out of a single parent
// section. Index is the subsection's position in the original split order.
type Subsection struct {
	Document   string
	Content    string
	PageNumber int
	Score      float64
	Index      int
}
