package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
)

// InputFileName is the collection specification expected in every
// collection directory.
const InputFileName = "input.json"

// OutputFileName is written next to the input spec after processing.
const OutputFileName = "output.json"

// InputSpec describes one collection-processing request: the documents to
// read, the reader persona, and the job to be done.
type InputSpec struct {
	ChallengeInfo map[string]any `json:"challenge_info,omitempty"`
	Documents     []DocumentRef  `json:"documents"`
	Persona       PersonaSpec    `json:"persona"`
	JobToBeDone   JobSpec        `json:"job_to_be_done"`
}

// DocumentRef names one input document inside the collection's documents
// directory.
type DocumentRef struct {
	Filename string `json:"filename"`
	Title    string `json:"title,omitempty"`
}

type PersonaSpec struct {
	Role string `json:"role"`
}

type JobSpec struct {
	Task string `json:"task"`
}

// Output is the serialized result of a collection run.
type Output struct {
	Metadata           Metadata            `json:"metadata"`
	ExtractedSections  []SectionSummary    `json:"extracted_sections"`
	SubsectionAnalysis []SubsectionSummary `json:"subsection_analysis"`
}

type Metadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// SectionSummary is one ranked section. ImportanceRank is 1-based.
type SectionSummary struct {
	Document      string `json:"document"`
	SectionTitle  string `json:"section_title"`
	ImportanceRank int   `json:"importance_rank"`
	PageNumber    int    `json:"page_number"`
}

type SubsectionSummary struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	PageNumber  int    `json:"page_number"`
}

// ReadInputSpec loads and validates a collection input spec.
func ReadInputSpec(path string) (*InputSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input spec: %w", err)
	}
	var spec InputSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse input spec: %w", err)
	}
	if len(spec.Documents) == 0 {
		return nil, fmt.Errorf("input spec lists no documents")
	}
	return &spec, nil
}

// WriteOutput serializes the result next to the input spec.
func WriteOutput(path string, out *Output) error {
	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
