// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Request is the validated input to a digest run: the persona and job text
// plus the ordered list of PDF filenames to analyze. An empty persona or job
// is legal (all sections score zero); an empty file list is not.
type Request struct {
	Persona     string   `json:"persona" yaml:"persona"`
	JobToBeDone string   `json:"job_to_be_done" yaml:"job_to_be_done"`
	PDFFiles    []string `json:"pdf_files" yaml:"pdf_files"`
}

// DigestMetadata describes the run that produced a digest.
type DigestMetadata struct {
	// InputDocuments lists the documents that survived decoding, in input order.
	InputDocuments []string `json:"input_documents" yaml:"input_documents"`

	Persona     string `json:"persona" yaml:"persona"`
	JobToBeDone string `json:"job_to_be_done" yaml:"job_to_be_done"`

	// ProcessingTimestamp is the run time in RFC 3339 format.
	ProcessingTimestamp string `json:"processing_timestamp" yaml:"processing_timestamp"`
}

// ExtractedSection is one ranked section in the digest output.
type ExtractedSection struct {
	Document       string `json:"document" yaml:"document"`
	SectionTitle   string `json:"section_title" yaml:"section_title"`
	ImportanceRank int    `json:"importance_rank" yaml:"importance_rank"`
	PageNumber     int    `json:"page_number" yaml:"page_number"`
}

// SubsectionEntry is the refined excerpt for one ranked section. Entries
// correspond 1:1 with ExtractedSections, in the same order.
type SubsectionEntry struct {
	Document    string `json:"document" yaml:"document"`
	RefinedText string `json:"refined_text" yaml:"refined_text"`
	PageNumber  int    `json:"page_number" yaml:"page_number"`
}

// Digest is the final result structure written as JSON. ExtractedSections is
// ordered by ImportanceRank ascending (1 = most relevant).
type Digest struct {
	Metadata           DigestMetadata     `json:"metadata" yaml:"metadata"`
	ExtractedSections  []ExtractedSection `json:"extracted_sections" yaml:"extracted_sections"`
	SubsectionAnalysis []SubsectionEntry  `json:"subsection_analysis" yaml:"subsection_analysis"`
}
