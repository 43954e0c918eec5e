// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TextBlock is a run of text from one PDF page, annotated with the layout
// signals used for heading classification. Blocks are immutable once created
// and ordered in natural reading order: page, then vertical position (top to
// bottom), then horizontal position.
type TextBlock struct {
	// DocumentID identifies the source document (the input filename).
	DocumentID string `json:"document_id" yaml:"document_id"`

	// PageNumber is the 1-based page the block appears on.
	PageNumber int `json:"page_number" yaml:"page_number"`

	// Text is the block content with runs space-joined.
	Text string `json:"text" yaml:"text"`

	// FontSize is the block's font size in points.
	FontSize float64 `json:"font_size" yaml:"font_size"`

	// IsBold reports whether the block's font is a bold face.
	IsBold bool `json:"is_bold" yaml:"is_bold"`

	// YPosition is the vertical position in PDF user space (origin bottom-left,
	// so larger Y is higher on the page).
	YPosition float64 `json:"y_position" yaml:"y_position"`

	// XPosition is the horizontal position in PDF user space.
	XPosition float64 `json:"x_position" yaml:"x_position"`
}

// Section is a heading paired with the body text that follows it, up to the
// next heading or the end of the document. Title is never empty and
// PageNumber is always >= 1; BodyText may be empty when one heading is
// immediately followed by another.
type Section struct {
	// DocumentID identifies the document that owns the section.
	DocumentID string `json:"document_id" yaml:"document_id"`

	// Title is the heading text.
	Title string `json:"title" yaml:"title"`

	// PageNumber is the page the heading appears on (1-based).
	PageNumber int `json:"page_number" yaml:"page_number"`

	// BodyText is the space-joined text of the blocks under the heading.
	BodyText string `json:"body_text" yaml:"body_text"`

	// HeadingLevel is the heading's prominence ordinal (1 = most prominent).
	HeadingLevel int `json:"heading_level" yaml:"heading_level"`
}

// ScoredSection is a Section with its relevance score and, after selection,
// its importance rank. Rank is assigned by the selector from sort position and
// is never computed independently.
type ScoredSection struct {
	Section

	// Score is the relevance value against the query profile (>= 0).
	Score float64 `json:"score" yaml:"score"`

	// Rank is the 1-based dense importance rank; zero until assigned.
	Rank int `json:"rank" yaml:"rank"`

	// Seq is the section's global appearance index across the batch, in input
	// document order. It is the final tie-break key for equal scores.
	Seq int `json:"seq" yaml:"seq"`
}

// RefinedExcerpt is the bounded, query-relevant excerpt derived from exactly
// one selected section.
type RefinedExcerpt struct {
	// DocumentID identifies the source document.
	DocumentID string `json:"document_id" yaml:"document_id"`

	// PageNumber is the page of the source section's heading.
	PageNumber int `json:"page_number" yaml:"page_number"`

	// RefinedText is the excerpt, at most the configured character budget.
	RefinedText string `json:"refined_text" yaml:"refined_text"`
}
