// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// LayoutConfig holds settings for text block extraction and heading
// classification.
type LayoutConfig struct {
	// MaxHeadingLevels caps how many distinct heading levels are assigned
	// (default 3).
	MaxHeadingLevels int `json:"max_heading_levels" yaml:"max_heading_levels"`

	// MaxHeadingLength is the longest text, in runes, still considered a
	// heading (default 120). Headings are short.
	MaxHeadingLength int `json:"max_heading_length" yaml:"max_heading_length"`

	// LineTolerance is the vertical distance, in points, within which runs are
	// merged onto the same block (default 2.0).
	LineTolerance float64 `json:"line_tolerance" yaml:"line_tolerance"`

	// BoldPromotionWindow is the font-size distance from the document median,
	// in points, within which a bold block is promoted to a heading
	// (default 0.5).
	BoldPromotionWindow float64 `json:"bold_promotion_window" yaml:"bold_promotion_window"`
}

// ScoringConfig holds the weighting constants for relevance scoring. The
// exact values are a repository decision; ordering properties, not absolute
// scores, are the contract.
type ScoringConfig struct {
	// TitleFactor multiplies keyword matches in section titles (default 2.0).
	TitleFactor float64 `json:"title_factor" yaml:"title_factor"`

	// CategoryBoost multiplies the weight of tokens that belong to the
	// inferred persona category's lexicon (default 3.0).
	CategoryBoost float64 `json:"category_boost" yaml:"category_boost"`

	// CrossBoost is added to the weight of tokens present in both the persona
	// and the job text (default 1.0).
	CrossBoost float64 `json:"cross_boost" yaml:"cross_boost"`

	// MinTokenLength drops shorter tokens during normalization (default 3).
	MinTokenLength int `json:"min_token_length" yaml:"min_token_length"`
}

// DigestConfig holds settings for selection and excerpt refinement.
type DigestConfig struct {
	// Size is the number of top sections in the digest (default 5).
	Size int `json:"size" yaml:"size"`

	// ExcerptBudget is the maximum refined-text length in characters
	// (default 500).
	ExcerptBudget int `json:"excerpt_budget" yaml:"excerpt_budget"`
}

// RetryConfig bounds retries around transient collaborator faults.
type RetryConfig struct {
	// MaxAttempts is the total attempt count including the first (default 3).
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts"`

	// BaseDelay is the backoff base; the delay doubles each attempt
	// (default 100ms).
	BaseDelay time.Duration `json:"base_delay" yaml:"base_delay"`
}

// PipelineConfig groups all stage configurations for one digest run. It is
// built once and passed by value; nothing mutates it after construction.
type PipelineConfig struct {
	Layout  LayoutConfig  `json:"layout" yaml:"layout"`
	Scoring ScoringConfig `json:"scoring" yaml:"scoring"`
	Digest  DigestConfig  `json:"digest" yaml:"digest"`
	Retry   RetryConfig   `json:"retry" yaml:"retry"`

	// Workers bounds concurrent per-document extraction (default 4).
	Workers int `json:"workers" yaml:"workers"`

	// HistoryDir is the directory holding the run-history database.
	HistoryDir string `json:"history_dir" yaml:"history_dir"`
}

// DefaultPipelineConfig returns the documented defaults for every stage.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Layout: LayoutConfig{
			MaxHeadingLevels:    3,
			MaxHeadingLength:    120,
			LineTolerance:       2.0,
			BoldPromotionWindow: 0.5,
		},
		Scoring: ScoringConfig{
			TitleFactor:    2.0,
			CategoryBoost:  3.0,
			CrossBoost:     1.0,
			MinTokenLength: 3,
		},
		Digest: DigestConfig{
			Size:          5,
			ExcerptBudget: 500,
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			BaseDelay:   100 * time.Millisecond,
		},
		Workers:    4,
		HistoryDir: "history",
	}
}
