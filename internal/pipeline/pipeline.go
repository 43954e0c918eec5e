// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates a digest run: per-document structure
// recovery fans out to workers, the cross-document section pool is scored and
// ranked at a single barrier, and the selected sections are refined and
// assembled into the output digest.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/pdiddy/docdigest/internal/layout"
	"github.com/pdiddy/docdigest/internal/query"
	"github.com/pdiddy/docdigest/internal/rank"
	"github.com/pdiddy/docdigest/internal/refine"
	"github.com/pdiddy/docdigest/internal/retry"
	"github.com/pdiddy/docdigest/pkg/types"
)

// Extractor turns one PDF file into ordered text blocks. The production
// extractor is layout.ExtractDocument; tests substitute their own.
type Extractor func(path, docID string, cfg types.LayoutConfig, w io.Writer) ([]types.TextBlock, error)

// SkippedDocument records a document excluded from the digest and why.
type SkippedDocument struct {
	Document string `json:"document" yaml:"document"`
	Reason   string `json:"reason" yaml:"reason"`
}

// RunReport summarizes a run for the optional YAML sidecar: which documents
// made it in, which were skipped, and how much structure was recovered.
type RunReport struct {
	Processed    []string          `json:"processed" yaml:"processed"`
	Skipped      []SkippedDocument `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	SectionCount int               `json:"section_count" yaml:"section_count"`
	Selected     int               `json:"selected" yaml:"selected"`
}

// Pipeline runs digest requests with a fixed configuration.
type Pipeline struct {
	cfg     types.PipelineConfig
	extract Extractor
	now     func() time.Time
}

// New builds a Pipeline with the production extractor and clock.
func New(cfg types.PipelineConfig) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		extract: layout.ExtractDocument,
		now:     time.Now,
	}
}

// docResult is one worker's output; index preserves input order.
type docResult struct {
	sections []types.Section
	err      error
	progress []byte
}

// Run executes the full pipeline for one request, writing progress to w.
//
// Per-document work runs on up to cfg.Workers goroutines, each owning its
// document exclusively. Results are reassembled in input order before
// scoring, so sequence numbers — and therefore tie-breaking — are
// deterministic regardless of worker scheduling. An unreadable document is
// skipped and excluded from the metadata; the batch fails only when the
// request is malformed or no document survives.
func (p *Pipeline) Run(ctx context.Context, req types.Request, w io.Writer) (types.Digest, RunReport, error) {
	if len(req.PDFFiles) == 0 {
		return types.Digest{}, RunReport{}, &ValidationError{Reason: "no PDF files in request"}
	}

	profile := query.BuildProfile(req.Persona, req.JobToBeDone, p.cfg.Scoring)
	fmt.Fprintf(w, "query profile: category=%s group=%s keywords=%d\n",
		profile.Category, profile.Group, len(profile.KeywordWeights))

	results := p.extractAll(ctx, req.PDFFiles)

	var report RunReport
	var pool []types.ScoredSection
	seq := 0

	for i, path := range req.PDFFiles {
		docID := filepath.Base(path)
		res := results[i]
		if len(res.progress) > 0 {
			w.Write(res.progress)
		}
		if res.err != nil {
			reason := res.err.Error()
			var derr *DocumentError
			if errors.As(res.err, &derr) {
				reason = derr.Err.Error()
			}
			fmt.Fprintf(w, "warning: skipping %s: %s\n", docID, reason)
			report.Skipped = append(report.Skipped, SkippedDocument{Document: docID, Reason: reason})
			continue
		}

		report.Processed = append(report.Processed, docID)
		for _, sec := range res.sections {
			pool = append(pool, types.ScoredSection{
				Section: sec,
				Score:   rank.Score(sec, profile, p.cfg.Scoring),
				Seq:     seq,
			})
			seq++
		}
	}

	if len(report.Processed) == 0 {
		return types.Digest{}, report, ErrEmptyDocumentSet
	}

	report.SectionCount = len(pool)
	selected := rank.Select(pool, p.cfg.Digest.Size)
	report.Selected = len(selected)

	digest := p.assemble(req, report.Processed, selected, profile)
	fmt.Fprintf(w, "selected %d of %d sections from %d document(s)\n",
		len(selected), len(pool), len(report.Processed))

	return digest, report, nil
}

// extractAll fans the documents out to bounded workers and returns results
// indexed by input position. Each worker writes its progress to a private
// buffer so the combined output stays in input order.
func (p *Pipeline) extractAll(ctx context.Context, paths []string) []docResult {
	workers := p.cfg.Workers
	if workers <= 0 {
		workers = 4
	}

	results := make([]docResult, len(paths))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()

			docID := filepath.Base(path)
			var buf bytes.Buffer

			blocks, err := retry.Do(ctx, p.cfg.Retry, IsTransient, func() ([]types.TextBlock, error) {
				return p.extract(path, docID, p.cfg.Layout, &buf)
			})
			if err != nil {
				results[i] = docResult{
					err:      &DocumentError{Document: docID, Err: err},
					progress: buf.Bytes(),
				}
				return
			}

			sections := layout.AssembleSections(docID, blocks, p.cfg.Layout)
			results[i] = docResult{sections: sections, progress: buf.Bytes()}
		}(i, path)
	}

	wg.Wait()
	return results
}

// assemble builds the final digest: sections ordered by importance rank,
// subsection analysis 1:1 in the same order.
func (p *Pipeline) assemble(req types.Request, processed []string, selected []types.ScoredSection, profile types.QueryProfile) types.Digest {
	digest := types.Digest{
		Metadata: types.DigestMetadata{
			InputDocuments:      processed,
			Persona:             req.Persona,
			JobToBeDone:         req.JobToBeDone,
			ProcessingTimestamp: p.now().Format(time.RFC3339),
		},
		ExtractedSections:  make([]types.ExtractedSection, 0, len(selected)),
		SubsectionAnalysis: make([]types.SubsectionEntry, 0, len(selected)),
	}

	for _, sec := range selected {
		digest.ExtractedSections = append(digest.ExtractedSections, types.ExtractedSection{
			Document:       sec.DocumentID,
			SectionTitle:   sec.Title,
			ImportanceRank: sec.Rank,
			PageNumber:     sec.PageNumber,
		})

		excerpt := refine.Excerpt(sec, profile, p.cfg.Scoring, p.cfg.Digest.ExcerptBudget)
		digest.SubsectionAnalysis = append(digest.SubsectionAnalysis, types.SubsectionEntry{
			Document:    excerpt.DocumentID,
			RefinedText: excerpt.RefinedText,
			PageNumber:  excerpt.PageNumber,
		})
	}

	return digest
}
