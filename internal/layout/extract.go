// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package layout recovers a logical heading/section structure from PDF page
// content using font-size, boldness, and position signals. Extraction,
// classification, and assembly are separate phases so each is a pure function
// of one document's data.
package layout

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/pdiddy/docdigest/pkg/types"
)

// Run is a single positioned text run as delivered by the PDF decoder.
type Run struct {
	Text     string
	Font     string
	FontSize float64
	X, Y, W  float64
}

// ExtractDocument opens the PDF at path and returns its text blocks in
// reading order. The file handle is closed before returning, error or not.
// A page that fails to decode is skipped with a warning on w; only a
// document-level open failure is an error.
func ExtractDocument(path, docID string, cfg types.LayoutConfig, w io.Writer) ([]types.TextBlock, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", docID, err)
	}
	defer f.Close()

	var blocks []types.TextBlock
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		runs, err := pageRuns(reader, i)
		if err != nil {
			fmt.Fprintf(w, "warning: %s page %d skipped: %v\n", docID, i, err)
			continue
		}
		blocks = append(blocks, BlocksFromRuns(docID, i, runs, cfg)...)
	}
	return blocks, nil
}

// pageRuns reads one page's text runs.
func pageRuns(r *pdflib.Reader, num int) ([]Run, error) {
	return safeRuns(func() []Run {
		page := r.Page(num)
		if page.V.IsNull() {
			return nil
		}
		return runsFromText(page.Content().Text)
	})
}

// safeRuns calls fn, containing a decoder panic as an error. The decoder
// panics on some malformed content streams, and one bad page must not take
// down the document.
func safeRuns(fn func() []Run) (runs []Run, err error) {
	defer func() {
		if p := recover(); p != nil {
			runs = nil
			err = fmt.Errorf("content stream: %v", p)
		}
	}()
	return fn(), nil
}

// runsFromText converts the decoder's positioned text values into Runs.
func runsFromText(text []pdflib.Text) []Run {
	runs := make([]Run, 0, len(text))
	for _, t := range text {
		runs = append(runs, Run{
			Text:     t.S,
			Font:     t.Font,
			FontSize: t.FontSize,
			X:        t.X,
			Y:        t.Y,
			W:        t.W,
		})
	}
	return runs
}

// BlocksFromRuns merges one page's raw runs into TextBlocks. Runs on the same
// visual line (vertical distance within cfg.LineTolerance) with the same
// rounded font size join into one block. Zero-length runs are dropped; an
// empty page yields no blocks. Pure transform, no side effects.
func BlocksFromRuns(docID string, pageNumber int, runs []Run, cfg types.LayoutConfig) []types.TextBlock {
	kept := make([]Run, 0, len(runs))
	for _, r := range runs {
		if strings.TrimSpace(r.Text) == "" {
			continue
		}
		kept = append(kept, r)
	}
	if len(kept) == 0 {
		return nil
	}

	// Reading order: top of page first (PDF origin is bottom-left), then
	// left to right.
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Y != kept[j].Y {
			return kept[i].Y > kept[j].Y
		}
		return kept[i].X < kept[j].X
	})

	tol := cfg.LineTolerance
	if tol <= 0 {
		tol = 2.0
	}

	var blocks []types.TextBlock
	var cur *types.TextBlock
	var curEnd float64 // right edge of the last run merged into cur

	for _, r := range kept {
		size := roundSize(r.FontSize)
		if cur != nil && math.Abs(r.Y-cur.YPosition) <= tol && size == cur.FontSize {
			// Same line, same size: append, inserting a space when the
			// horizontal gap suggests a word break.
			if r.X-curEnd > 0.2*size {
				cur.Text += " "
			}
			cur.Text += r.Text
			curEnd = r.X + r.W
			continue
		}
		if cur != nil {
			blocks = append(blocks, *cur)
		}
		cur = &types.TextBlock{
			DocumentID: docID,
			PageNumber: pageNumber,
			Text:       r.Text,
			FontSize:   size,
			IsBold:     isBoldFont(r.Font),
			YPosition:  r.Y,
			XPosition:  r.X,
		}
		curEnd = r.X + r.W
	}
	if cur != nil {
		blocks = append(blocks, *cur)
	}

	for i := range blocks {
		blocks[i].Text = strings.Join(strings.Fields(blocks[i].Text), " ")
	}
	return blocks
}

// isBoldFont reports whether the font name indicates a bold face
// (e.g. "Helvetica-Bold", "TimesNewRomanPS-BoldMT").
func isBoldFont(font string) bool {
	lower := strings.ToLower(font)
	return strings.Contains(lower, "bold") || strings.Contains(lower, "black") ||
		strings.Contains(lower, "heavy")
}

// roundSize normalizes a font size to 0.1 pt so that sizes that differ only
// by float noise compare equal.
func roundSize(size float64) float64 {
	return math.Round(size*10) / 10
}
