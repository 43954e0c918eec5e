// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/docdigest/pkg/types"
)

// HeadingCandidate marks one block of a document as a heading. Level is the
// prominence ordinal: 1 for the document's largest heading size, increasing
// for smaller sizes. Candidates exist only during classification.
type HeadingCandidate struct {
	// Block is the index into the document's block slice.
	Block int

	// Level is the heading level, 1-based.
	Level int
}

// ClassifyHeadings decides which blocks of a single document are headings.
// Statistics are document-relative: absolute font sizes are not comparable
// across PDFs from different authoring tools, so a block is a heading
// candidate when its size is strictly greater than this document's median
// size. Distinct candidate sizes map to levels by descending size, capped at
// cfg.MaxHeadingLevels; larger level numbers clamp to the cap. Bold blocks
// within cfg.BoldPromotionWindow of the median are promoted to the lowest
// level. A document with uniform size and no bold blocks yields no
// candidates; AssembleSections applies the fallback.
//
// The classification is a pure function of the full block slice: sizes are
// collected in a first pass, levels assigned in a second.
func ClassifyHeadings(blocks []types.TextBlock, cfg types.LayoutConfig) []HeadingCandidate {
	if len(blocks) == 0 {
		return nil
	}

	maxLevels := cfg.MaxHeadingLevels
	if maxLevels <= 0 {
		maxLevels = 3
	}
	window := cfg.BoldPromotionWindow
	if window <= 0 {
		window = 0.5
	}

	median := medianSize(blocks)
	levelBySize := headingLevels(blocks, median, maxLevels)

	var candidates []HeadingCandidate
	for i, b := range blocks {
		if !headingShaped(b.Text, cfg) {
			continue
		}
		if level, ok := levelBySize[b.FontSize]; ok {
			candidates = append(candidates, HeadingCandidate{Block: i, Level: level})
			continue
		}
		// Boldness is a secondary signal: bold text at or near the median
		// size still reads as a heading, at the lowest level.
		if b.IsBold && b.FontSize >= median-window && b.FontSize <= median+window {
			level := len(levelBySize) + 1
			if level > maxLevels {
				level = maxLevels
			}
			candidates = append(candidates, HeadingCandidate{Block: i, Level: level})
		}
	}
	return candidates
}

// medianSize returns the median font size across all blocks of one document.
func medianSize(blocks []types.TextBlock) float64 {
	sizes := make([]float64, len(blocks))
	for i, b := range blocks {
		sizes[i] = b.FontSize
	}
	sort.Float64s(sizes)

	n := len(sizes)
	if n%2 == 1 {
		return sizes[n/2]
	}
	return (sizes[n/2-1] + sizes[n/2]) / 2
}

// headingLevels maps each distinct font size strictly above the median to a
// heading level: the largest size is level 1, the next distinct size level 2,
// and so on. Sizes past maxLevels distinct values clamp to maxLevels.
func headingLevels(blocks []types.TextBlock, median float64, maxLevels int) map[float64]int {
	distinct := map[float64]bool{}
	for _, b := range blocks {
		if b.FontSize > median {
			distinct[b.FontSize] = true
		}
	}
	if len(distinct) == 0 {
		return nil
	}

	sizes := make([]float64, 0, len(distinct))
	for s := range distinct {
		sizes = append(sizes, s)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	levels := make(map[float64]int, len(sizes))
	for i, s := range sizes {
		level := i + 1
		if level > maxLevels {
			level = maxLevels
		}
		levels[s] = level
	}
	return levels
}

// headingShaped rejects text that cannot be a heading: too long, or carrying
// no letter or digit at all (pure punctuation, page ornaments).
func headingShaped(text string, cfg types.LayoutConfig) bool {
	maxLen := cfg.MaxHeadingLength
	if maxLen <= 0 {
		maxLen = 120
	}
	if utf8.RuneCountInString(text) > maxLen {
		return false
	}
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
