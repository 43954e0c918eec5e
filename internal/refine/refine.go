// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package refine distills a selected section's body into a bounded excerpt of
// its most query-relevant sentences.
package refine

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/docdigest/internal/rank"
	"github.com/pdiddy/docdigest/pkg/types"
)

// Excerpt produces the RefinedExcerpt for one selected section. The body is
// split into sentence-like segments, each segment is scored with the same
// token-weight function as section scoring (restricted to the segment's own
// tokens), and the top-scoring segments are concatenated in their original
// order up to the character budget. The last included segment is truncated at
// a word boundary when it overruns. An empty body falls back to the section
// title.
//
// The returned text never exceeds budget characters.
func Excerpt(sec types.ScoredSection, profile types.QueryProfile, scoring types.ScoringConfig, budget int) types.RefinedExcerpt {
	if budget <= 0 {
		budget = 500
	}

	text := strings.TrimSpace(sec.BodyText)
	if text == "" {
		text = sec.Title
	} else {
		text = bestSegments(text, profile, scoring, budget)
	}

	return types.RefinedExcerpt{
		DocumentID:  sec.DocumentID,
		PageNumber:  sec.PageNumber,
		RefinedText: clampText(text, budget),
	}
}

// bestSegments picks segments by descending score until the budget is
// covered, then renders the picks in appearance order.
func bestSegments(body string, profile types.QueryProfile, scoring types.ScoringConfig, budget int) string {
	segments := SplitSentences(body)
	if len(segments) == 0 {
		return body
	}

	type scored struct {
		index int
		score float64
	}
	order := make([]scored, len(segments))
	for i, seg := range segments {
		order[i] = scored{index: i, score: rank.SegmentScore(seg, profile, scoring)}
	}
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].score != order[j].score {
			return order[i].score > order[j].score
		}
		return order[i].index < order[j].index
	})

	picked := make([]bool, len(segments))
	total := 0
	for _, s := range order {
		picked[s.index] = true
		total += utf8.RuneCountInString(segments[s.index]) + 1
		if total >= budget {
			break
		}
	}

	var out []string
	for i, seg := range segments {
		if picked[i] {
			out = append(out, seg)
		}
	}
	return strings.Join(out, " ")
}

// SplitSentences splits text on terminal punctuation (., !, ?) followed by
// whitespace or end of text. Segments are trimmed; empty segments are
// dropped.
func SplitSentences(text string) []string {
	var segments []string
	runes := []rune(text)
	start := 0

	for i, r := range runes {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		atEnd := i == len(runes)-1
		if !atEnd && runes[i+1] != ' ' && runes[i+1] != '\n' && runes[i+1] != '\t' {
			continue
		}
		seg := strings.TrimSpace(string(runes[start : i+1]))
		if seg != "" {
			segments = append(segments, seg)
		}
		start = i + 1
	}

	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		segments = append(segments, tail)
	}
	return segments
}

// clampText cuts s to at most budget characters, backing up to the previous
// word boundary when the cut lands mid-word.
func clampText(s string, budget int) string {
	runes := []rune(s)
	if len(runes) <= budget {
		return s
	}
	cut := string(runes[:budget])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut)
}
