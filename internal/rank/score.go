// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank scores sections against a query profile and selects the
// top-N digest. Scoring is a pure function of (Section, QueryProfile,
// ScoringConfig): no shared mutable state, safe to evaluate in any order or
// concurrently.
package rank

import (
	"math"

	"github.com/pdiddy/docdigest/internal/query"
	"github.com/pdiddy/docdigest/pkg/types"
)

// Score computes a section's relevance against the profile.
//
// Every token match contributes its profile weight, with title matches
// multiplied by cfg.TitleFactor since heading relevance is a stronger signal
// than body relevance. The sum is divided by 1 + ln(1 + bodyTokens) so that
// long sections do not win on token count alone. An empty keyword map scores
// zero everywhere.
func Score(sec types.Section, profile types.QueryProfile, cfg types.ScoringConfig) float64 {
	if len(profile.KeywordWeights) == 0 {
		return 0
	}

	titleFactor := cfg.TitleFactor
	if titleFactor <= 0 {
		titleFactor = 2.0
	}

	titleTokens := query.Tokenize(sec.Title, cfg.MinTokenLength)
	bodyTokens := query.Tokenize(sec.BodyText, cfg.MinTokenLength)

	var sum float64
	for _, t := range titleTokens {
		if w, ok := profile.KeywordWeights[t]; ok {
			sum += w * titleFactor
		}
	}
	for _, t := range bodyTokens {
		if w, ok := profile.KeywordWeights[t]; ok {
			sum += w
		}
	}

	return sum / (1 + math.Log(1+float64(len(bodyTokens))))
}

// SegmentScore computes the same token-weight sum restricted to an arbitrary
// text segment, with no title factor and no length dampening. The refiner
// uses it to rate sentence candidates within a section body.
func SegmentScore(segment string, profile types.QueryProfile, cfg types.ScoringConfig) float64 {
	if len(profile.KeywordWeights) == 0 {
		return 0
	}
	var sum float64
	for _, t := range query.Tokenize(segment, cfg.MinTokenLength) {
		if w, ok := profile.KeywordWeights[t]; ok {
			sum += w
		}
	}
	return sum
}
