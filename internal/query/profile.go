// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query turns the free-text persona and job-to-be-done into a
// structured, immutable QueryProfile: a domain category, a group context,
// and a weighted keyword set. Building a profile never fails; empty or
// malformed input yields the zero profile, which scores every section at
// zero.
package query

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/pdiddy/docdigest/pkg/types"
)

// stopwords are dropped during tokenization. The list is deliberately small;
// length filtering removes most function words already.
var stopwords = wordSet(
	"the", "and", "for", "with", "that", "this", "from", "are", "was",
	"were", "has", "have", "had", "not", "but", "all", "any", "can",
	"will", "would", "should", "into", "out", "about", "over", "under",
	"a", "an", "of", "to", "in", "on", "at", "by", "or", "as", "is", "it",
	"be", "you", "your",
)

// groupSizeRe matches "for N people"-style cardinality cues in the job text.
var groupSizeRe = regexp.MustCompile(`\bfor\s+(\d+)\s+(?:people|persons|guests|attendees)\b`)

// BuildProfile parses the persona and job text into a QueryProfile using the
// versioned category lexicons and the scoring constants in cfg.
//
// Keyword weights: every surviving token occurrence contributes 1.0
// (duplicates accumulate, never overwrite); tokens in the inferred category's
// lexicon are multiplied by cfg.CategoryBoost; tokens present in both persona
// and job receive an additive cfg.CrossBoost.
func BuildProfile(persona, job string, cfg types.ScoringConfig) types.QueryProfile {
	personaTokens := Tokenize(persona, cfg.MinTokenLength)
	jobTokens := Tokenize(job, cfg.MinTokenLength)

	category := inferCategory(personaTokens)
	lexicon := CategoryLexicon(category)

	counts := make(map[string]float64, len(personaTokens)+len(jobTokens))
	for _, t := range personaTokens {
		counts[t]++
	}
	for _, t := range jobTokens {
		counts[t]++
	}

	personaSet := toSet(personaTokens)
	jobSet := toSet(jobTokens)

	weights := make(map[string]float64, len(counts))
	for token, count := range counts {
		w := count
		if lexicon[token] {
			w *= boostOr(cfg.CategoryBoost, 3.0)
		}
		if personaSet[token] && jobSet[token] {
			w += boostOr(cfg.CrossBoost, 1.0)
		}
		weights[token] = w
	}

	return types.QueryProfile{
		Category:       category,
		Group:          inferGroup(job),
		KeywordWeights: weights,
		RawPersona:     persona,
		RawJob:         job,
	}
}

// Tokenize lowercases s, splits on non-letter/digit runs, and drops stopwords
// and tokens shorter than minLen runes (default 3). Scoring and refinement
// use the same tokenizer so profile weights line up with section tokens.
func Tokenize(s string, minLen int) []string {
	if minLen <= 0 {
		minLen = 3
	}

	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < minLen || stopwords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// inferCategory returns the first category, in fixed order, whose lexicon
// contains any persona token. Unspecified when nothing matches.
func inferCategory(personaTokens []string) types.PersonaCategory {
	for _, category := range categoryOrder {
		lexicon := categoryLexicons[category]
		for _, t := range personaTokens {
			if lexicon[t] {
				return category
			}
		}
	}
	return types.CategoryUnspecified
}

// inferGroup scans the job text for group-size and relationship cues.
// Family cues win over business cues; an explicit "for N people" with N == 1
// reads as individual, with N >= 2 as a business-style group engagement when
// no family cue is present.
func inferGroup(job string) types.GroupContext {
	tokens := Tokenize(job, 0)

	var hasFamily, hasBusiness, hasIndividual bool
	for _, t := range tokens {
		switch {
		case familyCues[t]:
			hasFamily = true
		case businessCues[t]:
			hasBusiness = true
		case individualCues[t]:
			hasIndividual = true
		}
	}

	if m := groupSizeRe.FindStringSubmatch(strings.ToLower(job)); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			if n <= 1 {
				hasIndividual = true
			} else if !hasFamily {
				hasBusiness = true
			}
		}
	}

	switch {
	case hasFamily:
		return types.GroupFamily
	case hasBusiness:
		return types.GroupBusiness
	case hasIndividual:
		return types.GroupIndividual
	default:
		return types.GroupUnspecified
	}
}

func toSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

func boostOr(v, fallback float64) float64 {
	if v <= 0 {
		return fallback
	}
	return v
}
