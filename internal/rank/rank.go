// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"sort"

	"github.com/pdiddy/docdigest/pkg/types"
)

// Less is the total order used for ranking: higher score first, then lower
// page number, then lexicographic document ID, then global appearance order.
// The final Seq key makes the order fully deterministic for equal scores, so
// identical input always produces identical ranking.
func Less(a, b types.ScoredSection) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.PageNumber != b.PageNumber {
		return a.PageNumber < b.PageNumber
	}
	if a.DocumentID != b.DocumentID {
		return a.DocumentID < b.DocumentID
	}
	return a.Seq < b.Seq
}

// Select sorts the full cross-document pool, keeps the top n sections, and
// assigns dense 1-based ranks by sort position. When fewer than n sections
// exist, all are kept and ranked. The input slice is not modified.
//
// Ranks in the result are exactly 1..min(n, len(pool)): no gaps, no
// duplicates.
func Select(pool []types.ScoredSection, n int) []types.ScoredSection {
	if n <= 0 {
		n = 5
	}

	sorted := make([]types.ScoredSection, len(pool))
	copy(sorted, pool)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Less(sorted[i], sorted[j])
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	for i := range sorted {
		sorted[i].Rank = i + 1
	}
	return sorted
}
