package refine

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/pdiddy/docdigest/pkg/types"
)

func section(doc string, page int, title, body string) types.ScoredSection {
	return types.ScoredSection{
		Section: types.Section{
			DocumentID: doc,
			PageNumber: page,
			Title:      title,
			BodyText:   body,
		},
	}
}

func TestExcerptKeepsRelevantSentences(t *testing.T) {
	profile := types.QueryProfile{KeywordWeights: map[string]float64{
		"vegetarian": 3.0, "buffet": 3.0,
	}}
	body := "The region has a long history. " +
		"Vegetarian dishes dominate the local buffet tradition. " +
		"Parking is available on site."

	got := Excerpt(section("menu.pdf", 4, "Dining", body), profile, types.ScoringConfig{}, 60)

	if !strings.Contains(got.RefinedText, "Vegetarian dishes") {
		t.Errorf("relevant sentence missing from %q", got.RefinedText)
	}
	if got.DocumentID != "menu.pdf" || got.PageNumber != 4 {
		t.Errorf("provenance lost: %q page %d", got.DocumentID, got.PageNumber)
	}
}

func TestExcerptNeverExceedsBudget(t *testing.T) {
	profile := types.QueryProfile{KeywordWeights: map[string]float64{"menu": 1.0}}
	body := strings.Repeat("The menu changes with every season and every supplier. ", 40)

	for _, budget := range []int{20, 100, 500} {
		got := Excerpt(section("a.pdf", 1, "Menus", body), profile, types.ScoringConfig{}, budget)
		if n := utf8.RuneCountInString(got.RefinedText); n > budget {
			t.Errorf("budget %d: excerpt has %d characters", budget, n)
		}
	}
}

func TestExcerptPreservesOriginalOrder(t *testing.T) {
	profile := types.QueryProfile{KeywordWeights: map[string]float64{
		"starter": 1.0, "dessert": 5.0,
	}}
	// The dessert sentence scores higher but appears second; the excerpt must
	// keep document order, not score order.
	body := "Each starter is plated cold. The dessert course closes the meal."

	got := Excerpt(section("a.pdf", 1, "Courses", body), profile, types.ScoringConfig{}, 500)

	i := strings.Index(got.RefinedText, "starter")
	j := strings.Index(got.RefinedText, "dessert")
	if i < 0 || j < 0 || i > j {
		t.Errorf("segments out of order: %q", got.RefinedText)
	}
}

func TestExcerptEmptyBodyFallsBackToTitle(t *testing.T) {
	got := Excerpt(section("a.pdf", 2, "Packing Tips", "   "), types.QueryProfile{}, types.ScoringConfig{}, 500)

	if got.RefinedText != "Packing Tips" {
		t.Errorf("refined text = %q, want title fallback", got.RefinedText)
	}
}

func TestExcerptTruncatesAtWordBoundary(t *testing.T) {
	body := "alpha bravo charlie delta echo"

	got := Excerpt(section("a.pdf", 1, "T", body), types.QueryProfile{}, types.ScoringConfig{}, 14)

	if got.RefinedText != "alpha bravo" {
		t.Errorf("refined text = %q, want %q", got.RefinedText, "alpha bravo")
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			"terminal punctuation",
			"First one. Second one! Third one?",
			[]string{"First one.", "Second one!", "Third one?"},
		},
		{
			"decimal point not a boundary",
			"Serve at 3.5 liters per table. Done.",
			[]string{"Serve at 3.5 liters per table.", "Done."},
		},
		{
			"trailing fragment kept",
			"Complete sentence. trailing fragment",
			[]string{"Complete sentence.", "trailing fragment"},
		},
		{
			"no punctuation",
			"just one run of text",
			[]string{"just one run of text"},
		},
		{
			"empty",
			"",
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("segment[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
