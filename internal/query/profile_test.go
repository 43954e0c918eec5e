package query

import (
	"testing"

	"github.com/pdiddy/docdigest/pkg/types"
)

func TestBuildProfileCategoryInference(t *testing.T) {
	tests := []struct {
		name    string
		persona string
		want    types.PersonaCategory
	}{
		{"culinary", "Food Contractor", types.CategoryCulinary},
		{"travel", "Travel Planner", types.CategoryTravel},
		{"business", "HR professional", types.CategoryBusiness},
		{"technical", "PhD researcher in chemistry", types.CategoryTechnical},
		{"legal", "Corporate attorney", types.CategoryBusiness}, // corporate hits first in fixed order
		{"legal only", "Litigation paralegal", types.CategoryLegal},
		{"unspecified", "General reader", types.CategoryUnspecified},
		{"empty", "", types.CategoryUnspecified},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildProfile(tt.persona, "", types.ScoringConfig{})
			if p.Category != tt.want {
				t.Errorf("category = %q, want %q", p.Category, tt.want)
			}
		})
	}
}

func TestBuildProfileGroupInference(t *testing.T) {
	tests := []struct {
		name string
		job  string
		want types.GroupContext
	}{
		{"family", "Plan a trip for a family with kids", types.GroupFamily},
		{"business", "Prepare a buffet for corporate clients", types.GroupBusiness},
		{"individual", "A solo hiking itinerary", types.GroupIndividual},
		{"family beats business", "Corporate retreat for families with children", types.GroupFamily},
		{"count of one", "Book a room for 1 people", types.GroupIndividual},
		{"count of many", "Cater a dinner for 10 people", types.GroupBusiness},
		{"count with family cue", "A reunion for 12 people with kids", types.GroupFamily},
		{"none", "Summarize the documents", types.GroupUnspecified},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildProfile("", tt.job, types.ScoringConfig{})
			if p.Group != tt.want {
				t.Errorf("group = %q, want %q", p.Group, tt.want)
			}
		})
	}
}

func TestBuildProfileWeights(t *testing.T) {
	cfg := types.ScoringConfig{CategoryBoost: 3.0, CrossBoost: 1.0}
	p := BuildProfile("Food Contractor", "Prepare a vegetarian buffet with contractor support", cfg)

	// "vegetarian" is a culinary lexicon word appearing once: 1 * 3.
	if got := p.KeywordWeights["vegetarian"]; got != 3.0 {
		t.Errorf("vegetarian weight = %v, want 3", got)
	}
	// "contractor" appears in both persona and job: (1+1) + cross boost 1 = 3.
	if got := p.KeywordWeights["contractor"]; got != 3.0 {
		t.Errorf("contractor weight = %v, want 3", got)
	}
	// "food" is lexicon-boosted and persona-only: 1 * 3.
	if got := p.KeywordWeights["food"]; got != 3.0 {
		t.Errorf("food weight = %v, want 3", got)
	}
	// "support" is plain: weight 1.
	if got := p.KeywordWeights["support"]; got != 1.0 {
		t.Errorf("support weight = %v, want 1", got)
	}
	// Stopwords and short tokens never receive weight.
	for _, tok := range []string{"a", "with", "the"} {
		if _, ok := p.KeywordWeights[tok]; ok {
			t.Errorf("stopword %q weighted", tok)
		}
	}
}

func TestBuildProfileDuplicatesAccumulate(t *testing.T) {
	p := BuildProfile("", "menu menu menu", types.ScoringConfig{CategoryBoost: 3.0})

	// Persona is empty so no category lexicon applies; three occurrences
	// accumulate to 3 without a boost.
	if p.Category != types.CategoryUnspecified {
		t.Fatalf("category = %q, want unspecified", p.Category)
	}
	if got := p.KeywordWeights["menu"]; got != 3.0 {
		t.Errorf("menu weight = %v, want 3", got)
	}
}

func TestBuildProfileEmptyInput(t *testing.T) {
	p := BuildProfile("", "", types.ScoringConfig{})

	if p.Category != types.CategoryUnspecified {
		t.Errorf("category = %q", p.Category)
	}
	if p.Group != types.GroupUnspecified {
		t.Errorf("group = %q", p.Group)
	}
	if len(p.KeywordWeights) != 0 {
		t.Errorf("weights = %v, want empty", p.KeywordWeights)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		minLen int
		want   []string
	}{
		{"lowercases and splits", "Vegetarian Buffet-Style Menu!", 0, []string{"vegetarian", "buffet", "style", "menu"}},
		{"drops stopwords", "the menu and the buffet", 0, []string{"menu", "buffet"}},
		{"drops short tokens", "go to France", 0, []string{"france"}},
		{"custom min length", "go up France", 2, []string{"go", "up", "france"}},
		{"digits survive", "room 404 ready", 0, []string{"room", "404", "ready"}},
		{"empty", "", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input, tt.minLen)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
