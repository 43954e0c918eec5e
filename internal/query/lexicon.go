// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import "github.com/pdiddy/docdigest/pkg/types"

// LexiconVersion identifies the revision of the category tables below.
// Bump it when the tables change so stored digests can be attributed to the
// lexicon that ranked them.
const LexiconVersion = 1

// categoryOrder fixes the evaluation order for category inference: the first
// category whose lexicon intersects the persona tokens wins.
var categoryOrder = []types.PersonaCategory{
	types.CategoryCulinary,
	types.CategoryTravel,
	types.CategoryBusiness,
	types.CategoryTechnical,
	types.CategoryLegal,
}

// categoryLexicons maps each persona category to its keyword set. The tables
// are data, not code: scoring logic never special-cases a category.
var categoryLexicons = map[types.PersonaCategory]map[string]bool{
	types.CategoryCulinary: wordSet(
		"food", "culinary", "cuisine", "cooking", "cook", "chef", "kitchen",
		"recipe", "recipes", "ingredient", "ingredients", "menu", "meal",
		"meals", "dish", "dishes", "dinner", "lunch", "breakfast", "buffet",
		"catering", "caterer", "vegetarian", "vegan", "gluten", "dining",
		"restaurant", "restaurants", "dessert", "appetizer", "sides", "mains",
	),
	types.CategoryTravel: wordSet(
		"travel", "trip", "trips", "itinerary", "journey", "vacation",
		"holiday", "tour", "tours", "tourist", "visit", "explore", "guide",
		"destination", "destinations", "hotel", "hotels", "accommodation",
		"flight", "flights", "packing", "sightseeing", "beach", "coastal",
		"city", "cities", "nightlife", "attractions", "activities",
		"adventures", "excursions", "planner", "planning",
	),
	types.CategoryBusiness: wordSet(
		"business", "corporate", "company", "executive", "manager",
		"management", "professional", "client", "clients", "meeting",
		"meetings", "onboarding", "compliance", "forms", "form", "fillable",
		"signature", "signatures", "workflow", "employees", "employee",
		"staff", "training", "contractor", "event", "events",
	),
	types.CategoryTechnical: wordSet(
		"technical", "academic", "research", "researcher", "engineering",
		"engineer", "software", "science", "scientist", "analysis", "study",
		"studies", "literature", "review", "experiment", "experiments",
		"data", "methodology", "phd", "student", "chemistry", "biology",
		"physics", "algorithm", "algorithms",
	),
	types.CategoryLegal: wordSet(
		"legal", "law", "lawyer", "attorney", "counsel", "court", "courts",
		"contract", "contracts", "clause", "clauses", "litigation",
		"regulation", "regulations", "statute", "statutes", "liability",
		"paralegal", "plaintiff", "defendant",
	),
}

// familyCues, businessCues, and individualCues drive group-context inference
// over the job text. Family wins over business when both match.
var (
	familyCues = wordSet(
		"family", "families", "kids", "kid", "children", "child", "parents",
		"toddler", "toddlers",
	)
	businessCues = wordSet(
		"team", "teams", "corporate", "client", "clients", "meeting",
		"meetings", "colleagues", "office", "buffet", "conference",
		"gathering", "company", "staff",
	)
	individualCues = wordSet(
		"individual", "solo", "alone", "myself", "personal",
	)
)

// CategoryLexicon returns the keyword set for a category, or nil for
// Unspecified.
func CategoryLexicon(c types.PersonaCategory) map[string]bool {
	return categoryLexicons[c]
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
