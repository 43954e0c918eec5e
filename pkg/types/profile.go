// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PersonaCategory is the inferred domain of the persona text.
type PersonaCategory string

const (
	CategoryCulinary    PersonaCategory = "culinary"
	CategoryTravel      PersonaCategory = "travel"
	CategoryBusiness    PersonaCategory = "business"
	CategoryTechnical   PersonaCategory = "technical"
	CategoryLegal       PersonaCategory = "legal"
	CategoryUnspecified PersonaCategory = "unspecified"
)

// GroupContext is the inferred audience of the job-to-be-done.
type GroupContext string

const (
	GroupIndividual  GroupContext = "individual"
	GroupFamily      GroupContext = "family"
	GroupBusiness    GroupContext = "business"
	GroupUnspecified GroupContext = "unspecified"
)

// QueryProfile is the structured form of the persona and job text, built once
// per run and shared read-only thereafter. An empty KeywordWeights map means
// every section scores zero.
type QueryProfile struct {
	// Category is the inferred persona domain.
	Category PersonaCategory `json:"persona_category" yaml:"persona_category"`

	// Group is the inferred group context of the job.
	Group GroupContext `json:"group_context" yaml:"group_context"`

	// KeywordWeights maps normalized tokens to positive weights. Duplicate
	// tokens accumulate during construction; they never overwrite.
	KeywordWeights map[string]float64 `json:"keyword_weights" yaml:"keyword_weights"`

	// RawPersona is the persona text as received.
	RawPersona string `json:"raw_persona" yaml:"raw_persona"`

	// RawJob is the job-to-be-done text as received.
	RawJob string `json:"raw_job" yaml:"raw_job"`
}
