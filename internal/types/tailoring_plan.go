package types

import "github.com/go-playground/validator/v10"

// Coverage status values for requirement mappings
const (
	StatusCovered = "covered"
	StatusPartial = "partial"
	StatusMissing = "missing"
)

// RequirementMapping links one job requirement to the profile evidence that
// supports it, with a tri-state coverage status.
type RequirementMapping struct {
	RequirementLabel    string   `json:"requirement_label" validate:"required"`
	RequirementEvidence string   `json:"requirement_evidence" validate:"required"`
	UserEvidence        []string `json:"user_evidence"`
	Status              string   `json:"status" validate:"required,oneof=covered partial missing"`
}

// TailoringPlan is the aggregate requirement mapping, gap list, question list
// and narrative summary for one job. Mapping preserves requirement order and
// holds exactly one entry per must/nice requirement.
type TailoringPlan struct {
	JobID              string               `json:"jobId" validate:"required"`
	PositioningSummary string               `json:"positioning_summary" validate:"required"`
	HighlightBullets   []string             `json:"highlight_bullets"`
	Gaps               []string             `json:"gaps"`
	Questions          []string             `json:"questions"`
	Mapping            []RequirementMapping `json:"mapping" validate:"dive"`
}

// Validate validates the TailoringPlan using the validator.
func (p *TailoringPlan) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Answer represents one user-supplied reply to a clarifying question
type Answer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
