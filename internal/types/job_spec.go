// Package types provides type definitions for structured data used throughout the cv-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// Priority levels for extracted requirements
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Requirement represents a single extracted expectation from a job description.
// Evidence is a truncated excerpt of the source sentence. Immutable once extracted.
type Requirement struct {
	Label    string `json:"label" validate:"required"`
	Evidence string `json:"evidence" validate:"required"`
	Priority string `json:"priority" validate:"required,oneof=high medium low"`
}

// JobSpec represents a structured job specification extracted from raw posting text.
// ID is a deterministic content hash of the input text; identical text always
// yields the same ID.
type JobSpec struct {
	ID               string        `json:"id" validate:"required"`
	Role             string        `json:"role" validate:"required"`
	Seniority        string        `json:"seniority" validate:"required"`
	Responsibilities []Requirement `json:"responsibilities" validate:"dive"`
	RequirementsMust []Requirement `json:"requirements_must" validate:"dive"`
	RequirementsNice []Requirement `json:"requirements_nice" validate:"dive"`
	Stack            []string      `json:"stack"`
}

// Validate validates the JobSpec using the validator.
func (s *JobSpec) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// Requirements returns must and nice requirements in plan order
// (must-requirements first).
func (s *JobSpec) Requirements() []Requirement {
	reqs := make([]Requirement, 0, len(s.RequirementsMust)+len(s.RequirementsNice))
	reqs = append(reqs, s.RequirementsMust...)
	reqs = append(reqs, s.RequirementsNice...)
	return reqs
}
