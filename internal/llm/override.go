// Package llm provides the optional LLM-backed extraction override consulted
// during job description parsing. The heuristic parser works without it; when
// an override is configured, any non-empty field it returns fully replaces
// the heuristic value for that field.
package llm

import (
	"context"

	"github.com/jonathan/cv-tailor/internal/types"
)

// JobSpecPatch is a partial JobSpec returned by an extraction override.
// Zero-valued fields are treated as absent.
type JobSpecPatch struct {
	ID               string              `json:"id,omitempty"`
	Role             string              `json:"role,omitempty"`
	Seniority        string              `json:"seniority,omitempty"`
	Responsibilities []types.Requirement `json:"responsibilities,omitempty"`
	RequirementsMust []types.Requirement `json:"requirements_must,omitempty"`
	RequirementsNice []types.Requirement `json:"requirements_nice,omitempty"`
	Stack            []string            `json:"stack,omitempty"`
}

// Override is the extraction override capability. Implementations may return
// a nil patch to indicate no override for the given text.
type Override interface {
	// ParseJobDescription extracts a partial JobSpec from raw posting text
	ParseJobDescription(ctx context.Context, jdText string) (*JobSpecPatch, error)
}

// NoopOverride is the default Override; it never patches anything.
type NoopOverride struct{}

// ParseJobDescription always returns a nil patch.
func (NoopOverride) ParseJobDescription(_ context.Context, _ string) (*JobSpecPatch, error) {
	return nil, nil
}
