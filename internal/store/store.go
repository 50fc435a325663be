// Package store persists job-scoped pipeline artifacts. Values are validated
// against their JSON Schemas before they are written, so the pipeline only
// ever reads back structurally sound artifacts.
package store

import "context"

// Logical artifact names. JSON artifacts are schema-validated on write; text
// artifacts (the raw posting, rendered CV and diff report) are stored as-is.
const (
	NameUserProfile    = "user_profile"
	NameJobSpec        = "job_spec"
	NameTailoringPlan  = "tailoring_plan"
	NameCVArtifact     = "cv_artifact"
	NameJobDescription = "job_description"
	NameCVTex          = "cv_tex"
	NameDiffReport     = "diff_report"
)

// Store is the artifact persistence contract used by the pipeline. Artifacts
// are keyed by job identifier and logical name; an empty job ID addresses the
// global scope (currently only the user profile and the latest tailoring
// plan live there).
//
// The store performs no locking of its own: at most one in-flight mutation
// per job identifier is the caller's responsibility.
type Store interface {
	// ReadJSON loads a JSON artifact into out. Returns MissingArtifactError
	// when the artifact does not exist.
	ReadJSON(ctx context.Context, jobID, name string, out any) error
	// WriteJSON validates and persists a JSON artifact.
	WriteJSON(ctx context.Context, jobID, name string, value any) error
	// ReadText loads a text artifact.
	ReadText(ctx context.Context, jobID, name string) (string, error)
	// WriteText persists a text artifact and returns a reference to where it
	// was stored (a relative path for file stores, a row key for databases).
	WriteText(ctx context.Context, jobID, name, content string) (string, error)
}
