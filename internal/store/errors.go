package store

import (
	"fmt"
	"strings"
)

// MissingArtifactError indicates a required prior artifact is absent from the store
type MissingArtifactError struct {
	JobID string
	Name  string
}

func (e *MissingArtifactError) Error() string {
	if e.JobID == "" {
		return fmt.Sprintf("missing artifact: %s", e.Name)
	}
	return fmt.Sprintf("missing artifact: %s for job %s", e.Name, e.JobID)
}

// StorageError represents an I/O or database failure
type StorageError struct {
	Message string
	Cause   error
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("storage error: %s", e.Message)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Name   string
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("artifact %s failed validation:\n", e.Name))
	for i, fieldErr := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, fieldErr.Field, fieldErr.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing a schema document
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}
