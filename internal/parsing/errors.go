package parsing

import "fmt"

// EmptyInputError indicates the job description text was blank after trimming
type EmptyInputError struct {
	Field string
}

func (e *EmptyInputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("empty input: %s is required", e.Field)
	}
	return "empty input"
}

// SchemaViolationError indicates a constructed JobSpec failed its structural invariants
type SchemaViolationError struct {
	Message string
	Cause   error
}

func (e *SchemaViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema violation: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("schema violation: %s", e.Message)
}

func (e *SchemaViolationError) Unwrap() error {
	return e.Cause
}

// OverrideError indicates the optional extraction override failed
type OverrideError struct {
	Message string
	Cause   error
}

func (e *OverrideError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction override failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction override failed: %s", e.Message)
}

func (e *OverrideError) Unwrap() error {
	return e.Cause
}
