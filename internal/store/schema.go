package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
)

// artifactSchemas maps JSON artifact names to their schema files
var artifactSchemas = map[string]string{
	NameUserProfile:   "user_profile.schema.json",
	NameJobSpec:       "job_spec.schema.json",
	NameTailoringPlan: "tailoring_plan.schema.json",
	NameCVArtifact:    "cv_artifact.schema.json",
}

// ResolveSchemaDir attempts to find the schemas directory relative to the
// current working directory or likely repo root locations. Returns empty
// string if none is found; callers then skip validation.
// This is useful when commands run from different working directory contexts
// (e.g., tests).
func ResolveSchemaDir() string {
	candidates := []string{
		"schemas",
		filepath.Join("..", "schemas"),
		filepath.Join("..", "..", "schemas"),
	}

	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if info, err := os.Stat(absPath); err == nil && info.IsDir() {
				return absPath
			}
		}
	}

	return ""
}

// validateArtifact validates marshaled artifact JSON against its schema.
// Artifacts without a registered schema, or an empty schemaDir, pass through.
func validateArtifact(schemaDir, name string, data []byte) error {
	if schemaDir == "" {
		return nil
	}
	schemaFile, ok := artifactSchemas[name]
	if !ok {
		return nil
	}

	// Skip validation when the schema file is not present; commands may run
	// from working directories without the schema corpus.
	schemaPath := filepath.Join(schemaDir, schemaFile)
	if _, err := os.Stat(schemaPath); err != nil {
		return nil
	}

	schemaLoader := gojsonschema.NewReferenceLoader(fmt.Sprintf("file://%s", filepath.ToSlash(schemaPath)))
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Path: schemaPath, Message: "failed to run validation", Cause: err}
	}

	if !result.Valid() {
		validationErr := &ValidationError{Name: name}
		for _, resultErr := range result.Errors() {
			validationErr.Errors = append(validationErr.Errors, FieldError{
				Field:   resultErr.Field(),
				Message: resultErr.Description(),
			})
		}
		return validationErr
	}

	return nil
}
