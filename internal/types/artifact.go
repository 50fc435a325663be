package types

import "github.com/go-playground/validator/v10"

// CVArtifact summarizes one CV generation: which job it was for, when it
// was produced, and where the template, rendered document and diff report
// live in the artifact store.
type CVArtifact struct {
	JobID            string `json:"jobId" validate:"required"`
	GeneratedAt      string `json:"generatedAt" validate:"required"`
	BaseTemplatePath string `json:"baseTemplatePath" validate:"required"`
	OutputTexPath    string `json:"outputTexPath" validate:"required"`
	DiffReportPath   string `json:"diffReportPath" validate:"required"`
}

// Validate validates the CVArtifact using the validator.
func (a *CVArtifact) Validate() error {
	validate := validator.New()
	return validate.Struct(a)
}
