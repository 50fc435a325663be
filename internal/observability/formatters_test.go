package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/cv-tailor/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintJobSpec(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	spec := &types.JobSpec{
		ID:        "job_abc123def4",
		Role:      "Backend Engineer",
		Seniority: "senior",
		RequirementsMust: []types.Requirement{
			{Label: "5+ years Go", Evidence: "5+ years Go required", Priority: types.PriorityHigh},
			{Label: "Kubernetes", Evidence: "Kubernetes required", Priority: types.PriorityHigh},
		},
		RequirementsNice: []types.Requirement{
			{Label: "Rust", Evidence: "Rust is a plus", Priority: types.PriorityLow},
		},
		Stack: []string{"go", "kubernetes", "postgres"},
	}

	p.PrintJobSpec(spec)
	output := buf.String()

	assert.Contains(t, output, "PARSED JOB SPEC")
	assert.Contains(t, output, "job_abc123def4")
	assert.Contains(t, output, "Backend Engineer")
	assert.Contains(t, output, "5+ years Go")
	assert.Contains(t, output, "Rust")
	assert.Contains(t, output, "go, kubernetes, postgres")
}

func TestPrintJobSpec_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobSpec(nil)

	assert.Empty(t, buf.String())
}

func TestPrintTailoringPlan(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	plan := &types.TailoringPlan{
		JobID:              "job_abc123def4",
		PositioningSummary: "Strong match.",
		HighlightBullets:   []string{"Built Go services"},
		Gaps:               []string{"No explicit match for: Terraform"},
		Questions:          []string{"Do you have direct experience with Terraform?"},
		Mapping: []types.RequirementMapping{
			{RequirementLabel: "Go", RequirementEvidence: "Go required", Status: types.StatusCovered},
			{RequirementLabel: "Kubernetes", RequirementEvidence: "K8s", Status: types.StatusPartial},
			{RequirementLabel: "Terraform", RequirementEvidence: "Terraform", Status: types.StatusMissing},
		},
	}

	p.PrintTailoringPlan(plan)
	output := buf.String()

	assert.Contains(t, output, "TAILORING PLAN")
	assert.Contains(t, output, "1 covered / 1 partial / 1 missing")
	assert.Contains(t, output, "Built Go services")
	assert.Contains(t, output, "Terraform")
	assert.Contains(t, output, "Open questions: 1")
}

func TestPrintTailoringPlan_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTailoringPlan(nil)

	assert.Empty(t, buf.String())
}

func TestPrintArtifact(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	artifact := &types.CVArtifact{
		JobID:          "job_abc123def4",
		GeneratedAt:    "2026-01-15T10:00:00Z",
		OutputTexPath:  "outputs/cv_job_abc123def4.tex",
		DiffReportPath: "outputs/diff_job_abc123def4.md",
	}

	p.PrintArtifact(artifact)
	output := buf.String()

	assert.Contains(t, output, "GENERATED CV")
	assert.Contains(t, output, "job_abc123def4")
	assert.Contains(t, output, "outputs/cv_job_abc123def4.tex")
	assert.Contains(t, output, "outputs/diff_job_abc123def4.md")
}
