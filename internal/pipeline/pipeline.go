// Package pipeline orchestrates the tailoring steps end-to-end: job
// ingestion, profile storage, plan construction and CV generation. Each
// operation reads its inputs from the artifact store, runs the pure pipeline
// stages and persists the results. Operations are independent; a failed
// invocation is never retried internally because re-running it with the same
// inputs reproduces the same failure.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-tailor/internal/diffing"
	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/parsing"
	"github.com/jonathan/cv-tailor/internal/planning"
	"github.com/jonathan/cv-tailor/internal/rendering"
	"github.com/jonathan/cv-tailor/internal/store"
	"github.com/jonathan/cv-tailor/internal/types"
)

// DefaultTemplatePath is the CV template used when none is configured.
const DefaultTemplatePath = "templates/cv_base.tex"

// baseSummary is the positioning summary of the untailored baseline when the
// profile has no summary of its own.
const baseSummary = "Base CV without job-specific tailoring"

// Options holds the collaborators shared by the pipeline operations.
type Options struct {
	Store        store.Store
	Override     llm.Override
	TemplatePath string
}

func (o *Options) templatePath() string {
	if o.TemplatePath != "" {
		return o.TemplatePath
	}
	return DefaultTemplatePath
}

// IngestJob parses raw job description text into a JobSpec and persists both
// the spec and the raw text under the derived job identifier.
func IngestJob(ctx context.Context, opts Options, jdText string) (*types.JobSpec, error) {
	spec, err := parsing.ParseJobDescription(ctx, jdText, opts.Override)
	if err != nil {
		return nil, err
	}

	if err := opts.Store.WriteJSON(ctx, spec.ID, store.NameJobSpec, spec); err != nil {
		return nil, err
	}
	if _, err := opts.Store.WriteText(ctx, spec.ID, store.NameJobDescription, jdText); err != nil {
		return nil, err
	}

	return spec, nil
}

// SaveProfile parses, validates and persists a caller-supplied profile
// payload. The profile lives in the global scope, shared across jobs.
func SaveProfile(ctx context.Context, opts Options, payload []byte) (*types.UserProfile, error) {
	var profile types.UserProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return nil, &MalformedInputError{Message: "profile payload is not valid JSON", Cause: err}
	}

	if err := profile.Validate(); err != nil {
		return nil, &SchemaViolationError{Message: "profile failed validation", Cause: err}
	}

	if err := opts.Store.WriteJSON(ctx, "", store.NameUserProfile, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// BuildPlan builds a fresh tailoring plan for the job, folds in any answers,
// and persists the result both job-scoped and as the latest global plan.
// Requires the profile and job spec artifacts from earlier steps.
func BuildPlan(ctx context.Context, opts Options, jobID string, answers []types.Answer) (*types.TailoringPlan, error) {
	var profile types.UserProfile
	if err := opts.Store.ReadJSON(ctx, "", store.NameUserProfile, &profile); err != nil {
		return nil, err
	}

	var spec types.JobSpec
	if err := opts.Store.ReadJSON(ctx, jobID, store.NameJobSpec, &spec); err != nil {
		return nil, err
	}

	plan := planning.MergeAnswers(planning.BuildTailoringPlan(&profile, &spec), answers)
	if err := plan.Validate(); err != nil {
		return nil, &SchemaViolationError{Message: "tailoring plan failed validation", Cause: err}
	}

	if err := opts.Store.WriteJSON(ctx, jobID, store.NameTailoringPlan, plan); err != nil {
		return nil, err
	}
	if err := opts.Store.WriteJSON(ctx, "", store.NameTailoringPlan, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

// GenerateResult holds the outputs of one CV generation.
type GenerateResult struct {
	Artifact    *types.CVArtifact
	TexContent  string
	DiffContent string
}

// GenerateCV renders the untailored baseline and the tailored CV, diffs the
// two renderings and persists the tailored document, the diff report and an
// artifact record. The job-scoped plan is preferred; the latest global plan
// is the fallback.
func GenerateCV(ctx context.Context, opts Options, jobID string) (*GenerateResult, error) {
	var profile types.UserProfile
	if err := opts.Store.ReadJSON(ctx, "", store.NameUserProfile, &profile); err != nil {
		return nil, err
	}

	var plan types.TailoringPlan
	if err := opts.Store.ReadJSON(ctx, jobID, store.NameTailoringPlan, &plan); err != nil {
		var missing *store.MissingArtifactError
		if !errors.As(err, &missing) {
			return nil, err
		}
		if err := opts.Store.ReadJSON(ctx, "", store.NameTailoringPlan, &plan); err != nil {
			return nil, err
		}
	}

	basePlan := baselinePlan(&profile, &plan)

	var baseCV, tailoredCV string
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		baseCV, err = rendering.RenderCV(opts.templatePath(), &profile, basePlan)
		return err
	})
	g.Go(func() error {
		var err error
		tailoredCV, err = rendering.RenderCV(opts.templatePath(), &profile, &plan)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	diff := diffing.GenerateDiffReport(baseCV, tailoredCV, &plan)

	texRef, err := opts.Store.WriteText(ctx, jobID, store.NameCVTex, tailoredCV)
	if err != nil {
		return nil, err
	}
	diffRef, err := opts.Store.WriteText(ctx, jobID, store.NameDiffReport, diff)
	if err != nil {
		return nil, err
	}

	artifact := &types.CVArtifact{
		JobID:            jobID,
		GeneratedAt:      time.Now().UTC().Format(time.RFC3339),
		BaseTemplatePath: opts.templatePath(),
		OutputTexPath:    texRef,
		DiffReportPath:   diffRef,
	}
	if err := artifact.Validate(); err != nil {
		return nil, &SchemaViolationError{Message: "cv artifact failed validation", Cause: err}
	}
	if err := opts.Store.WriteJSON(ctx, jobID, store.NameCVArtifact, artifact); err != nil {
		return nil, err
	}

	return &GenerateResult{
		Artifact:    artifact,
		TexContent:  tailoredCV,
		DiffContent: diff,
	}, nil
}

// baselinePlan strips the tailoring from a plan so the baseline rendering
// contains only profile data.
func baselinePlan(profile *types.UserProfile, plan *types.TailoringPlan) *types.TailoringPlan {
	summary := profile.Summary
	if summary == "" {
		summary = baseSummary
	}
	return &types.TailoringPlan{
		JobID:              plan.JobID,
		PositioningSummary: summary,
		HighlightBullets:   []string{},
		Gaps:               []string{},
		Questions:          []string{},
		Mapping:            []types.RequirementMapping{},
	}
}
