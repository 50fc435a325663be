package planning

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-tailor/internal/types"
)

// MergeAnswers folds user-supplied question/answer pairs back into a plan.
// An answer is associated with a mapping when the question text contains the
// mapping's requirement label as a substring; matched answers are appended
// to the mapping's evidence and a missing mapping is upgraded to partial
// (never further). Answered questions are removed by exact question match,
// and each non-blank answer adds a highlight bullet.
//
// Gaps are intentionally left at their plan-build value, even when a mapping
// moves from missing to partial.
func MergeAnswers(plan *types.TailoringPlan, answers []types.Answer) *types.TailoringPlan {
	nonEmpty := make([]types.Answer, 0, len(answers))
	for _, qa := range answers {
		if strings.TrimSpace(qa.Answer) != "" {
			nonEmpty = append(nonEmpty, qa)
		}
	}
	if len(nonEmpty) == 0 {
		return plan
	}

	mapping := make([]types.RequirementMapping, 0, len(plan.Mapping))
	for _, entry := range plan.Mapping {
		hits := make([]string, 0)
		for _, qa := range nonEmpty {
			if strings.Contains(qa.Question, entry.RequirementLabel) {
				hits = append(hits, strings.TrimSpace(qa.Answer))
			}
		}
		if len(hits) == 0 {
			mapping = append(mapping, entry)
			continue
		}

		updated := entry
		updated.UserEvidence = append(append([]string{}, entry.UserEvidence...), hits...)
		if updated.Status == types.StatusMissing {
			updated.Status = types.StatusPartial
		}
		mapping = append(mapping, updated)
	}

	unanswered := make([]string, 0, len(plan.Questions))
	for _, question := range plan.Questions {
		if !answered(question, nonEmpty) {
			unanswered = append(unanswered, question)
		}
	}

	highlights := append([]string{}, plan.HighlightBullets...)
	for _, qa := range nonEmpty {
		highlights = append(highlights, fmt.Sprintf("Additional user evidence provided: %s", strings.TrimSpace(qa.Answer)))
	}

	return &types.TailoringPlan{
		JobID:              plan.JobID,
		PositioningSummary: plan.PositioningSummary,
		HighlightBullets:   highlights,
		Gaps:               plan.Gaps,
		Questions:          unanswered,
		Mapping:            mapping,
	}
}

// answered reports whether a plan question received a non-blank answer.
// Comparison is an exact string match on the question text.
func answered(question string, answers []types.Answer) bool {
	for _, qa := range answers {
		if qa.Question == question {
			return true
		}
	}
	return false
}
