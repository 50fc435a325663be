package planning

import (
	"testing"

	"github.com/jonathan/cv-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlan() *types.TailoringPlan {
	return &types.TailoringPlan{
		JobID:              "job_abc",
		PositioningSummary: "Target role: Backend Engineer (senior). Covered requirements: 0/1. There are 1 missing requirement(s) requiring clarification.",
		HighlightBullets:   []string{},
		Gaps:               []string{"5+ years Node.js"},
		Questions: []string{
			"Do you have concrete experience for: '5+ years Node.js'? Share measurable outcomes if available.",
		},
		Mapping: []types.RequirementMapping{
			{
				RequirementLabel:    "5+ years Node.js",
				RequirementEvidence: "Must have 5+ years of Node.js",
				UserEvidence:        []string{},
				Status:              types.StatusMissing,
			},
		},
	}
}

func TestMergeAnswers_EmptyAnswerListIsNoOp(t *testing.T) {
	plan := samplePlan()

	merged := MergeAnswers(plan, nil)

	assert.Equal(t, plan, merged)
}

func TestMergeAnswers_AllBlankAnswersIsNoOp(t *testing.T) {
	plan := samplePlan()
	answers := []types.Answer{
		{Question: plan.Questions[0], Answer: "   "},
		{Question: plan.Questions[0], Answer: ""},
	}

	merged := MergeAnswers(plan, answers)

	assert.Equal(t, plan, merged)
}

func TestMergeAnswers_UpgradesMissingToPartial(t *testing.T) {
	plan := samplePlan()
	answers := []types.Answer{
		{Question: plan.Questions[0], Answer: "  Maintained Node.js services for 6 years  "},
	}

	merged := MergeAnswers(plan, answers)

	require.Len(t, merged.Mapping, 1)
	assert.Equal(t, types.StatusPartial, merged.Mapping[0].Status)
	assert.Equal(t, []string{"Maintained Node.js services for 6 years"}, merged.Mapping[0].UserEvidence)
}

func TestMergeAnswers_NeverUpgradesToCovered(t *testing.T) {
	plan := samplePlan()
	plan.Mapping[0].Status = types.StatusPartial

	merged := MergeAnswers(plan, []types.Answer{
		{Question: plan.Questions[0], Answer: "Extensive Node.js background"},
	})

	assert.Equal(t, types.StatusPartial, merged.Mapping[0].Status)
}

func TestMergeAnswers_RemovesAnsweredQuestions(t *testing.T) {
	plan := samplePlan()
	plan.Questions = append(plan.Questions, "Can you provide stronger evidence (project, metric, scope) for: 'Kubernetes'?")

	merged := MergeAnswers(plan, []types.Answer{
		{Question: plan.Questions[0], Answer: "Six years of Node.js"},
	})

	require.Len(t, merged.Questions, 1)
	assert.Contains(t, merged.Questions[0], "Kubernetes")
}

func TestMergeAnswers_AppendsHighlightPerAnswer(t *testing.T) {
	plan := samplePlan()

	merged := MergeAnswers(plan, []types.Answer{
		{Question: plan.Questions[0], Answer: "Six years of Node.js"},
	})

	require.Len(t, merged.HighlightBullets, 1)
	assert.Equal(t, "Additional user evidence provided: Six years of Node.js", merged.HighlightBullets[0])
}

func TestMergeAnswers_GapsNotRecomputed(t *testing.T) {
	plan := samplePlan()

	merged := MergeAnswers(plan, []types.Answer{
		{Question: plan.Questions[0], Answer: "Six years of Node.js"},
	})

	// The mapping moved to partial but gaps keep their plan-build value
	assert.Equal(t, types.StatusPartial, merged.Mapping[0].Status)
	assert.Equal(t, []string{"5+ years Node.js"}, merged.Gaps)
}

func TestMergeAnswers_UnmatchedQuestionLeavesMappingAlone(t *testing.T) {
	plan := samplePlan()

	merged := MergeAnswers(plan, []types.Answer{
		{Question: "Do you have concrete experience for: 'GraphQL federation'?", Answer: "Some"},
	})

	assert.Equal(t, types.StatusMissing, merged.Mapping[0].Status)
	assert.Empty(t, merged.Mapping[0].UserEvidence)
	// The answer still contributes a highlight and its question text does not
	// match any open question, so the question list is unchanged
	assert.Len(t, merged.HighlightBullets, 1)
	assert.Equal(t, plan.Questions, merged.Questions)
}

func TestMergeAnswers_DoesNotMutateInputPlan(t *testing.T) {
	plan := samplePlan()

	_ = MergeAnswers(plan, []types.Answer{
		{Question: plan.Questions[0], Answer: "Six years of Node.js"},
	})

	assert.Equal(t, types.StatusMissing, plan.Mapping[0].Status)
	assert.Empty(t, plan.HighlightBullets)
	assert.Len(t, plan.Questions, 1)
}
