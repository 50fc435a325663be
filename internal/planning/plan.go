package planning

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/cv-tailor/internal/textutil"
	"github.com/jonathan/cv-tailor/internal/types"
)

// Coverage policy constants. Status is monotonic in the best overlap score:
// 0 is missing, anything below coveredThreshold is partial.
const (
	coveredThreshold = 3
	maxEvidencePer   = 2
	maxHighlights    = 5
)

// fallbackEvidence is used when a covered mapping somehow carries no evidence
const fallbackEvidence = "No direct proof provided yet"

// rankedEntry pairs an evidence pool entry with its overlap score
type rankedEntry struct {
	entry   string
	overlap int
}

// BuildTailoringPlan maps every must and nice requirement against the
// profile's evidence pool and derives highlights, gaps, clarifying questions
// and a positioning summary.
func BuildTailoringPlan(user *types.UserProfile, job *types.JobSpec) *types.TailoringPlan {
	pool := CollectUserEvidence(user)
	requirements := job.Requirements()

	mapping := make([]types.RequirementMapping, 0, len(requirements))
	for _, req := range requirements {
		mapping = append(mapping, mapRequirement(req, pool))
	}

	covered := filterByStatus(mapping, types.StatusCovered)
	partial := filterByStatus(mapping, types.StatusPartial)
	missing := filterByStatus(mapping, types.StatusMissing)

	highlights := make([]string, 0, maxHighlights)
	for _, m := range covered {
		if len(highlights) == maxHighlights {
			break
		}
		evidence := fallbackEvidence
		if len(m.UserEvidence) > 0 {
			evidence = m.UserEvidence[0]
		}
		highlights = append(highlights, fmt.Sprintf("Match %s with profile evidence: %s", m.RequirementLabel, evidence))
	}

	gaps := make([]string, 0, len(missing))
	for _, m := range missing {
		gaps = append(gaps, m.RequirementLabel)
	}

	questions := make([]string, 0, len(missing)+len(partial))
	for _, m := range missing {
		questions = append(questions, fmt.Sprintf("Do you have concrete experience for: '%s'? Share measurable outcomes if available.", m.RequirementLabel))
	}
	for _, m := range partial {
		questions = append(questions, fmt.Sprintf("Can you provide stronger evidence (project, metric, scope) for: '%s'?", m.RequirementLabel))
	}

	return &types.TailoringPlan{
		JobID:              job.ID,
		PositioningSummary: positioningSummary(job, len(covered), len(requirements), len(missing)),
		HighlightBullets:   highlights,
		Gaps:               gaps,
		Questions:          questions,
		Mapping:            mapping,
	}
}

// mapRequirement scores the evidence pool against one requirement label and
// assigns the coverage status.
func mapRequirement(req types.Requirement, pool []string) types.RequirementMapping {
	ranked := make([]rankedEntry, 0, len(pool))
	for _, entry := range pool {
		ranked = append(ranked, rankedEntry{
			entry:   entry,
			overlap: textutil.KeywordOverlap(req.Label, entry),
		})
	}
	// Stable keeps original pool order as the tie-break
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].overlap > ranked[j].overlap
	})

	selected := make([]string, 0, maxEvidencePer)
	for _, r := range ranked {
		if r.overlap == 0 || len(selected) == maxEvidencePer {
			break
		}
		selected = append(selected, r.entry)
	}

	bestScore := 0
	if len(ranked) > 0 {
		bestScore = ranked[0].overlap
	}

	return types.RequirementMapping{
		RequirementLabel:    req.Label,
		RequirementEvidence: req.Evidence,
		UserEvidence:        selected,
		Status:              statusFor(bestScore),
	}
}

// statusFor converts a best overlap score into a coverage status.
func statusFor(bestScore int) string {
	switch {
	case bestScore >= coveredThreshold:
		return types.StatusCovered
	case bestScore > 0:
		return types.StatusPartial
	default:
		return types.StatusMissing
	}
}

func filterByStatus(mapping []types.RequirementMapping, status string) []types.RequirementMapping {
	filtered := make([]types.RequirementMapping, 0, len(mapping))
	for _, m := range mapping {
		if m.Status == status {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// positioningSummary composes the three-sentence narrative: target role and
// seniority, covered ratio, and the gap count or a no-gap statement.
func positioningSummary(job *types.JobSpec, covered, total, missing int) string {
	parts := []string{
		fmt.Sprintf("Target role: %s (%s).", job.Role, job.Seniority),
		fmt.Sprintf("Covered requirements: %d/%d.", covered, total),
	}
	if missing > 0 {
		parts = append(parts, fmt.Sprintf("There are %d missing requirement(s) requiring clarification.", missing))
	} else {
		parts = append(parts, "No critical requirement gaps detected from available profile data.")
	}
	return strings.Join(parts, " ")
}
