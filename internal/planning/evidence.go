// Package planning maps job requirements against candidate evidence and
// builds the tailoring plan consumed by rendering and diffing.
package planning

import (
	"fmt"

	"github.com/jonathan/cv-tailor/internal/types"
)

// CollectUserEvidence flattens a profile into the ordered evidence pool used
// for requirement matching: summary, skills, experience roles and bullets,
// then projects. Duplicates are kept; a repeated phrase may legitimately
// strengthen a match.
func CollectUserEvidence(user *types.UserProfile) []string {
	pool := make([]string, 0)

	if user.Summary != "" {
		pool = append(pool, user.Summary)
	}

	for _, skill := range user.Skills {
		pool = append(pool, fmt.Sprintf("Skill: %s", skill))
	}

	for _, exp := range user.Experiences {
		pool = append(pool, fmt.Sprintf("%s at %s", exp.Role, exp.Company))
		for _, bullet := range exp.Bullets {
			pool = append(pool, fmt.Sprintf("%s - %s", exp.Role, bullet))
		}
	}

	for _, project := range user.Projects {
		pool = append(pool, project.Name, project.Description)
		if project.Impact != "" {
			pool = append(pool, project.Impact)
		}
	}

	return pool
}
