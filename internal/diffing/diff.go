// Package diffing compares a baseline CV rendering against a tailored one
// and composes a human-readable change report.
package diffing

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-tailor/internal/types"
)

// GenerateDiffReport produces a line-oriented comparison between the base
// (untailored) and tailored renderings plus a markdown change report.
//
// The comparison is positional, not content-aligned: line i of the base is
// compared against line i of the tailored text, with missing lines past
// either end treated as empty. A single inserted line therefore shifts every
// later comparison and may over-report changes. That is a documented
// limitation of the report, not something to silently correct.
func GenerateDiffReport(baseCV, tailoredCV string, plan *types.TailoringPlan) string {
	baseLines := strings.Split(baseCV, "\n")
	tailoredLines := strings.Split(tailoredCV, "\n")

	var removed, added []string

	max := len(baseLines)
	if len(tailoredLines) > max {
		max = len(tailoredLines)
	}

	for i := 0; i < max; i++ {
		before := lineAt(baseLines, i)
		after := lineAt(tailoredLines, i)
		if before == after {
			continue
		}
		if strings.TrimSpace(before) != "" {
			removed = append(removed, fmt.Sprintf("- %s", before))
		}
		if strings.TrimSpace(after) != "" {
			added = append(added, fmt.Sprintf("+ %s", after))
		}
	}

	var report []string
	report = append(report,
		fmt.Sprintf("# CV Diff Report (%s)", plan.JobID),
		"",
		"## Tailoring Summary",
		plan.PositioningSummary,
		"",
		"## Highlights Applied",
	)
	for _, bullet := range plan.HighlightBullets {
		report = append(report, fmt.Sprintf("- %s", bullet))
	}
	report = append(report, "", "## Added/Updated Lines")
	if len(added) > 0 {
		report = append(report, added...)
	} else {
		report = append(report, "- No added lines detected")
	}
	report = append(report, "", "## Removed/Replaced Lines")
	if len(removed) > 0 {
		report = append(report, removed...)
	} else {
		report = append(report, "- No removed lines detected")
	}
	report = append(report, "")

	return strings.Join(report, "\n")
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}
