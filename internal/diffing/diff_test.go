package diffing

import (
	"strings"
	"testing"

	"github.com/jonathan/cv-tailor/internal/types"
	"github.com/stretchr/testify/assert"
)

func reportPlan() *types.TailoringPlan {
	return &types.TailoringPlan{
		JobID:              "job_abc",
		PositioningSummary: "Target role: Backend Engineer (senior).",
		HighlightBullets:   []string{"Match Go with profile evidence: Skill: Go"},
	}
}

func TestGenerateDiffReport_IdenticalTextsReportNoChanges(t *testing.T) {
	text := "line one\nline two\nline three"

	report := GenerateDiffReport(text, text, reportPlan())

	assert.Contains(t, report, "- No added lines detected")
	assert.Contains(t, report, "- No removed lines detected")
}

func TestGenerateDiffReport_ChangedLineReportedBothWays(t *testing.T) {
	base := "intro\nold summary\noutro"
	tailored := "intro\nnew summary\noutro"

	report := GenerateDiffReport(base, tailored, reportPlan())

	assert.Contains(t, report, "+ new summary")
	assert.Contains(t, report, "- old summary")
}

func TestGenerateDiffReport_ExtraTailoredLinesAreAdded(t *testing.T) {
	base := "intro"
	tailored := "intro\nhighlight one\nhighlight two"

	report := GenerateDiffReport(base, tailored, reportPlan())

	assert.Contains(t, report, "+ highlight one")
	assert.Contains(t, report, "+ highlight two")
	assert.Contains(t, report, "- No removed lines detected")
}

func TestGenerateDiffReport_BlankLinesNotReported(t *testing.T) {
	base := "intro\n\nend"
	tailored := "intro\ncontent\nend"

	report := GenerateDiffReport(base, tailored, reportPlan())

	assert.Contains(t, report, "+ content")
	// The blank base line at the same index is dropped, not listed as removed
	assert.Contains(t, report, "- No removed lines detected")
}

func TestGenerateDiffReport_PositionalShiftOverReports(t *testing.T) {
	// An inserted first line shifts every later comparison; the positional
	// diff reports the shifted lines as changed.
	base := "alpha\nbeta"
	tailored := "inserted\nalpha\nbeta"

	report := GenerateDiffReport(base, tailored, reportPlan())

	assert.Contains(t, report, "+ inserted")
	assert.Contains(t, report, "- alpha")
	assert.Contains(t, report, "+ alpha")
}

func TestGenerateDiffReport_Structure(t *testing.T) {
	report := GenerateDiffReport("a", "b", reportPlan())

	lines := strings.Split(report, "\n")
	assert.Equal(t, "# CV Diff Report (job_abc)", lines[0])
	assert.Contains(t, report, "## Tailoring Summary")
	assert.Contains(t, report, "Target role: Backend Engineer (senior).")
	assert.Contains(t, report, "## Highlights Applied")
	assert.Contains(t, report, "- Match Go with profile evidence: Skill: Go")
	assert.Contains(t, report, "## Added/Updated Lines")
	assert.Contains(t, report, "## Removed/Replaced Lines")
}
