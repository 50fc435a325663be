// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobSpec outputs a human-readable summary of the parsed job spec.
func (p *Printer) PrintJobSpec(spec *types.JobSpec) {
	if spec == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Job ID:    %s\n", spec.ID))
	sb.WriteString(fmt.Sprintf("Role:      %s\n", spec.Role))
	sb.WriteString(fmt.Sprintf("Seniority: %s\n", spec.Seniority))
	sb.WriteString("\n")

	if len(spec.RequirementsMust) > 0 {
		sb.WriteString("Must-have requirements:\n")
		count := min(len(spec.RequirementsMust), maxItemsToShow)
		for i := 0; i < count; i++ {
			req := spec.RequirementsMust[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", req.Label, req.Priority))
		}
		if len(spec.RequirementsMust) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(spec.RequirementsMust)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(spec.RequirementsNice) > 0 {
		sb.WriteString("Nice-to-haves:\n")
		count := min(len(spec.RequirementsNice), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", spec.RequirementsNice[i].Label))
		}
		if len(spec.RequirementsNice) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(spec.RequirementsNice)-3))
		}
		sb.WriteString("\n")
	}

	if len(spec.Stack) > 0 {
		stack := strings.Join(spec.Stack, ", ")
		if len(stack) > 45 {
			stack = stack[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Stack: %s\n", stack))
	}

	p.printBox("PARSED JOB SPEC", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTailoringPlan outputs the requirement coverage, highlights and open
// questions of a tailoring plan.
func (p *Printer) PrintTailoringPlan(plan *types.TailoringPlan) {
	if plan == nil {
		return
	}

	var sb strings.Builder

	covered, partial, missing := 0, 0, 0
	for _, m := range plan.Mapping {
		switch m.Status {
		case types.StatusCovered:
			covered++
		case types.StatusPartial:
			partial++
		case types.StatusMissing:
			missing++
		}
	}
	sb.WriteString(fmt.Sprintf("Coverage: %d covered / %d partial / %d missing\n\n", covered, partial, missing))

	if len(plan.HighlightBullets) > 0 {
		sb.WriteString("Highlights:\n")
		count := min(len(plan.HighlightBullets), maxItemsToShow)
		for i := 0; i < count; i++ {
			bullet := plan.HighlightBullets[i]
			if len(bullet) > 50 {
				bullet = bullet[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", bullet))
		}
		sb.WriteString("\n")
	}

	if len(plan.Gaps) > 0 {
		sb.WriteString("Gaps:\n")
		count := min(len(plan.Gaps), 3)
		for i := 0; i < count; i++ {
			gap := plan.Gaps[i]
			if len(gap) > 50 {
				gap = gap[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", gap))
		}
		if len(plan.Gaps) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(plan.Gaps)-3))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Open questions: %d", len(plan.Questions)))

	p.printBox("TAILORING PLAN", sb.String())
}

// PrintArtifact outputs the paths of a generated CV artifact.
func (p *Printer) PrintArtifact(artifact *types.CVArtifact) {
	if artifact == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job ID:    %s\n", artifact.JobID))
	sb.WriteString(fmt.Sprintf("Generated: %s\n", artifact.GeneratedAt))
	sb.WriteString(fmt.Sprintf("Output:    %s\n", artifact.OutputTexPath))
	sb.WriteString(fmt.Sprintf("Diff:      %s", artifact.DiffReportPath))

	p.printBox("GENERATED CV", sb.String())
}
