package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-tailor/internal/types"
)

// Fallback strings used when a profile section is empty
const (
	fallbackHeadline   = "Candidate"
	fallbackNotset     = "Not provided"
	fallbackItem       = "\\item No details provided"
	fallbackExperience = "No professional experience provided"
	fallbackProjects   = "\\item No projects provided"
	fallbackEducation  = "\\item No education entries provided"
)

// CompileTemplate substitutes profile and plan data into the template. The
// template string is read-only input; compilation carries no state between
// calls, so repeated compilations are independent.
func CompileTemplate(template string, user *types.UserProfile, plan *types.TailoringPlan) string {
	headline := user.Headline
	if headline == "" {
		headline = fallbackHeadline
	}

	summary := user.Summary
	if summary == "" {
		summary = plan.PositioningSummary
	}

	skills := strings.Join(user.Skills, ", ")
	if skills == "" {
		skills = fallbackNotset
	}

	replacer := strings.NewReplacer(
		"{{FULL_NAME}}", EscapeLaTeX(user.FullName),
		"{{HEADLINE}}", EscapeLaTeX(headline),
		"{{SUMMARY}}", EscapeLaTeX(summary),
		"{{SKILLS}}", EscapeLaTeX(skills),
		"{{HIGHLIGHTS}}", toItemize(plan.HighlightBullets),
		"{{EXPERIENCE}}", orFallback(renderExperience(user), fallbackExperience),
		"{{PROJECTS}}", orFallback(renderProjects(user), fallbackProjects),
		"{{EDUCATION}}", orFallback(renderEducation(user), fallbackEducation),
		"{{LANGUAGES}}", EscapeLaTeX(orFallback(renderLanguages(user), fallbackNotset)),
	)

	return replacer.Replace(template)
}

// toItemize renders strings as itemize entries; an empty list renders a
// single explanatory item rather than an empty block.
func toItemize(items []string) string {
	if len(items) == 0 {
		return fallbackItem
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("\\item %s", EscapeLaTeX(item)))
	}
	return strings.Join(lines, "\n")
}

func renderExperience(user *types.UserProfile) string {
	sections := make([]string, 0, len(user.Experiences))
	for _, exp := range user.Experiences {
		endDate := exp.EndDate
		if endDate == "" {
			endDate = "Present"
		}
		section := fmt.Sprintf("\\textbf{%s} at %s (%s -- %s)\\\\\n\\begin{itemize}\n%s\n\\end{itemize}",
			EscapeLaTeX(exp.Role),
			EscapeLaTeX(exp.Company),
			EscapeLaTeX(exp.StartDate),
			EscapeLaTeX(endDate),
			toItemize(exp.Bullets),
		)
		sections = append(sections, section)
	}
	return strings.Join(sections, "\n\n")
}

func renderProjects(user *types.UserProfile) string {
	items := make([]string, 0, len(user.Projects))
	for _, project := range user.Projects {
		parts := project.Description
		if project.Impact != "" {
			parts = strings.TrimSpace(parts + " " + project.Impact)
		}
		if parts == "" {
			parts = "No description provided"
		}
		items = append(items, fmt.Sprintf("\\item \\textbf{%s}: %s", EscapeLaTeX(project.Name), EscapeLaTeX(parts)))
	}
	return strings.Join(items, "\n")
}

func renderEducation(user *types.UserProfile) string {
	items := make([]string, 0, len(user.Education))
	for _, edu := range user.Education {
		field := ""
		if edu.Field != "" {
			field = fmt.Sprintf("in %s", EscapeLaTeX(edu.Field))
		}
		end := ""
		if edu.EndDate != "" {
			end = fmt.Sprintf("(%s)", EscapeLaTeX(edu.EndDate))
		}
		items = append(items, fmt.Sprintf("\\item \\textbf{%s} %s, %s %s",
			EscapeLaTeX(edu.Degree), field, EscapeLaTeX(edu.Institution), end))
	}
	return strings.Join(items, "\n")
}

func renderLanguages(user *types.UserProfile) string {
	entries := make([]string, 0, len(user.Languages))
	for _, lang := range user.Languages {
		entries = append(entries, fmt.Sprintf("%s (%s)", lang.Name, lang.Level))
	}
	return strings.Join(entries, ", ")
}

func orFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
