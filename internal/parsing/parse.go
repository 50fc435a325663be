// Package parsing turns raw job description text into a structured JobSpec
// using deterministic, regex-based sentence classification.
package parsing

import (
	"context"
	"regexp"
	"strings"

	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/textutil"
	"github.com/jonathan/cv-tailor/internal/types"
)

// Classification patterns. Categories are independent: a sentence may land
// in zero, one or several of the output lists.
var (
	responsibilityPattern = regexp.MustCompile(`(?i)\b(build|design|develop|own|lead|collaborate|deliver|implement|maintain|optimize)\b`)
	mustPattern           = regexp.MustCompile(`(?i)\b(must|required|requirements|minimum|strong\s+experience|\d+\+?\s*years?)\b`)
	nicePattern           = regexp.MustCompile(`(?i)\b(preferred|nice to have|bonus|plus)\b`)
	rolePattern           = regexp.MustCompile(`(?i)(?:role|position|title)\s*:`)
	seniorityPattern      = regexp.MustCompile(`(?i)\b(junior|mid|senior|staff|lead|principal)\b`)
	bulletPrefixPattern   = regexp.MustCompile(`^[-*]\s*`)
)

// maxRoleSentenceLen caps how long a leading sentence may be before it is
// rejected as a role title.
const maxRoleSentenceLen = 80

// stackKeywords is the fixed technology keyword list checked against the
// lowercased posting text. Order determines output order.
var stackKeywords = []string{
	"typescript",
	"javascript",
	"react",
	"next.js",
	"node",
	"python",
	"java",
	"go",
	"aws",
	"docker",
	"kubernetes",
	"postgres",
	"sql",
	"graphql",
	"rest",
}

// ParseJobDescription parses raw job description text into a validated
// JobSpec. The optional override is consulted once; any non-empty field it
// returns replaces the heuristic result for that field entirely.
func ParseJobDescription(ctx context.Context, jdText string, override llm.Override) (*types.JobSpec, error) {
	if strings.TrimSpace(jdText) == "" {
		return nil, &EmptyInputError{Field: "job description text"}
	}

	sentences := textutil.SplitSentences(jdText)
	lower := strings.ToLower(jdText)

	var patch *llm.JobSpecPatch
	if override != nil {
		var err error
		patch, err = override.ParseJobDescription(ctx, jdText)
		if err != nil {
			return nil, &OverrideError{Message: "parse job description", Cause: err}
		}
	}
	if patch == nil {
		patch = &llm.JobSpecPatch{}
	}

	spec := &types.JobSpec{
		ID:               firstNonEmpty(patch.ID, textutil.MakeJobID(jdText)),
		Role:             firstNonEmpty(patch.Role, inferRole(sentences)),
		Seniority:        firstNonEmpty(patch.Seniority, inferSeniority(lower)),
		Responsibilities: firstNonEmptyReqs(patch.Responsibilities, classify(sentences, responsibilityPattern, types.PriorityMedium)),
		RequirementsMust: firstNonEmptyReqs(patch.RequirementsMust, classify(sentences, mustPattern, types.PriorityHigh)),
		RequirementsNice: firstNonEmptyReqs(patch.RequirementsNice, classify(sentences, nicePattern, types.PriorityLow)),
		Stack:            firstNonEmptyStrings(patch.Stack, extractStack(lower)),
	}

	if err := spec.Validate(); err != nil {
		return nil, &SchemaViolationError{Message: "job spec failed validation", Cause: err}
	}

	return spec, nil
}

// classify collects every sentence matching the pattern as a Requirement
// with the given priority.
func classify(sentences []string, pattern *regexp.Regexp, priority string) []types.Requirement {
	reqs := make([]types.Requirement, 0)
	for _, sentence := range sentences {
		if pattern.MatchString(sentence) {
			reqs = append(reqs, toRequirement(sentence, priority))
		}
	}
	return reqs
}

// toRequirement builds a Requirement from a matched sentence. The label
// drops a leading bullet marker; the evidence keeps the truncated original.
func toRequirement(sentence string, priority string) types.Requirement {
	return types.Requirement{
		Label:    strings.TrimSpace(bulletPrefixPattern.ReplaceAllString(sentence, "")),
		Evidence: textutil.TruncateEvidence(sentence),
		Priority: priority,
	}
}

// inferRole prefers an explicit "role:"/"position:"/"title:" sentence, using
// the text after the colon. Otherwise the first sentence is used if it is
// short enough to plausibly be a title.
func inferRole(sentences []string) string {
	for _, sentence := range sentences {
		if rolePattern.MatchString(sentence) {
			if idx := strings.Index(sentence, ":"); idx >= 0 {
				if after := strings.TrimSpace(sentence[idx+1:]); after != "" {
					return after
				}
			}
			return sentence
		}
	}

	if len(sentences) == 0 {
		return "Unknown role"
	}
	top := sentences[0]
	if len(top) > maxRoleSentenceLen {
		return "Unknown role"
	}
	return top
}

// inferSeniority returns the first seniority keyword found in the text.
func inferSeniority(lower string) string {
	if match := seniorityPattern.FindStringSubmatch(lower); match != nil {
		return strings.ToLower(match[1])
	}
	return "unspecified"
}

// extractStack collects stack keywords present in the lowercased text. A
// keyword also matches with its first "." removed, so "next.js" is found in
// "nextjs"-style text. First-seen order is preserved.
func extractStack(lower string) []string {
	stack := make([]string, 0)
	for _, keyword := range stackKeywords {
		if strings.Contains(lower, keyword) || strings.Contains(lower, strings.Replace(keyword, ".", "", 1)) {
			stack = append(stack, keyword)
		}
	}
	return textutil.Unique(stack)
}

func firstNonEmpty(patch, fallback string) string {
	if patch != "" {
		return patch
	}
	return fallback
}

func firstNonEmptyReqs(patch, fallback []types.Requirement) []types.Requirement {
	if len(patch) > 0 {
		return patch
	}
	return fallback
}

func firstNonEmptyStrings(patch, fallback []string) []string {
	if len(patch) > 0 {
		return patch
	}
	return fallback
}
