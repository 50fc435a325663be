// Package rendering compiles the CV LaTeX template with profile and plan data.
package rendering

import "strings"

// EscapeLaTeX escapes special LaTeX characters in free-text values.
// Special characters: \ & % $ # _ { }
// The single pass over the input means the backslashes introduced for later
// characters are never themselves re-escaped.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2)

	for _, r := range text {
		switch r {
		case '\\':
			result.WriteString(`\textbackslash{}`)
		case '&':
			result.WriteString(`\&`)
		case '%':
			result.WriteString(`\%`)
		case '$':
			result.WriteString(`\$`)
		case '#':
			result.WriteString(`\#`)
		case '_':
			result.WriteString(`\_`)
		case '{':
			result.WriteString(`\{`)
		case '}':
			result.WriteString(`\}`)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
