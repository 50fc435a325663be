// Package textutil provides text normalization, keyword-overlap scoring and
// small text helpers shared by the parsing and planning packages.
package textutil

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxEvidenceLen is the maximum length of a requirement evidence excerpt.
const maxEvidenceLen = 160

// stopWords are dropped during tokenization. Kept as data for testability.
var stopWords = map[string]bool{
	"the": true, "and": true, "or": true, "to": true, "of": true,
	"in": true, "for": true, "with": true, "a": true, "an": true,
	"on": true, "is": true, "are": true, "as": true, "be": true,
	"at": true, "by": true, "you": true, "we": true, "our": true,
}

// MakeJobID derives a deterministic content-addressed identifier from raw
// job description text. Identical text always yields the same ID.
func MakeJobID(text string) string {
	sum := sha1.Sum([]byte(text))
	return fmt.Sprintf("job_%s", hex.EncodeToString(sum[:])[:10])
}

// SplitSentences splits raw text into trimmed, non-empty sentences. Text is
// split on newlines and on whitespace that follows sentence-terminal
// punctuation, so the punctuation stays attached to the preceding sentence.
func SplitSentences(text string) []string {
	var sentences []string
	for _, line := range strings.Split(text, "\n") {
		start := 0
		runes := []rune(line)
		for i := 0; i < len(runes)-1; i++ {
			if isTerminal(runes[i]) && isSpace(runes[i+1]) {
				appendSentence(&sentences, string(runes[start:i+1]))
				// Skip the whitespace run following the terminator
				j := i + 1
				for j < len(runes) && isSpace(runes[j]) {
					j++
				}
				start = j
				i = j - 1
			}
		}
		if start < len(runes) {
			appendSentence(&sentences, string(runes[start:]))
		}
	}
	return sentences
}

func appendSentence(sentences *[]string, s string) {
	s = strings.TrimSpace(s)
	if s != "" {
		*sentences = append(*sentences, s)
	}
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// isSpace reports whitespace that may follow terminal punctuation inside a
// line. Newlines are excluded because the outer split already consumed them.
func isSpace(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

// Words tokenizes input: lowercase, every character outside [a-z0-9+.# ]
// replaced by a space, split on whitespace, stop words dropped.
func Words(input string) []string {
	var normalized strings.Builder
	normalized.Grow(len(input))
	for _, r := range strings.ToLower(input) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '+' || r == '.' || r == '#' || r == ' ' {
			normalized.WriteRune(r)
		} else {
			normalized.WriteRune(' ')
		}
	}

	tokens := make([]string, 0)
	for _, token := range strings.Fields(normalized.String()) {
		if !stopWords[token] {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// KeywordOverlap counts the tokens shared by both inputs. It is symmetric
// and zero when either input normalizes to an empty token set.
func KeywordOverlap(left, right string) int {
	l := make(map[string]bool)
	for _, token := range Words(left) {
		l[token] = true
	}

	r := make(map[string]bool)
	for _, token := range Words(right) {
		r[token] = true
	}

	count := 0
	for token := range l {
		if r[token] {
			count++
		}
	}
	return count
}

// TruncateEvidence trims text and truncates it to the evidence excerpt
// limit, replacing the tail with an ellipsis when it overflows. The limit
// counts characters, not bytes, so multibyte runes are never split.
func TruncateEvidence(text string) string {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) <= maxEvidenceLen {
		return trimmed
	}
	return string([]rune(trimmed)[:maxEvidenceLen-3]) + "..."
}

// Unique deduplicates strings while preserving first-seen order.
func Unique(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}
