package textutil

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestMakeJobID_Deterministic(t *testing.T) {
	first := MakeJobID("Senior Backend Engineer")
	second := MakeJobID("Senior Backend Engineer")

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "job_"))
	assert.Len(t, first, len("job_")+10)
}

func TestMakeJobID_DistinctInputs(t *testing.T) {
	assert.NotEqual(t, MakeJobID("text one"), MakeJobID("text two"))
}

func TestSplitSentences_NewlinesAndPunctuation(t *testing.T) {
	text := "Senior Backend Engineer\nMust have 5+ years. Preferred: Kubernetes! Build APIs?"
	sentences := SplitSentences(text)

	assert.Equal(t, []string{
		"Senior Backend Engineer",
		"Must have 5+ years.",
		"Preferred: Kubernetes!",
		"Build APIs?",
	}, sentences)
}

func TestSplitSentences_NoBlankElements(t *testing.T) {
	text := "First sentence.   \n\n\nSecond sentence.  "
	sentences := SplitSentences(text)

	assert.NotEmpty(t, sentences)
	for _, s := range sentences {
		assert.NotEmpty(t, strings.TrimSpace(s))
	}
}

func TestSplitSentences_KeepsPunctuationAttached(t *testing.T) {
	sentences := SplitSentences("We ship fast. We test everything.")

	assert.Equal(t, []string{"We ship fast.", "We test everything."}, sentences)
}

func TestSplitSentences_DecimalNotSplitWithoutWhitespace(t *testing.T) {
	// A period not followed by whitespace does not terminate a sentence.
	sentences := SplitSentences("Experience with Node.js required.")

	assert.Equal(t, []string{"Experience with Node.js required."}, sentences)
}

func TestWords_NormalizesAndDropsStopWords(t *testing.T) {
	tokens := Words("The quick C# developer, with 5+ years of Node.js!")

	assert.Equal(t, []string{"quick", "c#", "developer", "5+", "years", "node.js"}, tokens)
}

func TestWords_EmptyInput(t *testing.T) {
	assert.Empty(t, Words(""))
	assert.Empty(t, Words("the and of"))
}

func TestKeywordOverlap_Symmetric(t *testing.T) {
	a := "5+ years Node.js experience"
	b := "Built Node.js services for 5+ years"

	assert.Equal(t, KeywordOverlap(a, b), KeywordOverlap(b, a))
	assert.Equal(t, 3, KeywordOverlap(a, b)) // 5+, years, node.js
}

func TestKeywordOverlap_SelfOverlapCountsDistinctTokens(t *testing.T) {
	a := "kubernetes docker terraform"
	assert.Equal(t, len(Words(a)), KeywordOverlap(a, a))
}

func TestKeywordOverlap_ZeroWhenDisjoint(t *testing.T) {
	assert.Equal(t, 0, KeywordOverlap("react dashboards", "kafka streams"))
	assert.Equal(t, 0, KeywordOverlap("", "kafka streams"))
}

func TestTruncateEvidence_ShortTextUnchanged(t *testing.T) {
	assert.Equal(t, "short sentence", TruncateEvidence("  short sentence  "))
}

func TestTruncateEvidence_LongTextTruncatedWithEllipsis(t *testing.T) {
	long := strings.Repeat("a", 400)
	result := TruncateEvidence(long)

	assert.Len(t, result, 160)
	assert.True(t, strings.HasSuffix(result, "..."))
}

func TestTruncateEvidence_CountsCharactersNotBytes(t *testing.T) {
	// 100 characters but 200 bytes; must come back unchanged.
	accented := strings.Repeat("é", 100)
	assert.Equal(t, accented, TruncateEvidence(accented))
}

func TestTruncateEvidence_NeverSplitsMultibyteRunes(t *testing.T) {
	long := strings.Repeat("é", 400)
	result := TruncateEvidence(long)

	assert.True(t, utf8.ValidString(result))
	assert.Equal(t, 160, utf8.RuneCountInString(result))
	assert.True(t, strings.HasSuffix(result, "..."))
}

func TestSplitSentences_CarriageReturnAfterPunctuation(t *testing.T) {
	sentences := SplitSentences("First sentence.\rSecond sentence.")

	assert.Equal(t, []string{"First sentence.", "Second sentence."}, sentences)
}

func TestSplitSentences_NonBreakingSpaceAfterPunctuation(t *testing.T) {
	sentences := SplitSentences("First sentence. Second sentence.")

	assert.Equal(t, []string{"First sentence.", "Second sentence."}, sentences)
}

func TestUnique_PreservesFirstSeenOrder(t *testing.T) {
	result := Unique([]string{"go", "aws", "go", "docker", "aws"})
	assert.Equal(t, []string{"go", "aws", "docker"}, result)
}
