package retrieval

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionTokens(t *testing.T) {
	// stop words and short tokens are dropped, punctuation trimmed
	assert.Equal(t, []string{"cat", "like"}, QuestionTokens("What does the cat like?"))
	assert.Equal(t, []string{"kubernetes", "scheduler"}, QuestionTokens("The Kubernetes scheduler"))

	// nothing survives
	assert.Nil(t, QuestionTokens("is it on?"))
	assert.Nil(t, QuestionTokens("what is this about"))
	assert.Nil(t, QuestionTokens(""))
}

func TestScoreReferenceScenario(t *testing.T) {
	chunk := "The cat sat on the mat. The cat likes fish."
	// "cat" matches twice, "like" matches inside "likes"; 10 words
	score := Score(chunk, "What does the cat like?")
	assert.InDelta(t, 3.0/math.Sqrt(10), score, 1e-9)
}

func TestScoreZeroCases(t *testing.T) {
	assert.Zero(t, Score("some chunk text", "what is this"))
	assert.Zero(t, Score("some chunk text", "on it is"))
	assert.Zero(t, Score("", "kubernetes scheduler"))
	assert.Zero(t, Score("totally unrelated words", "kubernetes"))
}

func TestScoreNonNegative(t *testing.T) {
	for _, q := range []string{"", "a", "the and for", "cat", "许多 文字"} {
		assert.GreaterOrEqual(t, Score("any chunk body here", q), 0.0)
	}
}

func TestScoreLengthNormalization(t *testing.T) {
	chunk := "alpha beta gamma alpha"
	question := "alpha value"
	single := Score(chunk, question)

	// doubling the text doubles occurrences but scales the score by
	// sqrt(2), not 2
	doubled := Score(chunk+" "+chunk, question)
	assert.InDelta(t, single*math.Sqrt2, doubled, 1e-9)
}

func TestScoreSubstringMatching(t *testing.T) {
	// tokens match inside longer words
	assert.Greater(t, Score("the catalog of cats", "cat"), 0.0)
	assert.InDelta(t, 2.0/math.Sqrt(4), Score("the catalog of cats", "cat"), 1e-9)
}

func TestScoreDeterministic(t *testing.T) {
	chunk := strings.Repeat("alpha beta gamma ", 100)
	q := "alpha gamma"
	assert.Equal(t, Score(chunk, q), Score(chunk, q))
}
