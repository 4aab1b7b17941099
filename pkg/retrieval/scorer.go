package retrieval

import (
	"math"
	"strings"
	"unicode"
)

// stopWords are question tokens that carry no retrieval signal.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "had": {}, "her": {}, "was": {},
	"one": {}, "our": {}, "out": {}, "has": {}, "how": {}, "who": {},
	"what": {}, "when": {}, "where": {}, "which": {}, "why": {},
	"this": {}, "that": {}, "with": {}, "from": {}, "have": {},
	"will": {}, "does": {}, "about": {},
}

// QuestionTokens lowercases and tokenizes a question, trims edge
// punctuation and drops tokens of length <= 2 and stop words. An empty
// result means the question has no usable retrieval terms.
func QuestionTokens(question string) []string {
	var tokens []string
	for _, tok := range strings.Fields(strings.ToLower(question)) {
		tok = strings.TrimFunc(tok, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if len(tok) <= 2 {
			continue
		}
		if _, ok := stopWords[tok]; ok {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Score rates how relevant a chunk is to a question. Every surviving
// question token is counted as a case-insensitive substring of the
// chunk (a token may match inside a longer word, so "like" matches
// "likes"); the counts are summed and divided by the square root of the
// chunk's word count so long chunks are not favored purely by volume.
//
// The result is non-negative and unbounded above. Zero means no overlap
// or no usable question terms.
func Score(chunkText, question string) float64 {
	return scoreTokens(chunkText, QuestionTokens(question))
}

func scoreTokens(chunkText string, tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}

	words := len(strings.Fields(chunkText))
	if words == 0 {
		return 0
	}

	lowered := strings.ToLower(chunkText)
	total := 0
	for _, tok := range tokens {
		total += strings.Count(lowered, tok)
	}

	return float64(total) / math.Sqrt(float64(words))
}
