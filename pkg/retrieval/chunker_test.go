package retrieval

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wordsText(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(words, " ")
}

func TestNewChunkerRejectsBadWindows(t *testing.T) {
	_, err := NewChunker(0, 0)
	assert.Error(t, err)

	_, err = NewChunker(100, -1)
	assert.Error(t, err)

	// overlap >= size would never advance
	_, err = NewChunker(100, 100)
	assert.Error(t, err)
	_, err = NewChunker(100, 150)
	assert.Error(t, err)

	_, err = NewChunker(100, 99)
	assert.NoError(t, err)
}

func TestSplitChunkCount(t *testing.T) {
	chunker, err := NewChunker(DefaultChunkSize, DefaultOverlap)
	require.NoError(t, err)

	step := DefaultChunkSize - DefaultOverlap
	for _, w := range []int{1, 9, 499, 500, 501, 900, 901, 1300, 2000} {
		doc := Document{ID: "d1", FileName: "a.txt", Content: wordsText(w)}
		chunks := chunker.Split(doc)

		expect := 1
		if w > DefaultChunkSize {
			expect = (w - DefaultChunkSize + step - 1) / step
			expect++
		}
		assert.Len(t, chunks, expect, "W=%d", w)
	}
}

func TestSplitEmptyInput(t *testing.T) {
	chunker, err := NewChunker(DefaultChunkSize, DefaultOverlap)
	require.NoError(t, err)

	assert.Empty(t, chunker.Split(Document{ID: "d1", Content: ""}))
	assert.Empty(t, chunker.Split(Document{ID: "d1", Content: "  \n\t  "}))
}

func TestSplitSingleChunkHoldsEverything(t *testing.T) {
	chunker, err := NewChunker(DefaultChunkSize, DefaultOverlap)
	require.NoError(t, err)

	content := "The cat sat on the mat. The cat likes fish."
	chunks := chunker.Split(Document{ID: "d1", FileName: "cat.txt", Content: content})
	require.Len(t, chunks, 1)
	assert.Equal(t, 0, chunks[0].Index)
	assert.Equal(t, strings.Join(strings.Fields(content), " "), chunks[0].Text)
	assert.Equal(t, "d1", chunks[0].DocumentID)
	assert.Equal(t, "cat.txt", chunks[0].FileName)
}

func TestSplitIndexMonotonicAndOverlap(t *testing.T) {
	chunker, err := NewChunker(10, 4)
	require.NoError(t, err)

	chunks := chunker.Split(Document{ID: "d1", Content: wordsText(25)})
	// starts advance by 6: 0, 6, 12, 18 (18+10 >= 25 → last)
	require.Len(t, chunks, 4)

	for i, c := range chunks {
		assert.Equal(t, i, c.Index)
	}

	// consecutive chunks share the overlap words
	first := strings.Fields(chunks[0].Text)
	second := strings.Fields(chunks[1].Text)
	assert.Equal(t, first[6:], second[:4])

	// final chunk may be shorter than the window
	assert.Equal(t, strings.Fields(wordsText(25))[18:], strings.Fields(chunks[3].Text))
}

func TestSplitDeterministic(t *testing.T) {
	chunker, err := NewChunker(50, 10)
	require.NoError(t, err)

	doc := Document{ID: "d1", Content: wordsText(333)}
	assert.Equal(t, chunker.Split(doc), chunker.Split(doc))
}
