package retrieval

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopKBound(t *testing.T) {
	docs := []Document{
		{ID: "d1", FileName: "a.txt", Content: wordsText(30)},
		{ID: "d2", FileName: "b.txt", Content: wordsText(30)},
	}

	sel, err := TopK(docs, "anything relevant", Options{ChunkSize: 10, Overlap: 2, TopK: 50})
	require.NoError(t, err)
	// 2 docs x 4 chunks each, never more than available
	assert.LessOrEqual(t, len(sel.Chunks), 8)

	sel, err = TopK(docs, "anything relevant", Options{ChunkSize: 10, Overlap: 2, TopK: 3})
	require.NoError(t, err)
	assert.Len(t, sel.Chunks, 3)
}

func TestTopKRanksAcrossDocuments(t *testing.T) {
	docs := []Document{
		{ID: "low", FileName: "low.txt", Content: "nothing relevant lives here at all"},
		{ID: "high", FileName: "high.txt", Content: "The cat sat on the mat. The cat likes fish."},
	}

	sel, err := TopK(docs, "What does the cat like?", Options{TopK: 2})
	require.NoError(t, err)
	require.Len(t, sel.Chunks, 2)

	// the matching document ranks strictly above the zero scoring one
	assert.Equal(t, "high", sel.Chunks[0].DocumentID)
	assert.Greater(t, sel.Chunks[0].Score, sel.Chunks[1].Score)
	assert.Zero(t, sel.Chunks[1].Score)
}

func TestTopKSingleDocumentReadingOrder(t *testing.T) {
	// craft words so later chunks score higher than earlier ones
	var b strings.Builder
	for i := 0; i < 30; i++ {
		b.WriteString("filler ")
	}
	b.WriteString("needle needle needle") // tail chunk holds the matches

	sel, err := TopK([]Document{{ID: "d1", FileName: "one.txt", Content: b.String()}}, "find the needle", Options{ChunkSize: 10, Overlap: 0, TopK: 3})
	require.NoError(t, err)
	require.NotEmpty(t, sel.Chunks)

	// single document: prompt order is ascending chunk index even though
	// the best score sits at the tail
	for i := 1; i < len(sel.Chunks); i++ {
		assert.Greater(t, sel.Chunks[i].Index, sel.Chunks[i-1].Index)
	}
}

func TestTopKMultiDocumentKeepsScoreOrder(t *testing.T) {
	docs := []Document{
		{ID: "d1", FileName: "a.txt", Content: "needle " + wordsText(20)},
		{ID: "d2", FileName: "b.txt", Content: "needle needle " + wordsText(5)},
	}

	sel, err := TopK(docs, "find the needle", Options{TopK: 4})
	require.NoError(t, err)
	require.True(t, len(sel.Chunks) >= 2)

	for i := 1; i < len(sel.Chunks); i++ {
		assert.GreaterOrEqual(t, sel.Chunks[i-1].Score, sel.Chunks[i].Score)
	}
	assert.Equal(t, "d2", sel.Chunks[0].DocumentID)
}

func TestTopKStableOnZeroScores(t *testing.T) {
	docs := []Document{
		{ID: "d1", FileName: "a.txt", Content: wordsText(5)},
		{ID: "d2", FileName: "b.txt", Content: wordsText(5)},
	}

	// no usable question tokens: everything scores zero but the
	// selection is still produced in insertion order
	first, err := TopK(docs, "is it so", Options{TopK: 2})
	require.NoError(t, err)
	second, err := TopK(docs, "is it so", Options{TopK: 2})
	require.NoError(t, err)

	require.Len(t, first.Chunks, 2)
	assert.Equal(t, first, second)
	assert.Equal(t, "d1", first.Chunks[0].DocumentID)
	assert.Equal(t, "d2", first.Chunks[1].DocumentID)
}

func TestTopKCitations(t *testing.T) {
	long := strings.Repeat("x", 300)
	docs := []Document{
		{ID: "d1", FileName: "a.txt", Content: "needle one " + long},
		{ID: "d2", FileName: "b.txt", Content: "needle needle two"},
	}

	sel, err := TopK(docs, "where is the needle", Options{TopK: 5})
	require.NoError(t, err)

	require.Len(t, sel.Citations, 2)
	// grouping follows the order documents first appear in the ranking
	assert.Equal(t, "b.txt", sel.Citations[0].FileName)
	assert.Equal(t, "a.txt", sel.Citations[1].FileName)

	// 1-based indices, previews capped with an ellipsis
	require.Len(t, sel.Citations[1].Chunks, 1)
	cc := sel.Citations[1].Chunks[0]
	assert.Equal(t, 1, cc.Index)
	assert.True(t, strings.HasSuffix(cc.Preview, "..."))
	assert.Len(t, []rune(cc.Preview), PreviewLimit+3)
}

func TestOptionsDefaulting(t *testing.T) {
	// none set: everything falls back
	o := Options{}.withDefaults(false)
	assert.Equal(t, DefaultChunkSize, o.ChunkSize)
	assert.Equal(t, DefaultOverlap, o.Overlap)
	assert.Equal(t, DefaultTopKSingle, o.TopK)

	assert.Equal(t, DefaultTopKMulti, Options{}.withDefaults(true).TopK)

	// explicit chunk size keeps an explicit zero overlap
	o = Options{ChunkSize: 10}.withDefaults(false)
	assert.Equal(t, 10, o.ChunkSize)
	assert.Zero(t, o.Overlap)

	o = Options{ChunkSize: 10, Overlap: 2}.withDefaults(false)
	assert.Equal(t, 2, o.Overlap)

	o = Options{ChunkSize: 10, Overlap: -1}.withDefaults(false)
	assert.Zero(t, o.Overlap)
}

func TestTopKSmallWindowsWithoutOverlap(t *testing.T) {
	docs := []Document{
		{ID: "d1", FileName: "a.txt", Content: wordsText(30) + " needle"},
	}

	sel, err := TopK(docs, "needle hunting", Options{ChunkSize: 10, Overlap: 0, TopK: 1})
	require.NoError(t, err)
	require.Len(t, sel.Chunks, 1)
	assert.Contains(t, sel.Chunks[0].Text, "needle")
}

func TestTopKInvalidWindow(t *testing.T) {
	_, err := TopK([]Document{{ID: "d1", Content: "one two"}}, "question words", Options{ChunkSize: 10, Overlap: 10})
	assert.Error(t, err)
}

func TestSectionLabel(t *testing.T) {
	sc := ScoredChunk{Chunk: Chunk{Index: 0, FileName: "report.pdf"}}
	assert.Equal(t, fmt.Sprintf("[Section %d from %q]", 1, "report.pdf"), sc.SectionLabel())
}
