package retrieval

import (
	"fmt"
	"sort"
)

// Citation is the per-document grouping returned for display; it never
// feeds back into ranking.
type Citation struct {
	DocumentID string          `json:"document_id"`
	FileName   string          `json:"filename"`
	Chunks     []CitationChunk `json:"chunks"`
}

// CitationChunk previews one selected chunk. Index is 1-based for
// presentation.
type CitationChunk struct {
	Index   int    `json:"index"`
	Preview string `json:"preview"`
}

// Selection is the outcome of one top-k retrieval pass.
type Selection struct {
	// Chunks in prompt order: score descending for document sets,
	// re-sorted to ascending chunk index when exactly one document is
	// in scope (coherent reading order for a single source).
	Chunks []ScoredChunk

	// Citations groups the selected chunks by source document in the
	// order each document first appears in the ranked selection,
	// chunks ascending by index, previews capped at PreviewLimit runes.
	Citations []Citation
}

// SectionLabel tags a chunk inside the prompt context.
func (c ScoredChunk) SectionLabel() string {
	return fmt.Sprintf("[Section %d from %q]", c.Index+1, c.FileName)
}

// TopK chunks and scores every document against the question and keeps
// the best opts.TopK chunks across all of them. Ties keep their
// insertion order (per document, then per chunk index), so identical
// input always yields an identical selection.
//
// Zero usable question tokens degrade to an all-zero scoring; the
// selection is still produced in stable order rather than failing.
func TopK(docs []Document, question string, opts Options) (Selection, error) {
	opts = opts.withDefaults(len(docs) > 1)

	chunker, err := NewChunker(opts.ChunkSize, opts.Overlap)
	if err != nil {
		return Selection{}, err
	}

	tokens := QuestionTokens(question)

	var scored []ScoredChunk
	for _, doc := range docs {
		for _, chunk := range chunker.Split(doc) {
			scored = append(scored, ScoredChunk{
				Chunk: chunk,
				Score: scoreTokens(chunk.Text, tokens),
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > opts.TopK {
		scored = scored[:opts.TopK]
	}

	citations := groupCitations(scored)

	if len(docs) == 1 {
		// single source: restore reading order for the prompt
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].Index < scored[j].Index
		})
	}

	return Selection{Chunks: scored, Citations: citations}, nil
}

func groupCitations(ranked []ScoredChunk) []Citation {
	var (
		order  []string
		groups = make(map[string][]CitationChunk)
		names  = make(map[string]string)
	)

	for _, sc := range ranked {
		if _, ok := groups[sc.DocumentID]; !ok {
			order = append(order, sc.DocumentID)
			names[sc.DocumentID] = sc.FileName
		}
		groups[sc.DocumentID] = append(groups[sc.DocumentID], CitationChunk{
			Index:   sc.Index + 1,
			Preview: preview(sc.Text),
		})
	}

	citations := make([]Citation, 0, len(order))
	for _, id := range order {
		chunks := groups[id]
		sort.SliceStable(chunks, func(i, j int) bool {
			return chunks[i].Index < chunks[j].Index
		})
		citations = append(citations, Citation{
			DocumentID: id,
			FileName:   names[id],
			Chunks:     chunks,
		})
	}
	return citations
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= PreviewLimit {
		return text
	}
	return string(runes[:PreviewLimit]) + "..."
}
