package retrieval

import (
	"fmt"
	"strings"
)

// Chunker splits text into overlapping windows of whitespace delimited
// words. Window starts advance by size-overlap words, so consecutive
// chunks share overlap words of context.
type Chunker struct {
	size    int
	overlap int
}

// NewChunker validates the window parameters up front: a step of
// size-overlap <= 0 would never advance, so overlap must stay below
// size.
func NewChunker(size, overlap int) (*Chunker, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("chunk overlap must not be negative, got %d", overlap)
	}
	if overlap >= size {
		return nil, fmt.Errorf("chunk overlap %d must be smaller than chunk size %d", overlap, size)
	}
	return &Chunker{size: size, overlap: overlap}, nil
}

// Split cuts doc.Content into chunks. Indices are assigned 0,1,2,... in
// emission order. Whitespace-only content yields no chunks; content
// shorter than the window yields exactly one chunk holding everything.
func (c *Chunker) Split(doc Document) []Chunk {
	words := strings.Fields(doc.Content)
	if len(words) == 0 {
		return nil
	}

	step := c.size - c.overlap
	var chunks []Chunk
	for start := 0; ; start += step {
		end := start + c.size
		if end > len(words) {
			end = len(words)
		}

		text := strings.TrimSpace(strings.Join(words[start:end], " "))
		if text != "" {
			chunks = append(chunks, Chunk{
				DocumentID: doc.ID,
				FileName:   doc.FileName,
				Index:      len(chunks),
				Text:       text,
			})
		}

		// the chunk that reached the end is the last one; the tail is
		// never emitted twice
		if end == len(words) {
			break
		}
	}

	return chunks
}
