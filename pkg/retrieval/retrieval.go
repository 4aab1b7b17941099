// Package retrieval selects the document passages handed to the chat
// model. Documents are split into overlapping word windows, every window
// is scored against the question by lexical overlap and the best windows
// across all documents are kept.
//
// Everything here is pure computation over in-memory strings. The same
// inputs always produce the same outputs, so it is safe to call
// concurrently for independent requests.
package retrieval

import (
	"strings"
	"unicode/utf8"
)

const (
	DefaultChunkSize = 500 // words per chunk
	DefaultOverlap   = 100 // words shared between neighbour chunks

	DefaultTopKSingle = 5 // top-k when querying one document
	DefaultTopKMulti  = 8 // top-k when querying a document set

	PreviewLimit = 200 // rune length of citation previews
)

// Document is the retrieval view of a stored document.
type Document struct {
	ID       string
	FileName string
	Content  string
}

// Chunk is one word window of a document. Index is the zero based
// position among the chunks generated from the same document.
type Chunk struct {
	DocumentID string
	FileName   string
	Index      int
	Text       string
}

// ScoredChunk binds a chunk to its relevance for one question.
type ScoredChunk struct {
	Chunk
	Score float64
}

// Options tunes one retrieval call. Zero values fall back to the
// defaults above; options are passed per call so concurrent requests
// with different tuning never interfere.
//
// Overlap is only defaulted together with ChunkSize: a caller setting
// an explicit ChunkSize keeps the Overlap it passed, including 0,
// which is a legal window step.
type Options struct {
	ChunkSize int
	Overlap   int
	TopK      int
}

func (o Options) withDefaults(multiDoc bool) Options {
	if o.ChunkSize <= 0 {
		o.ChunkSize = DefaultChunkSize
		if o.Overlap <= 0 {
			o.Overlap = DefaultOverlap
		}
	}
	if o.Overlap < 0 {
		o.Overlap = 0
	}
	if o.TopK <= 0 {
		if multiDoc {
			o.TopK = DefaultTopKMulti
		} else {
			o.TopK = DefaultTopKSingle
		}
	}
	return o
}

const MinQuestionLength = 3

// ValidQuestion reports whether q holds enough substance to be
// answered: at least MinQuestionLength non-whitespace characters.
func ValidQuestion(q string) bool {
	count := 0
	for _, field := range strings.Fields(q) {
		count += utf8.RuneCountInString(field)
		if count >= MinQuestionLength {
			return true
		}
	}
	return count >= MinQuestionLength
}
