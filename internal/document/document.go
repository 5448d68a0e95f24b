package document

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/doctext/doctext-mcp/internal/chunker"
	"github.com/doctext/doctext-mcp/internal/searcher"
	"github.com/doctext/doctext-mcp/internal/tokenizer"
	"github.com/doctext/doctext-mcp/pkg/types"
)

// Processor coordinates the processing pipeline: extracted text -> chunker
// -> searchable document. It owns the shared tokenizer instance.
type Processor struct {
	tok tokenizer.Tokenizer
}

// Statistics describes one processing pass.
type Statistics struct {
	ChunksCreated int
	TotalWords    int
	FallbackUsed  bool
	Duration      time.Duration
}

// NewProcessor creates a Processor using the given tokenizer for both
// chunking and searching.
func NewProcessor(tok tokenizer.Tokenizer) *Processor {
	return &Processor{tok: tok}
}

// Document is one processed document: its chunk sequence plus the searcher
// built over it. Documents are immutable after Process returns and safe
// for concurrent searches.
type Document struct {
	Name      string
	Chunks    []*types.Chunk
	Method    types.Method
	CreatedAt time.Time

	stats    Statistics
	searcher *searcher.Searcher
}

// Process chunks text with the given configuration and builds the search
// index over the result. Configuration errors (bad chunk size, overlap,
// or method) are returned; empty text is not an error and produces a
// document with no chunks.
func (p *Processor) Process(name, text string, cfg chunker.Config) (*Document, error) {
	c, err := chunker.New(p.tok, cfg)
	if err != nil {
		return nil, fmt.Errorf("configure chunker: %w", err)
	}

	start := time.Now()
	chunks := c.Chunk(text)

	method := cfg.Method
	if method == "" {
		method = types.MethodSentences
	}

	stats := Statistics{
		ChunksCreated: len(chunks),
		Duration:      time.Since(start),
	}
	for _, chunk := range chunks {
		stats.TotalWords += chunk.WordCount
		// Spans on a chunk mean fixed-width windows were used. When the
		// caller asked for a linguistic method, that is the degraded path.
		if chunk.Span != nil && method != types.MethodFixedWidth {
			stats.FallbackUsed = true
		}
	}
	if stats.FallbackUsed {
		method = types.MethodFixedWidth
	}

	return &Document{
		Name:      name,
		Chunks:    chunks,
		Method:    method,
		CreatedAt: time.Now(),
		stats:     stats,
		searcher:  searcher.New(chunks, p.tok),
	}, nil
}

// Search queries the document's chunks. It follows the searcher's
// failure semantics: never an error, possibly an empty result set.
func (d *Document) Search(ctx context.Context, req searcher.Request) []types.SearchResult {
	return d.searcher.Search(ctx, req)
}

// Stats returns the statistics recorded while processing.
func (d *Document) Stats() Statistics {
	return d.stats
}

// Chunk returns the chunk with the given ID. IDs are dense, so this is a
// direct index.
func (d *Document) Chunk(id int) (*types.Chunk, error) {
	if id < 0 || id >= len(d.Chunks) {
		return nil, fmt.Errorf("chunk %d: %w", id, ErrChunkNotFound)
	}
	return d.Chunks[id], nil
}

// FullText reconstructs the document's text by joining chunk texts with
// blank lines, the form used for display and export.
func (d *Document) FullText() string {
	texts := make([]string, len(d.Chunks))
	for i, chunk := range d.Chunks {
		texts[i] = chunk.Text
	}
	return strings.Join(texts, "\n\n")
}
