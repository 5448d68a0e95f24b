// Package types provides shared type definitions for the DocText MCP server.
//
// This package defines the domain types passed between the chunker, the
// searcher, and the tool surface: chunks, chunking methods, search results,
// and the sentinel errors used for validation.
//
// # Core Types
//
// Chunk represents a bounded excerpt of extracted document text, the unit
// of retrieval:
//
//	chunk := &types.Chunk{
//	    ID:        0,
//	    Text:      "The quick brown fox jumps.",
//	    Sentences: []string{"The quick brown fox jumps."},
//	    WordCount: 5,
//	}
//
// A chunk carries exactly one kind of provenance metadata. Sentence-mode
// chunks keep their sentence list, paragraph-mode chunks keep their
// paragraph list, and fixed-width fallback chunks keep a Span with
// character offsets into the source text instead. Chunk.Method derives the
// producing mode from that metadata.
//
// SearchResult pairs a chunk with per-query relevance data:
//
//	result := types.SearchResult{
//	    Chunk:   chunk,
//	    Rank:    1,
//	    Score:   0.4,
//	    Matches: []types.Match{{Start: 16, End: 19}},
//	    Snippet: "The quick brown fox jumps.",
//	}
//
// Chunks are immutable once emitted and may be shared by any number of
// concurrent searches; SearchResults are transient and owned by the caller
// of a single search.
//
// # Validation
//
// Chunk, Method, and SearchResult implement Validate methods returning the
// sentinel errors declared in errors.go:
//
//	if err := chunk.Validate(); err != nil {
//	    log.Printf("bad chunk: %v", err)
//	}
package types
