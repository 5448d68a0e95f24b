package types

import "errors"

// Domain errors for type and configuration validation
var (
	// Chunking configuration errors
	ErrInvalidChunkSize = errors.New("chunk size must be positive")
	ErrOverlapTooLarge  = errors.New("overlap must be non-negative and smaller than chunk size")
	ErrInvalidMethod    = errors.New("invalid chunking method")

	// Chunk errors
	ErrInvalidChunkID = errors.New("chunk ID cannot be negative")
	ErrEmptyChunkText = errors.New("chunk text cannot be empty")

	// Search result errors
	ErrMissingChunk        = errors.New("search result must reference a chunk")
	ErrInvalidRank         = errors.New("rank must be >= 1")
	ErrNegativeScore       = errors.New("relevance score cannot be negative")
	ErrInvalidMatchOffsets = errors.New("match offsets out of range")
)
