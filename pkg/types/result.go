package types

// Match marks one case-insensitive occurrence of the literal query string
// within a chunk's text, as [Start, End) character offsets.
type Match struct {
	Start int
	End   int
}

// SearchResult represents a single ranked chunk for one query. Results are
// produced fresh per search call and discarded once rendered; only the
// Chunk pointer is shared with the long-lived chunk sequence.
type SearchResult struct {
	// Chunk is a read-only reference to the scored chunk.
	Chunk *Chunk

	// Rank is the 1-based position in the result set.
	Rank int

	// Score is the chunk's relevance. Only relative ordering is
	// meaningful; the absolute value is a length-normalized heuristic,
	// not a probability.
	Score float64

	// Matches are the literal query occurrences inside Chunk.Text, in
	// left-to-right order.
	Matches []Match

	// Snippet is a bounded excerpt of Chunk.Text centered on the first
	// match, with "..." affixes where the excerpt is cut.
	Snippet string
}

// Validate checks if the search result is valid.
func (sr *SearchResult) Validate() error {
	if sr.Chunk == nil {
		return ErrMissingChunk
	}

	if sr.Rank < 1 {
		return ErrInvalidRank
	}

	if sr.Score < 0 {
		return ErrNegativeScore
	}

	for _, m := range sr.Matches {
		if m.Start < 0 || m.End < m.Start || m.End > len(sr.Chunk.Text) {
			return ErrInvalidMatchOffsets
		}
	}

	return nil
}
