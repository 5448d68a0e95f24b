// Package searcher ranks document chunks against free-text queries.
//
// A Searcher is constructed once per processed document over its immutable
// chunk sequence and answers any number of concurrent queries:
//
//	s := searcher.New(chunks, tokenizer.NewSegmenter())
//
//	results := s.Search(ctx, searcher.Request{
//	    Query:      "brown fox",
//	    MaxResults: 5,
//	})
//
//	for _, r := range results {
//	    fmt.Printf("[%d] chunk %d (%.3f): %s\n", r.Rank, r.Chunk.ID, r.Score, r.Snippet)
//	}
//
// # Scoring
//
// The query is word-tokenized, lowercased, and stripped of stop words.
// Each chunk's score sums, per remaining term:
//
//   - 2.0 x the number of exact substring occurrences of the term in the
//     lowercased chunk text, and
//   - 0.5 per chunk word containing the term, for terms longer than two
//     characters.
//
// The sum is normalized by the chunk's word count. A whole-word occurrence
// collects both bonuses; the double count is an inherited ranking
// heuristic, kept because it determines result order, not a calibrated
// relevance model. Only chunks with a positive score survive.
//
// Results are ordered by descending score with ascending chunk ID as the
// tie-break, so rankings are deterministic.
//
// # Matches and snippets
//
// For each surviving chunk, Matches reports every case-insensitive
// occurrence of the literal query string (the scan steps one character
// past each hit, so overlapping occurrences all appear), and Snippet
// excerpts a window around the first such occurrence.
//
// # Failure semantics
//
// Search never returns an error. Queries that are empty after stop-word
// removal yield an empty result set, and so does any internal failure,
// which is logged to stderr. Callers cannot distinguish "no matches" from
// a swallowed failure by the return value alone.
//
// # Concurrency and caching
//
// Per-chunk scoring is independent, so it fans out across a worker pool
// sized to the number of CPUs; ordering is restored after the fan-in.
// With Request.UseCache set, results are additionally served from a small
// LRU keyed by query and request parameters. Chunks are immutable, so
// cached entries never go stale.
package searcher
