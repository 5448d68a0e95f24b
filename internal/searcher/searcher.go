package searcher

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/doctext/doctext-mcp/internal/tokenizer"
	"github.com/doctext/doctext-mcp/pkg/types"
)

const (
	// DefaultMaxResults is the number of results returned when the
	// request does not say otherwise.
	DefaultMaxResults = 5

	// DefaultSnippetLength is the snippet window size in characters.
	DefaultSnippetLength = 200

	// cacheSize bounds the per-searcher query result cache.
	cacheSize = 256

	// exactMatchWeight is added per exact substring occurrence of a
	// query term in the chunk text.
	exactMatchWeight = 2.0

	// partialMatchWeight is added per chunk word containing a query term
	// of length > 2. An exact whole-word hit collects both bonuses; that
	// double count is a deliberate part of the ranking heuristic.
	partialMatchWeight = 0.5
)

// Request contains parameters for one search call.
type Request struct {
	Query         string
	MaxResults    int  // defaults to DefaultMaxResults
	SnippetLength int  // defaults to DefaultSnippetLength
	UseCache      bool // serve repeated queries from the result cache
}

// Searcher ranks an immutable chunk sequence against free-text queries.
// The chunk slice is shared, read-only state; a Searcher is safe for
// concurrent use by any number of goroutines.
type Searcher struct {
	chunks  []*types.Chunk
	tok     tokenizer.Tokenizer
	cache   *lru.Cache[[32]byte, []types.SearchResult]
	workers int
}

// New creates a Searcher over a document's chunk sequence. The slice must
// not be mutated after construction.
func New(chunks []*types.Chunk, tok tokenizer.Tokenizer) *Searcher {
	cache, err := lru.New[[32]byte, []types.SearchResult](cacheSize)
	if err != nil {
		// Only reachable with an invalid size constant.
		panic(fmt.Sprintf("failed to create result cache: %v", err))
	}

	return &Searcher{
		chunks:  chunks,
		tok:     tok,
		cache:   cache,
		workers: runtime.NumCPU(),
	}
}

// Search scores every chunk against the query and returns the top results
// ordered by descending score, ties broken by ascending chunk ID. Search
// never fails: an empty query (or one consisting solely of stop words)
// returns no results, and any internal scoring failure is logged and
// degrades to an empty result set.
func (s *Searcher) Search(ctx context.Context, req Request) (results []types.SearchResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("search failed for query %q: %v", req.Query, r)
			results = nil
		}
	}()

	req.applyDefaults()

	terms := s.queryTerms(req.Query)
	if len(terms) == 0 {
		return nil
	}

	key := computeQueryHash(req)
	if req.UseCache {
		if cached, ok := s.cache.Get(key); ok {
			return append([]types.SearchResult(nil), cached...)
		}
	}

	scores, err := s.scoreAll(ctx, terms)
	if err != nil {
		log.Printf("search failed for query %q: %v", req.Query, err)
		return nil
	}

	results = make([]types.SearchResult, 0, len(s.chunks))
	for i, chunk := range s.chunks {
		if scores[i] <= 0 {
			continue
		}
		results = append(results, types.SearchResult{
			Chunk:   chunk,
			Score:   scores[i],
			Matches: findMatches(chunk.Text, req.Query),
			Snippet: makeSnippet(chunk.Text, req.Query, req.SnippetLength),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Chunk.ID < results[j].Chunk.ID
	})

	if len(results) > req.MaxResults {
		results = results[:req.MaxResults]
	}
	for i := range results {
		results[i].Rank = i + 1
	}

	if req.UseCache && len(results) > 0 {
		s.cache.Add(key, append([]types.SearchResult(nil), results...))
	}

	return results
}

// scoreAll fans scoring out across a bounded worker pool. Chunk scores are
// independent of each other, so completion order does not matter; results
// land at the chunk's own index.
func (s *Searcher) scoreAll(ctx context.Context, terms []string) ([]float64, error) {
	scores := make([]float64, len(s.chunks))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, chunk := range s.chunks {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("scoring chunk %d: %v", chunk.ID, r)
				}
			}()
			scores[i] = s.scoreChunk(chunk, terms)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}

// scoreChunk computes the relevance of one chunk: 2.0 per exact substring
// occurrence of each term, plus 0.5 per chunk word containing a term
// longer than two characters, normalized by the chunk's word count. A
// whole-word occurrence therefore counts under both bonuses; tune both
// weights together when adjusting ranking.
func (s *Searcher) scoreChunk(chunk *types.Chunk, terms []string) float64 {
	textLower := strings.ToLower(chunk.Text)
	textWords := s.tok.Words(textLower)
	if len(textWords) == 0 {
		return 0
	}

	score := 0.0
	for _, term := range terms {
		if strings.Contains(textLower, term) {
			score += float64(strings.Count(textLower, term)) * exactMatchWeight
		}

		if len(term) > 2 {
			for _, word := range textWords {
				if strings.Contains(word, term) {
					score += partialMatchWeight
				}
			}
		}
	}

	return score / float64(len(textWords))
}

// queryTerms tokenizes the query, lowercases it, and removes stop words.
func (s *Searcher) queryTerms(query string) []string {
	var terms []string
	for _, word := range s.tok.Words(query) {
		word = strings.ToLower(word)
		if !s.tok.IsStopWord(word) {
			terms = append(terms, word)
		}
	}
	return terms
}

// findMatches locates every case-insensitive occurrence of the literal
// query string in text. The scan advances one character past each hit, so
// adjacent and overlapping occurrences are all reported.
func findMatches(text, query string) []types.Match {
	queryLower := strings.ToLower(query)
	textLower := strings.ToLower(text)

	var matches []types.Match
	start := 0
	for {
		pos := strings.Index(textLower[start:], queryLower)
		if pos < 0 {
			break
		}
		pos += start
		matches = append(matches, types.Match{Start: pos, End: pos + len(query)})
		start = pos + 1
	}

	return matches
}

// makeSnippet excerpts up to maxLength characters of text around the
// first case-insensitive occurrence of the literal query, with "..."
// affixes where the excerpt is cut. Without a literal match, the excerpt
// is the head of the text.
func makeSnippet(text, query string, maxLength int) string {
	queryLower := strings.ToLower(query)
	textLower := strings.ToLower(text)

	pos := strings.Index(textLower, queryLower)
	if pos < 0 {
		if len(text) > maxLength {
			return text[:maxLength] + "..."
		}
		return text
	}

	start := pos - maxLength/2
	if start < 0 {
		start = 0
	}
	end := start + maxLength
	if end > len(text) {
		end = len(text)
	}

	snippet := text[start:end]
	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(text) {
		snippet = snippet + "..."
	}

	return snippet
}

// applyDefaults fills in zero-valued request parameters.
func (r *Request) applyDefaults() {
	if r.MaxResults <= 0 {
		r.MaxResults = DefaultMaxResults
	}
	if r.SnippetLength <= 0 {
		r.SnippetLength = DefaultSnippetLength
	}
}

// computeQueryHash computes the cache key for a search request.
func computeQueryHash(req Request) [32]byte {
	var data strings.Builder
	data.WriteString(req.Query)
	data.WriteString("|")
	data.WriteString(strconv.Itoa(req.MaxResults))
	data.WriteString("|")
	data.WriteString(strconv.Itoa(req.SnippetLength))
	return sha256.Sum256([]byte(data.String()))
}
