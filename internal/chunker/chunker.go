package chunker

import (
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/doctext/doctext-mcp/internal/tokenizer"
	"github.com/doctext/doctext-mcp/pkg/types"
)

const (
	// DefaultChunkSize is the default maximum chunk length in characters.
	DefaultChunkSize = 1000

	// DefaultOverlap is the default number of characters shared between
	// adjacent chunks.
	DefaultOverlap = 200
)

// Config controls how a Chunker segments text.
type Config struct {
	ChunkSize int          // Maximum characters per chunk (must be > 0)
	Overlap   int          // Characters carried between adjacent chunks (0 <= Overlap < ChunkSize)
	Method    types.Method // Unit boundary; defaults to sentences
}

// DefaultConfig returns the standard chunking configuration.
func DefaultConfig() Config {
	return Config{
		ChunkSize: DefaultChunkSize,
		Overlap:   DefaultOverlap,
		Method:    types.MethodSentences,
	}
}

// Chunker splits extracted document text into bounded, overlapping chunks.
// A Chunker is immutable after construction and safe for concurrent use.
type Chunker struct {
	chunkSize int
	overlap   int
	method    types.Method
	tok       tokenizer.Tokenizer
}

// New creates a Chunker. The configuration is validated eagerly: a
// non-positive chunk size or an overlap outside [0, ChunkSize) is rejected
// here rather than allowed to stall the fixed-width window later.
func New(tok tokenizer.Tokenizer, cfg Config) (*Chunker, error) {
	if cfg.ChunkSize <= 0 {
		return nil, fmt.Errorf("chunk size %d: %w", cfg.ChunkSize, types.ErrInvalidChunkSize)
	}

	if cfg.Overlap < 0 || cfg.Overlap >= cfg.ChunkSize {
		return nil, fmt.Errorf("overlap %d with chunk size %d: %w", cfg.Overlap, cfg.ChunkSize, types.ErrOverlapTooLarge)
	}

	method := cfg.Method
	if method == "" {
		method = types.MethodSentences
	}
	if err := method.Validate(); err != nil {
		return nil, err
	}

	return &Chunker{
		chunkSize: cfg.ChunkSize,
		overlap:   cfg.Overlap,
		method:    method,
		tok:       tok,
	}, nil
}

// Chunk splits text into an ordered sequence of chunks using the
// configured method. Empty or whitespace-only text yields an empty
// sequence. Chunk never fails: a segmentation error degrades to
// fixed-width chunking, observable through the chunk shapes (Span set,
// unit lists absent).
func (c *Chunker) Chunk(text string) []*types.Chunk {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	switch c.method {
	case types.MethodParagraphs:
		return c.chunkByParagraphs(text)
	case types.MethodFixedWidth:
		return c.ChunkFixedWidth(text)
	default:
		return c.chunkBySentences(text)
	}
}

// chunkBySentences greedily accumulates whole sentences per chunk, seeding
// each new chunk with the trailing sentences of the previous one.
func (c *Chunker) chunkBySentences(text string) []*types.Chunk {
	sents, err := c.tok.Sentences(text)
	if err != nil {
		log.Printf("sentence segmentation failed, using fixed-width chunking: %v", err)
		return c.ChunkFixedWidth(text)
	}

	var chunks []*types.Chunk
	var buffer string
	var bufSentences []string
	id := 0

	for _, sentence := range sents {
		if len(buffer)+len(sentence) > c.chunkSize && buffer != "" {
			chunks = append(chunks, c.emitSentenceChunk(id, buffer, bufSentences))

			if c.overlap > 0 && len(bufSentences) > 0 {
				seed, first := c.overlapTail(bufSentences)
				buffer = seed
				// Index-based carryover: the same sentence values
				// transfer even when the text repeats.
				bufSentences = append([]string(nil), bufSentences[first:]...)
			} else {
				buffer = ""
				bufSentences = nil
			}

			id++
		}

		if buffer != "" {
			buffer += " " + sentence
		} else {
			buffer = sentence
		}
		bufSentences = append(bufSentences, sentence)
	}

	if strings.TrimSpace(buffer) != "" {
		chunks = append(chunks, c.emitSentenceChunk(id, buffer, bufSentences))
	}

	return chunks
}

// chunkByParagraphs accumulates blank-line-delimited paragraphs per chunk.
// Unlike sentences, the overlap seed may split a paragraph: the tail of
// the last paragraph, truncated to the overlap length, starts the next
// chunk.
func (c *Chunker) chunkByParagraphs(text string) []*types.Chunk {
	paras, err := paragraphs(text)
	if err != nil {
		log.Printf("paragraph segmentation failed, using fixed-width chunking: %v", err)
		return c.ChunkFixedWidth(text)
	}

	var chunks []*types.Chunk
	var buffer string
	var bufParas []string
	id := 0

	for _, paragraph := range paras {
		if len(buffer)+len(paragraph) > c.chunkSize && buffer != "" {
			chunks = append(chunks, c.emitParagraphChunk(id, buffer, bufParas))

			if c.overlap > 0 && len(bufParas) > 0 {
				seed := bufParas[len(bufParas)-1]
				if len(seed) > c.overlap {
					seed = seed[:c.overlap]
				}
				buffer = seed
				bufParas = []string{seed}
			} else {
				buffer = ""
				bufParas = nil
			}

			id++
		}

		if buffer != "" {
			buffer += "\n\n" + paragraph
		} else {
			buffer = paragraph
		}
		bufParas = append(bufParas, paragraph)
	}

	if strings.TrimSpace(buffer) != "" {
		chunks = append(chunks, c.emitParagraphChunk(id, buffer, bufParas))
	}

	return chunks
}

// ChunkFixedWidth chunks text into fixed-size character windows, advancing
// by ChunkSize-Overlap per step. It is the fallback for segmentation
// failures and is also directly usable via MethodFixedWidth. Each chunk
// records its source span; whitespace-only windows are skipped without
// consuming an ID.
func (c *Chunker) ChunkFixedWidth(text string) []*types.Chunk {
	step := c.chunkSize - c.overlap

	var chunks []*types.Chunk
	id := 0

	for start := 0; start < len(text); start += step {
		end := start + c.chunkSize
		if end > len(text) {
			end = len(text)
		}

		trimmed := strings.TrimSpace(text[start:end])
		if trimmed == "" {
			continue
		}

		chunks = append(chunks, &types.Chunk{
			ID:        id,
			Text:      trimmed,
			WordCount: len(c.tok.Words(trimmed)),
			Span:      &types.Span{Start: start, End: end},
		})
		id++
	}

	return chunks
}

// overlapTail walks the chunk's sentences from the end, accumulating whole
// sentences while they fit within the overlap budget. It returns the seed
// text for the next chunk and the index of the first carried sentence
// (len(sents) when nothing fits).
func (c *Chunker) overlapTail(sents []string) (string, int) {
	tail := ""
	first := len(sents)

	for i := len(sents) - 1; i >= 0; i-- {
		if len(tail)+len(sents[i]) > c.overlap {
			break
		}
		if tail != "" {
			tail = sents[i] + " " + tail
		} else {
			tail = sents[i]
		}
		first = i
	}

	return strings.TrimSpace(tail), first
}

func (c *Chunker) emitSentenceChunk(id int, buffer string, sents []string) *types.Chunk {
	text := strings.TrimSpace(buffer)
	return &types.Chunk{
		ID:        id,
		Text:      text,
		Sentences: append([]string(nil), sents...),
		WordCount: len(c.tok.Words(text)),
	}
}

func (c *Chunker) emitParagraphChunk(id int, buffer string, paras []string) *types.Chunk {
	text := strings.TrimSpace(buffer)
	return &types.Chunk{
		ID:         id,
		Text:       text,
		Paragraphs: append([]string(nil), paras...),
		WordCount:  len(c.tok.Words(text)),
	}
}

// paragraphs splits text on blank-line boundaries, trimming each paragraph
// and discarding empty ones.
func paragraphs(text string) ([]string, error) {
	if !utf8.ValidString(text) {
		return nil, tokenizer.ErrInvalidText
	}

	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}
