package types

import "errors"

// Method selects the unit boundary used when chunking a document.
type Method string

const (
	// MethodSentences accumulates whole sentences per chunk (default).
	MethodSentences Method = "sentences"
	// MethodParagraphs accumulates blank-line-delimited paragraphs per chunk.
	MethodParagraphs Method = "paragraphs"
	// MethodFixedWidth is the boundary-agnostic fallback used when
	// linguistic segmentation is unavailable or fails.
	MethodFixedWidth Method = "fixed_width"
)

// Validate checks that the method is one of the known chunking methods.
func (m Method) Validate() error {
	switch m {
	case MethodSentences, MethodParagraphs, MethodFixedWidth:
		return nil
	default:
		return ErrInvalidMethod
	}
}

// Span records character offsets into the source text. It is only set on
// chunks produced by fixed-width fallback chunking, where no unit list
// exists to locate the chunk.
type Span struct {
	Start int
	End   int
}

// Len returns the number of characters covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Chunk is the unit of retrieval: a bounded, contiguous excerpt of document
// text. Chunks are created once per document-processing pass and are
// immutable afterward; any number of searches may share them concurrently.
type Chunk struct {
	// ID is a dense, zero-based sequence number in emission order.
	ID int

	// Text is the chunk content, trimmed and non-empty.
	Text string

	// Sentences holds the ordered sentences composing the chunk when it
	// was produced in sentence mode. Retained for overlap carryover and
	// debugging, never for scoring.
	Sentences []string

	// Paragraphs holds the ordered paragraphs composing the chunk when it
	// was produced in paragraph mode.
	Paragraphs []string

	// WordCount is the number of word tokens in Text. It is always
	// recomputed from Text at emission, never carried across mutation.
	WordCount int

	// Span locates fallback chunks in the source text. Nil for chunks
	// produced by sentence or paragraph chunking.
	Span *Span
}

// Method reports how the chunk was produced, derived from which metadata
// the chunker attached.
func (c *Chunk) Method() Method {
	switch {
	case c.Span != nil:
		return MethodFixedWidth
	case c.Paragraphs != nil:
		return MethodParagraphs
	default:
		return MethodSentences
	}
}

// Preview returns the first n characters of the chunk text, with an
// ellipsis when truncated.
func (c *Chunk) Preview(n int) string {
	if n <= 0 || len(c.Text) <= n {
		return c.Text
	}
	return c.Text[:n] + "..."
}

// Validate performs consistency checks on an emitted chunk.
func (c *Chunk) Validate() error {
	if c.ID < 0 {
		return ErrInvalidChunkID
	}

	if c.Text == "" {
		return ErrEmptyChunkText
	}

	if c.WordCount < 0 {
		return errors.New("word count cannot be negative")
	}

	if c.Span != nil && c.Span.End < c.Span.Start {
		return errors.New("span end must not precede span start")
	}

	if c.Sentences != nil && c.Paragraphs != nil {
		return errors.New("chunk cannot carry both sentences and paragraphs")
	}

	return nil
}
