package tokenizer

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/sentences"
	"github.com/clipperhouse/uax29/v2/words"
)

// ErrInvalidText is returned when the input is not valid UTF-8 and cannot
// be segmented at sentence boundaries.
var ErrInvalidText = errors.New("text is not valid UTF-8")

// Tokenizer is the linguistic-tokenization collaborator consumed by the
// chunker and the searcher. Implementations must be safe for concurrent
// use; all methods are pure functions of their input.
type Tokenizer interface {
	// Sentences segments text into an ordered sequence of trimmed,
	// non-empty sentences. A returned error signals a segmentation
	// failure; callers degrade to fixed-width chunking.
	Sentences(text string) ([]string, error)

	// Words segments text into word tokens, dropping whitespace and
	// punctuation-only tokens.
	Words(text string) []string

	// IsStopWord reports whether the lowercased word carries no search
	// value for the tokenizer's language.
	IsStopWord(word string) bool
}

// Segmenter is the default Tokenizer. It segments at Unicode UAX #29
// sentence and word boundaries and uses the standard English stop-word
// list. The zero value is not usable; construct with NewSegmenter.
type Segmenter struct {
	stopWords map[string]struct{}
}

// NewSegmenter creates a Segmenter for English text.
func NewSegmenter() *Segmenter {
	return &Segmenter{stopWords: englishStopWords}
}

// Sentences segments text at UAX #29 sentence boundaries.
func (s *Segmenter) Sentences(text string) ([]string, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidText
	}

	var out []string
	tokens := sentences.FromString(text)
	for tokens.Next() {
		sentence := strings.TrimSpace(tokens.Value())
		if sentence != "" {
			out = append(out, sentence)
		}
	}
	return out, nil
}

// Words segments text at UAX #29 word boundaries, keeping only tokens that
// contain at least one letter or digit. Punctuation and whitespace tokens
// emitted by the segmenter are dropped.
func (s *Segmenter) Words(text string) []string {
	var out []string
	tokens := words.FromString(text)
	for tokens.Next() {
		token := tokens.Value()
		if wordlike(token) {
			out = append(out, token)
		}
	}
	return out
}

// IsStopWord reports whether word is in the English stop-word list.
// Matching is case-insensitive.
func (s *Segmenter) IsStopWord(word string) bool {
	_, ok := s.stopWords[strings.ToLower(word)]
	return ok
}

// wordlike reports whether a segment contains at least one letter or digit.
func wordlike(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
