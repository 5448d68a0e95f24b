// Package tokenizer provides sentence and word segmentation for document
// text, plus the English stop-word set used during query processing.
//
// The package defines the Tokenizer interface consumed by the chunker and
// the searcher, and a default implementation (Segmenter) built on Unicode
// UAX #29 text segmentation:
//
//	tok := tokenizer.NewSegmenter()
//
//	sents, err := tok.Sentences("First sentence. Second sentence.")
//	// ["First sentence.", "Second sentence."]
//
//	words := tok.Words("The quick brown fox jumps.")
//	// ["The", "quick", "brown", "fox", "jumps"]
//
//	tok.IsStopWord("the") // true
//
// Sentences returns an error only when the input cannot be segmented
// (invalid UTF-8); the chunker treats that as a segmentation failure and
// degrades to fixed-width chunking. Words never fails: any byte sequence
// segments into zero or more tokens.
//
// All methods are pure and safe for concurrent use.
package tokenizer
