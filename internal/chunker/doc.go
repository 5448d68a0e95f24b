// Package chunker divides extracted document text into bounded,
// overlapping chunks for search and display.
//
// # Basic Usage
//
//	c, err := chunker.New(tokenizer.NewSegmenter(), chunker.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	chunks := c.Chunk(extractedText)
//	for _, chunk := range chunks {
//	    fmt.Printf("chunk %d: %d words\n", chunk.ID, chunk.WordCount)
//	}
//
// # Chunking Methods
//
// Sentence mode (default) accumulates whole sentences until adding the
// next one would exceed the chunk size, then closes the chunk and seeds
// the next with an overlap tail of whole trailing sentences. Sentences are
// never split.
//
// Paragraph mode works the same way over blank-line-delimited paragraphs,
// except that the overlap seed is the tail of the last paragraph truncated
// to the overlap length, so paragraphs may be split at the boundary.
//
// Fixed-width mode slides a character window of ChunkSize over the text,
// stepping by ChunkSize-Overlap. It carries no unit lists; each chunk
// instead records a Span with its character offsets into the source. This
// mode is both directly selectable and the automatic fallback when
// sentence or paragraph segmentation fails.
//
// # Guarantees
//
// Chunk IDs form a dense, ascending sequence starting at zero. Every unit
// of the input appears in at least one chunk. Adjacent chunks may share up
// to Overlap characters but never duplicate each other entirely. Word
// counts are recomputed from each chunk's own text. Chunking the same text
// with the same configuration is deterministic.
//
// An overlap greater than or equal to the chunk size would make the
// fixed-width window step non-positive, so New rejects it up front.
package chunker
