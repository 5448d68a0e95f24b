// Package document coordinates the processing pipeline for one document:
// extracted text is chunked, a searcher is built over the chunks, and the
// result is wrapped with its processing statistics. A processed Document
// is immutable and safe for concurrent searches; the hosting layer owns
// any registry of documents and any search history.
package document
