package document

import "errors"

// ErrChunkNotFound is returned when a chunk ID is outside the document's
// dense ID range.
var ErrChunkNotFound = errors.New("chunk not found")
