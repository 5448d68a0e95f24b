// Package mcp exposes document chunking and search as MCP tools over
// stdio.
//
// Four tools are registered:
//
//   - process_document: chunk extracted text with a configurable size,
//     overlap, and method, and register the result under a name
//   - search_document: rank a processed document's chunks against a query
//   - get_chunks: inspect chunk details or reconstruct the full text
//   - list_documents: enumerate processed documents and recent searches
//
// Processed documents are held in an in-memory registry scoped to the
// server's lifetime; there is no persistence. The search history is an
// explicit bounded list owned by this layer. The chunking and search
// core is stateless between calls and receives all configuration as
// arguments.
//
// Parameter errors are reported as MCP protocol errors with the codes
// declared in tools.go; search itself never errors, so an unmatched or
// stop-word-only query returns an empty result list, not a failure.
package mcp
