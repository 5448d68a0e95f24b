package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/doctext/doctext-mcp/internal/chunker"
	"github.com/doctext/doctext-mcp/internal/searcher"
	"github.com/doctext/doctext-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams    = -32602 // Invalid method parameters
	ErrorCodeInternalError    = -32603 // Internal JSON-RPC error
	ErrorCodeDocumentNotFound = -32001 // Named document has not been processed
	ErrorCodeChunkNotFound    = -32002 // Chunk ID outside the document's range
	ErrorCodeEmptyQuery       = -32003 // Query parameter is empty
)

// handleProcessDocument handles the process_document tool invocation
func (s *Server) handleProcessDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	name, ok := args["name"].(string)
	if !ok || name == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "name parameter is required", map[string]interface{}{
			"param":  "name",
			"reason": "missing or empty",
		})
	}

	text, ok := args["text"].(string)
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "text parameter is required", map[string]interface{}{
			"param":  "text",
			"reason": "missing",
		})
	}

	cfg := chunker.Config{
		ChunkSize: getIntDefault(args, "chunk_size", chunker.DefaultChunkSize),
		Overlap:   getIntDefault(args, "overlap", chunker.DefaultOverlap),
		Method:    types.Method(getStringDefault(args, "method", string(types.MethodSentences))),
	}

	doc, err := s.processor.Process(name, text, cfg)
	if err != nil {
		// All processing errors are configuration errors; chunking
		// itself degrades instead of failing.
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid chunking configuration", map[string]interface{}{
			"error": err.Error(),
		})
	}

	s.putDocument(doc)

	stats := doc.Stats()
	response := map[string]interface{}{
		"processed":      true,
		"name":           doc.Name,
		"method":         string(doc.Method),
		"chunks_created": stats.ChunksCreated,
		"total_words":    stats.TotalWords,
		"fallback_used":  stats.FallbackUsed,
		"duration_ms":    stats.Duration.Milliseconds(),
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleSearchDocument handles the search_document tool invocation
func (s *Server) handleSearchDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	name, ok := args["name"].(string)
	if !ok || name == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "name parameter is required", map[string]interface{}{
			"param":  "name",
			"reason": "missing or empty",
		})
	}

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return nil, newMCPError(ErrorCodeEmptyQuery, "query parameter is required and cannot be empty", map[string]interface{}{
			"param":  "query",
			"reason": "missing or empty",
		})
	}

	maxResults := getIntDefault(args, "max_results", searcher.DefaultMaxResults)
	if maxResults < 1 || maxResults > 100 {
		return nil, newMCPError(ErrorCodeInvalidParams, "max_results must be between 1 and 100", map[string]interface{}{
			"param": "max_results",
			"value": maxResults,
		})
	}

	doc, ok := s.getDocument(name)
	if !ok {
		return nil, newMCPError(ErrorCodeDocumentNotFound, "document not processed", map[string]interface{}{
			"name":      name,
			"available": s.documentNames(),
		})
	}

	results := doc.Search(ctx, searcher.Request{
		Query:         query,
		MaxResults:    maxResults,
		SnippetLength: getIntDefault(args, "snippet_length", searcher.DefaultSnippetLength),
		UseCache:      getBoolDefault(args, "use_cache", true),
	})

	s.history.Add(HistoryEntry{
		Document: name,
		Query:    query,
		Results:  len(results),
		At:       time.Now(),
	})

	formatted := make([]map[string]interface{}, len(results))
	for i, r := range results {
		matches := make([][2]int, len(r.Matches))
		for j, m := range r.Matches {
			matches[j] = [2]int{m.Start, m.End}
		}
		formatted[i] = map[string]interface{}{
			"rank":       r.Rank,
			"chunk_id":   r.Chunk.ID,
			"score":      r.Score,
			"snippet":    r.Snippet,
			"matches":    matches,
			"word_count": r.Chunk.WordCount,
			"text":       r.Chunk.Text,
		}
	}

	response := map[string]interface{}{
		"name":          name,
		"query":         query,
		"total_results": len(results),
		"results":       formatted,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetChunks handles the get_chunks tool invocation
func (s *Server) handleGetChunks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	name, ok := args["name"].(string)
	if !ok || name == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "name parameter is required", map[string]interface{}{
			"param":  "name",
			"reason": "missing or empty",
		})
	}

	doc, ok := s.getDocument(name)
	if !ok {
		return nil, newMCPError(ErrorCodeDocumentNotFound, "document not processed", map[string]interface{}{
			"name":      name,
			"available": s.documentNames(),
		})
	}

	// Single-chunk detail view
	if raw, present := args["chunk_id"]; present {
		id := getIntDefault(args, "chunk_id", -1)
		if id < 0 {
			return nil, newMCPError(ErrorCodeInvalidParams, "chunk_id must be a non-negative integer", map[string]interface{}{
				"param": "chunk_id",
				"value": raw,
			})
		}

		chunk, err := doc.Chunk(id)
		if err != nil {
			return nil, newMCPError(ErrorCodeChunkNotFound, "chunk not found", map[string]interface{}{
				"chunk_id": id,
				"chunks":   len(doc.Chunks),
			})
		}

		return mcp.NewToolResultText(formatJSON(chunkDetail(chunk))), nil
	}

	overview := make([]map[string]interface{}, len(doc.Chunks))
	for i, chunk := range doc.Chunks {
		overview[i] = map[string]interface{}{
			"id":         chunk.ID,
			"word_count": chunk.WordCount,
			"preview":    chunk.Preview(100),
		}
	}

	response := map[string]interface{}{
		"name":   name,
		"method": string(doc.Method),
		"chunks": overview,
	}

	if getBoolDefault(args, "include_full_text", false) {
		response["full_text"] = doc.FullText()
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleListDocuments handles the list_documents tool invocation
func (s *Server) handleListDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.RLock()
	docs := make([]map[string]interface{}, 0, len(s.documents))
	for _, doc := range s.documents {
		stats := doc.Stats()
		docs = append(docs, map[string]interface{}{
			"name":        doc.Name,
			"method":      string(doc.Method),
			"chunks":      stats.ChunksCreated,
			"total_words": stats.TotalWords,
			"created_at":  doc.CreatedAt.Format(time.RFC3339),
		})
	}
	s.mu.RUnlock()

	searches := s.history.Entries()
	recent := make([]map[string]interface{}, len(searches))
	for i, entry := range searches {
		recent[i] = map[string]interface{}{
			"document": entry.Document,
			"query":    entry.Query,
			"results":  entry.Results,
			"at":       entry.At.Format(time.RFC3339),
		}
	}

	response := map[string]interface{}{
		"documents":         docs,
		"recent_searches":   recent,
		"documents_count":   len(docs),
		"searches_retained": len(recent),
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// chunkDetail formats one chunk for the detail view.
func chunkDetail(chunk *types.Chunk) map[string]interface{} {
	detail := map[string]interface{}{
		"id":         chunk.ID,
		"text":       chunk.Text,
		"word_count": chunk.WordCount,
		"method":     string(chunk.Method()),
	}
	if chunk.Sentences != nil {
		detail["sentences"] = chunk.Sentences
	}
	if chunk.Paragraphs != nil {
		detail["paragraphs"] = chunk.Paragraphs
	}
	if chunk.Span != nil {
		detail["span"] = [2]int{chunk.Span.Start, chunk.Span.End}
	}
	return detail
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
