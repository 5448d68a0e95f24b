package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// processDocumentTool returns the tool definition for process_document
func processDocumentTool() mcp.Tool {
	return mcp.Tool{
		Name:        "process_document",
		Description: "Chunk extracted document text and make it searchable",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Document name; reprocessing the same name replaces the document",
				},
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Extracted document text (OCR or PDF output)",
				},
				"chunk_size": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum characters per chunk",
					"default":     1000,
					"minimum":     1,
				},
				"overlap": map[string]interface{}{
					"type":        "integer",
					"description": "Characters shared between adjacent chunks (must be smaller than chunk_size)",
					"default":     200,
					"minimum":     0,
				},
				"method": map[string]interface{}{
					"type":        "string",
					"description": "Chunking method: sentence boundaries, paragraph boundaries, or fixed-width windows",
					"enum":        []string{"sentences", "paragraphs", "fixed_width"},
					"default":     "sentences",
				},
			},
			Required: []string{"name", "text"},
		},
	}
}

// searchDocumentTool returns the tool definition for search_document
func searchDocumentTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_document",
		Description: "Search a processed document's chunks with relevance ranking",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Name of a previously processed document",
				},
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Free-text search query",
				},
				"max_results": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (1-100)",
					"default":     5,
					"minimum":     1,
					"maximum":     100,
				},
				"snippet_length": map[string]interface{}{
					"type":        "integer",
					"description": "Snippet window size in characters",
					"default":     200,
					"minimum":     1,
				},
				"use_cache": map[string]interface{}{
					"type":        "boolean",
					"description": "Serve repeated queries from the result cache",
					"default":     true,
				},
			},
			Required: []string{"name", "query"},
		},
	}
}

// getChunksTool returns the tool definition for get_chunks
func getChunksTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_chunks",
		Description: "Inspect a processed document's chunks or reconstruct its full text",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Name of a previously processed document",
				},
				"chunk_id": map[string]interface{}{
					"type":        "integer",
					"description": "Return a single chunk in full instead of the chunk overview",
					"minimum":     0,
				},
				"include_full_text": map[string]interface{}{
					"type":        "boolean",
					"description": "Include the reconstructed document text",
					"default":     false,
				},
			},
			Required: []string{"name"},
		},
	}
}

// listDocumentsTool returns the tool definition for list_documents
func listDocumentsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_documents",
		Description: "List processed documents and recent searches for this session",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
