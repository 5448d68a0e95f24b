package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = "The quick brown fox jumps over the lazy dog. " +
	"Pack my box with five dozen liquor jugs. " +
	"How vexingly quick daft zebras jump. " +
	"Sphinx of black quartz, judge my vow."

func toolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

// resultJSON decodes the text payload of a successful tool result.
func resultJSON(t *testing.T, result *mcp.CallToolResult) map[string]interface{} {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(text.Text), &decoded))
	return decoded
}

func processSample(t *testing.T, s *Server, name string, extra map[string]interface{}) map[string]interface{} {
	t.Helper()
	args := map[string]interface{}{
		"name": name,
		"text": sampleText,
	}
	for k, v := range extra {
		args[k] = v
	}

	result, err := s.handleProcessDocument(context.Background(), toolRequest("process_document", args))
	require.NoError(t, err)
	return resultJSON(t, result)
}

func TestHandleProcessDocument(t *testing.T) {
	s := NewServer(0)

	response := processSample(t, s, "sample.pdf", map[string]interface{}{
		"chunk_size": float64(90),
		"overlap":    float64(20),
	})

	assert.Equal(t, true, response["processed"])
	assert.Equal(t, "sample.pdf", response["name"])
	assert.Equal(t, "sentences", response["method"])
	assert.Greater(t, response["chunks_created"], float64(0))
	assert.Greater(t, response["total_words"], float64(0))
	assert.Equal(t, false, response["fallback_used"])

	_, ok := s.getDocument("sample.pdf")
	assert.True(t, ok)
}

func TestHandleProcessDocument_Validation(t *testing.T) {
	s := NewServer(0)
	ctx := context.Background()

	tests := []struct {
		name     string
		args     map[string]interface{}
		wantCode int
	}{
		{
			name:     "missing name",
			args:     map[string]interface{}{"text": sampleText},
			wantCode: ErrorCodeInvalidParams,
		},
		{
			name:     "missing text",
			args:     map[string]interface{}{"name": "doc"},
			wantCode: ErrorCodeInvalidParams,
		},
		{
			name: "overlap not smaller than chunk size",
			args: map[string]interface{}{
				"name":       "doc",
				"text":       sampleText,
				"chunk_size": float64(100),
				"overlap":    float64(100),
			},
			wantCode: ErrorCodeInvalidParams,
		},
		{
			name: "unknown method",
			args: map[string]interface{}{
				"name":   "doc",
				"text":   sampleText,
				"method": "words",
			},
			wantCode: ErrorCodeInvalidParams,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.handleProcessDocument(ctx, toolRequest("process_document", tt.args))
			require.Error(t, err)

			var mcpErr *MCPError
			require.ErrorAs(t, err, &mcpErr)
			assert.Equal(t, tt.wantCode, mcpErr.Code)
		})
	}
}

func TestHandleProcessDocument_EmptyTextAllowed(t *testing.T) {
	s := NewServer(0)

	result, err := s.handleProcessDocument(context.Background(), toolRequest("process_document", map[string]interface{}{
		"name": "empty",
		"text": "   ",
	}))
	require.NoError(t, err)

	response := resultJSON(t, result)
	assert.Equal(t, float64(0), response["chunks_created"])
}

func TestHandleSearchDocument(t *testing.T) {
	s := NewServer(0)
	processSample(t, s, "sample", nil)

	result, err := s.handleSearchDocument(context.Background(), toolRequest("search_document", map[string]interface{}{
		"name":  "sample",
		"query": "zebras",
	}))
	require.NoError(t, err)

	response := resultJSON(t, result)
	assert.Equal(t, "zebras", response["query"])
	assert.Greater(t, response["total_results"], float64(0))

	results := response["results"].([]interface{})
	first := results[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["rank"])
	assert.Contains(t, first["text"], "zebras")
	assert.NotEmpty(t, first["snippet"])

	// The search lands in the session history.
	require.Equal(t, 1, s.history.Len())
	assert.Equal(t, "zebras", s.history.Entries()[0].Query)
}

func TestHandleSearchDocument_StopWordQuery(t *testing.T) {
	s := NewServer(0)
	processSample(t, s, "sample", nil)

	result, err := s.handleSearchDocument(context.Background(), toolRequest("search_document", map[string]interface{}{
		"name":  "sample",
		"query": "the",
	}))
	require.NoError(t, err, "a stop-word query is empty results, not an error")

	response := resultJSON(t, result)
	assert.Equal(t, float64(0), response["total_results"])
}

func TestHandleSearchDocument_Errors(t *testing.T) {
	s := NewServer(0)
	processSample(t, s, "sample", nil)
	ctx := context.Background()

	tests := []struct {
		name     string
		args     map[string]interface{}
		wantCode int
	}{
		{
			name:     "unknown document",
			args:     map[string]interface{}{"name": "missing", "query": "fox"},
			wantCode: ErrorCodeDocumentNotFound,
		},
		{
			name:     "empty query",
			args:     map[string]interface{}{"name": "sample", "query": ""},
			wantCode: ErrorCodeEmptyQuery,
		},
		{
			name:     "max_results out of range",
			args:     map[string]interface{}{"name": "sample", "query": "fox", "max_results": float64(500)},
			wantCode: ErrorCodeInvalidParams,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.handleSearchDocument(ctx, toolRequest("search_document", tt.args))
			require.Error(t, err)

			var mcpErr *MCPError
			require.ErrorAs(t, err, &mcpErr)
			assert.Equal(t, tt.wantCode, mcpErr.Code)
		})
	}
}

func TestHandleGetChunks(t *testing.T) {
	s := NewServer(0)
	processSample(t, s, "sample", map[string]interface{}{
		"chunk_size": float64(90),
		"overlap":    float64(20),
	})

	result, err := s.handleGetChunks(context.Background(), toolRequest("get_chunks", map[string]interface{}{
		"name":              "sample",
		"include_full_text": true,
	}))
	require.NoError(t, err)

	response := resultJSON(t, result)
	chunks := response["chunks"].([]interface{})
	require.NotEmpty(t, chunks)

	first := chunks[0].(map[string]interface{})
	assert.Equal(t, float64(0), first["id"])
	assert.Greater(t, first["word_count"], float64(0))
	assert.NotEmpty(t, first["preview"])

	fullText, ok := response["full_text"].(string)
	require.True(t, ok)
	assert.Contains(t, fullText, "quick brown fox")
}

func TestHandleGetChunks_SingleChunk(t *testing.T) {
	s := NewServer(0)
	processSample(t, s, "sample", map[string]interface{}{
		"chunk_size": float64(90),
		"overlap":    float64(20),
	})

	result, err := s.handleGetChunks(context.Background(), toolRequest("get_chunks", map[string]interface{}{
		"name":     "sample",
		"chunk_id": float64(0),
	}))
	require.NoError(t, err)

	response := resultJSON(t, result)
	assert.Equal(t, float64(0), response["id"])
	assert.Equal(t, "sentences", response["method"])
	assert.NotEmpty(t, response["sentences"])

	_, err = s.handleGetChunks(context.Background(), toolRequest("get_chunks", map[string]interface{}{
		"name":     "sample",
		"chunk_id": float64(9999),
	}))
	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrorCodeChunkNotFound, mcpErr.Code)
}

func TestHandleListDocuments(t *testing.T) {
	s := NewServer(0)
	processSample(t, s, "first", nil)
	processSample(t, s, "second", nil)

	_, err := s.handleSearchDocument(context.Background(), toolRequest("search_document", map[string]interface{}{
		"name":  "first",
		"query": "fox",
	}))
	require.NoError(t, err)

	result, err := s.handleListDocuments(context.Background(), toolRequest("list_documents", map[string]interface{}{}))
	require.NoError(t, err)

	response := resultJSON(t, result)
	assert.Equal(t, float64(2), response["documents_count"])
	assert.Equal(t, float64(1), response["searches_retained"])

	names := []string{}
	for _, raw := range response["documents"].([]interface{}) {
		doc := raw.(map[string]interface{})
		names = append(names, doc["name"].(string))
	}
	assert.ElementsMatch(t, []string{"first", "second"}, names)
}

func TestMCPError(t *testing.T) {
	err := newMCPError(ErrorCodeInvalidParams, "bad input", nil)
	assert.True(t, strings.Contains(err.Error(), "-32602"))
	assert.True(t, strings.Contains(err.Error(), "bad input"))
}
