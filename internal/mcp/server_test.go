package mcp

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	s := NewServer(0)
	require.NotNil(t, s)
	assert.NotNil(t, s.mcp)
	assert.NotNil(t, s.processor)
	assert.NotNil(t, s.history)
	assert.Empty(t, s.documents)
}

func TestDocumentRegistry(t *testing.T) {
	s := NewServer(0)

	_, ok := s.getDocument("missing")
	assert.False(t, ok)

	processSample(t, s, "a", nil)
	processSample(t, s, "b", nil)
	assert.ElementsMatch(t, []string{"a", "b"}, s.documentNames())

	// Reprocessing under the same name replaces the previous document.
	processSample(t, s, "a", map[string]interface{}{"method": "paragraphs"})
	assert.Len(t, s.documentNames(), 2)

	doc, ok := s.getDocument("a")
	require.True(t, ok)
	assert.Equal(t, "paragraphs", string(doc.Method))
}

func TestHistoryEviction(t *testing.T) {
	h := NewHistory(3)

	for i := 0; i < 5; i++ {
		h.Add(HistoryEntry{
			Document: "doc",
			Query:    fmt.Sprintf("query-%d", i),
			At:       time.Now(),
		})
	}

	require.Equal(t, 3, h.Len())

	entries := h.Entries()
	assert.Equal(t, "query-2", entries[0].Query)
	assert.Equal(t, "query-4", entries[2].Query)
}

func TestHistoryEntriesCopy(t *testing.T) {
	h := NewHistory(10)
	h.Add(HistoryEntry{Query: "original"})

	entries := h.Entries()
	entries[0].Query = "mutated"

	assert.Equal(t, "original", h.Entries()[0].Query)
}
