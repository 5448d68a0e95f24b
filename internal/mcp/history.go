package mcp

import (
	"sync"
	"time"
)

// HistoryEntry records one executed search.
type HistoryEntry struct {
	Document string
	Query    string
	Results  int
	At       time.Time
}

// History is the session's explicit search history: a bounded list owned
// by the tool surface, appended to after every search. The search core
// never sees it.
type History struct {
	mu      sync.Mutex
	max     int
	entries []HistoryEntry
}

// NewHistory creates a History retaining at most max entries.
func NewHistory(max int) *History {
	return &History{max: max}
}

// Add appends an entry, evicting the oldest once the bound is reached.
func (h *History) Add(entry HistoryEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, entry)
	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
}

// Entries returns a copy of the history, oldest first.
func (h *History) Entries() []HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]HistoryEntry(nil), h.entries...)
}

// Len returns the number of retained entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
