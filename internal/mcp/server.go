package mcp

import (
	"context"
	"sync"

	"github.com/mark3labs/mcp-go/server"

	"github.com/doctext/doctext-mcp/internal/document"
	"github.com/doctext/doctext-mcp/internal/tokenizer"
)

const (
	// ServerName is the MCP server name
	ServerName = "doctext-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
	// DefaultHistorySize bounds the retained search history
	DefaultHistorySize = 50
)

// Server wraps the MCP server with application dependencies. Processed
// documents live in an in-memory registry for the lifetime of the
// session; nothing is persisted.
type Server struct {
	mcp       *server.MCPServer
	processor *document.Processor
	history   *History

	mu        sync.RWMutex
	documents map[string]*document.Document
}

// NewServer creates a new MCP server instance. historySize bounds the
// retained search history; zero or negative selects the default.
func NewServer(historySize int) *Server {
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:       mcpServer,
		processor: document.NewProcessor(tokenizer.NewSegmenter()),
		history:   NewHistory(historySize),
		documents: make(map[string]*document.Document),
	}

	s.registerTools()

	return s
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools.
func (s *Server) registerTools() {
	s.mcp.AddTool(processDocumentTool(), s.handleProcessDocument)
	s.mcp.AddTool(searchDocumentTool(), s.handleSearchDocument)
	s.mcp.AddTool(getChunksTool(), s.handleGetChunks)
	s.mcp.AddTool(listDocumentsTool(), s.handleListDocuments)
}

// putDocument stores a processed document, replacing any previous
// document with the same name.
func (s *Server) putDocument(doc *document.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.Name] = doc
}

// getDocument looks up a processed document by name.
func (s *Server) getDocument(name string) (*document.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[name]
	return doc, ok
}

// documentNames returns the registered document names.
func (s *Server) documentNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.documents))
	for name := range s.documents {
		names = append(names, name)
	}
	return names
}
