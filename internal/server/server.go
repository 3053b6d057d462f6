// Package server wires the lookup service into the MCP tool boundary.
package server

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/lexicon-tools/logeion/internal/dictionary"
	"github.com/lexicon-tools/logeion/internal/lemma"
	"github.com/lexicon-tools/logeion/internal/lookup"
)

const (
	Name        = "logeion"
	Version     = "1.0.0"
	Description = "Latin dictionary lookup with lemmatization fallback"
)

type Server struct {
	mcp *server.MCPServer
}

// New builds the MCP server and registers its tools. The repository and
// lemmatizer back the get_server_info status report; the lookup service
// handles get_word.
func New(
	lookupService *lookup.Service,
	entries dictionary.EntryRepository,
	lemmatizer lemma.Lemmatizer,
	databasePath string,
) *Server {
	s := server.NewMCPServer(Name, Version)

	handler := NewToolHandler(lookupService, entries, lemmatizer, databasePath)
	s.AddTool(newGetWordTool(), handler.GetWord)
	s.AddTool(newGetServerInfoTool(), handler.GetServerInfo)
	s.AddTool(newExploreDatabaseTool(), handler.ExploreDatabase)

	return &Server{mcp: s}
}

// ServeStdio blocks serving MCP requests over stdin/stdout until the
// client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}
