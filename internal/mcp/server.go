// Package mcp wraps the stdio MCP server that exposes the mcpm list to agents.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// Name is the server name reported during MCP initialization.
const Name = "mcpm"

// NewServer creates a new mcpm MCP server.
func NewServer(version string) *server.MCPServer {
	return server.NewMCPServer(
		Name,
		version,
		server.WithToolCapabilities(false),
		server.WithInstructions("Manage the list of MCP servers that mcpm registers with the claude CLI."),
	)
}

// Serve starts the MCP server on stdio.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
