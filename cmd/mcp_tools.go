package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/protocollar/mcpm/internal/batch"
	"github.com/protocollar/mcpm/internal/claude"
	"github.com/protocollar/mcpm/internal/mcpstore"
)

// mcpResult marshals v as JSON and returns it as MCP text content.
func mcpResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(data))},
	}, nil
}

// mcpError returns an MCP error result.
func mcpError(msg string) (*mcp.CallToolResult, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(msg)},
		IsError: true,
	}, nil
}

func registerMCPTools(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("mcp_list",
			mcp.WithDescription("List configured MCP servers with their preview lines."),
			mcp.WithString("pattern", mcp.Description("Glob filter on server names")),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		handleMCPList,
	)

	s.AddTool(
		mcp.NewTool("mcp_show",
			mcp.WithDescription("Get one configured MCP server's fields."),
			mcp.WithString("name", mcp.Description("Server name"), mcp.Required()),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		handleMCPShow,
	)

	s.AddTool(
		mcp.NewTool("mcp_add",
			mcp.WithDescription("Append an MCP server to the list. Names are not checked for duplicates."),
			mcp.WithString("name", mcp.Description("Server name"), mcp.Required()),
			mcp.WithString("type", mcp.Description("Launch type"), mcp.Required(), mcp.Enum("npx", "env")),
			mcp.WithString("path", mcp.Description("npm package (npx) or KEY=VALUE (env)"), mcp.Required()),
			mcp.WithString("options", mcp.Description("Extra arguments appended to the command")),
			mcp.WithReadOnlyHintAnnotation(false),
			mcp.WithDestructiveHintAnnotation(false),
		),
		handleMCPAdd,
	)

	s.AddTool(
		mcp.NewTool("mcp_remove",
			mcp.WithDescription("Remove every MCP server with the given name from the list."),
			mcp.WithString("name", mcp.Description("Server name"), mcp.Required()),
			mcp.WithDestructiveHintAnnotation(true),
		),
		handleMCPRemove,
	)

	s.AddTool(
		mcp.NewTool("mcp_command",
			mcp.WithDescription("Show the claude command add-all would run for a server."),
			mcp.WithString("name", mcp.Description("Server name"), mcp.Required()),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		handleMCPCommand,
	)
}

func handleMCPList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern := req.GetString("pattern", "")
	if err := batch.ValidateFilter(pattern); err != nil {
		return mcpError(err.Error())
	}
	store, err := openStore()
	if err != nil {
		return mcpError(err.Error())
	}
	records, err := store.Load()
	if err != nil {
		return mcpError(err.Error())
	}

	items := []listItem{}
	for _, r := range records {
		if batch.Match(pattern, r.Name) {
			items = append(items, listItem{Record: r, Preview: claude.Preview(r)})
		}
	}
	return mcpResult(listOutput{Config: store.Path(), Mcps: items})
}

func handleMCPShow(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return mcpError("name is required")
	}
	store, err := openStore()
	if err != nil {
		return mcpError(err.Error())
	}
	rec, err := store.Find(name)
	if err != nil {
		return mcpError(mcpLookupError(name, err))
	}
	return mcpResult(rec)
}

func handleMCPAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rec, err := mcpstore.BuildRecord(
		req.GetString("name", ""),
		req.GetString("type", ""),
		req.GetString("path", ""),
		req.GetString("options", ""),
	)
	if err != nil {
		return mcpError(err.Error())
	}
	store, err := openStore()
	if err != nil {
		return mcpError(err.Error())
	}
	if err := store.Append(rec); err != nil {
		return mcpError(err.Error())
	}
	return mcpResult(struct {
		Action string          `json:"action"`
		Mcp    mcpstore.Record `json:"mcp"`
	}{Action: "added", Mcp: rec})
}

func handleMCPRemove(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return mcpError("name is required")
	}
	store, err := openStore()
	if err != nil {
		return mcpError(err.Error())
	}
	n, err := store.Remove(name)
	if err != nil {
		return mcpError(mcpLookupError(name, err))
	}
	return mcpResult(struct {
		Action  string `json:"action"`
		Name    string `json:"name"`
		Removed int    `json:"removed"`
	}{Action: "removed", Name: name, Removed: n})
}

func handleMCPCommand(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return mcpError("name is required")
	}
	store, err := openStore()
	if err != nil {
		return mcpError(err.Error())
	}
	rec, err := store.Find(name)
	if err != nil {
		return mcpError(mcpLookupError(name, err))
	}
	argv, err := claude.AddArgs(*rec)
	if err != nil {
		return mcpError(err.Error())
	}
	return mcpResult(struct {
		Name    string   `json:"name"`
		Argv    []string `json:"argv"`
		Command string   `json:"command"`
	}{Name: name, Argv: argv, Command: claude.FormatArgs(argv)})
}

func mcpLookupError(name string, err error) string {
	if errors.Is(err, mcpstore.ErrNotFound) {
		return fmt.Sprintf("mcp %q not found", name)
	}
	return err.Error()
}
