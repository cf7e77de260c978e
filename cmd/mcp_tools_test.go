package cmd

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/protocollar/mcpm/internal/mcpstore"
)

func TestMcpResult(t *testing.T) {
	v := map[string]string{"key": "value"}
	result, err := mcpResult(v)
	if err != nil {
		t.Fatal(err)
	}
	if result.IsError {
		t.Error("IsError should be false")
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected 1 content item, got %d", len(result.Content))
	}
	tc, ok := mcp.AsTextContent(result.Content[0])
	if !ok {
		t.Fatal("expected TextContent")
	}

	var got map[string]string
	if err := json.Unmarshal([]byte(tc.Text), &got); err != nil {
		t.Fatalf("invalid JSON in content: %v", err)
	}
	if got["key"] != "value" {
		t.Errorf("got %v, want key=value", got)
	}
}

func TestMcpResultMarshalError(t *testing.T) {
	_, err := mcpResult(func() {})
	if err == nil {
		t.Error("expected error when marshaling a function")
	}
}

func TestMcpError(t *testing.T) {
	result, err := mcpError("something went wrong")
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError {
		t.Error("IsError should be true")
	}
	tc, ok := mcp.AsTextContent(result.Content[0])
	if !ok {
		t.Fatal("expected TextContent")
	}
	if tc.Text != "something went wrong" {
		t.Errorf("text = %q, want %q", tc.Text, "something went wrong")
	}
}

func TestRegisterMCPTools(t *testing.T) {
	s := server.NewMCPServer("test", "0.0.0")
	registerMCPTools(s)

	tools := s.ListTools()
	expectedTools := []string{"mcp_list", "mcp_show", "mcp_add", "mcp_remove", "mcp_command"}

	if len(tools) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(tools), len(expectedTools))
	}
	for _, name := range expectedTools {
		if _, ok := tools[name]; !ok {
			t.Errorf("missing tool %q", name)
		}
	}
}

// useConfig points the MCP handlers at a fresh config file.
func useConfig(t *testing.T) string {
	t.Helper()
	cfg := tempConfig(t)
	prev := configPath
	configPath = cfg
	t.Cleanup(func() { configPath = prev })
	return cfg
}

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	tc, ok := mcp.AsTextContent(result.Content[0])
	if !ok {
		t.Fatal("expected TextContent")
	}
	return tc.Text, result.IsError
}

func TestMCPToolsAddListRemove(t *testing.T) {
	cfg := useConfig(t)

	text, isErr := callTool(t, handleMCPAdd, map[string]any{
		"name": "ctx", "type": "npx", "path": "upstash/context7-mcp",
	})
	if isErr {
		t.Fatalf("mcp_add failed: %s", text)
	}

	text, isErr = callTool(t, handleMCPList, map[string]any{})
	if isErr {
		t.Fatalf("mcp_list failed: %s", text)
	}
	var list listOutput
	if err := json.Unmarshal([]byte(text), &list); err != nil {
		t.Fatal(err)
	}
	if list.Config != cfg || len(list.Mcps) != 1 || list.Mcps[0].Preview != "ctx -- npx -y @upstash/context7-mcp --" {
		t.Errorf("list = %+v", list)
	}

	text, isErr = callTool(t, handleMCPRemove, map[string]any{"name": "ctx"})
	if isErr {
		t.Fatalf("mcp_remove failed: %s", text)
	}
	if !strings.Contains(text, `"removed": 1`) {
		t.Errorf("remove result = %s", text)
	}

	records, _ := mcpstore.New(cfg).Load()
	if len(records) != 0 {
		t.Errorf("expected empty list, got %+v", records)
	}
}

func TestMCPToolsAddValidation(t *testing.T) {
	useConfig(t)
	text, isErr := callTool(t, handleMCPAdd, map[string]any{"name": " ", "type": "npx", "path": "p"})
	if !isErr {
		t.Fatal("expected error for blank name")
	}
	if text != "name is required" {
		t.Errorf("text = %q", text)
	}
}

func TestMCPToolsNotFound(t *testing.T) {
	useConfig(t)
	handlers := map[string]func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error){
		"show":    handleMCPShow,
		"remove":  handleMCPRemove,
		"command": handleMCPCommand,
	}
	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			text, isErr := callTool(t, h, map[string]any{"name": "ghost"})
			if !isErr || text != `mcp "ghost" not found` {
				t.Errorf("got %q (isError=%v)", text, isErr)
			}
		})
	}
}

func TestMCPToolsCommand(t *testing.T) {
	cfg := useConfig(t)
	_ = mcpstore.New(cfg).Replace(mcpstore.Samples())

	text, isErr := callTool(t, handleMCPCommand, map[string]any{"name": "github"})
	if isErr {
		t.Fatalf("mcp_command failed: %s", text)
	}
	var got struct {
		Argv []string `json:"argv"`
	}
	if err := json.Unmarshal([]byte(text), &got); err != nil {
		t.Fatal(err)
	}
	want := "claude mcp add github -- env GITHUB_PERSONAL_ACCESS_TOKEN=<your-token> npx -y @modelcontextprotocol/server-github"
	if strings.Join(got.Argv, " ") != want {
		t.Errorf("argv = %q", got.Argv)
	}
}

func TestMCPToolsListBadPattern(t *testing.T) {
	useConfig(t)
	_, isErr := callTool(t, handleMCPList, map[string]any{"pattern": "[a-"})
	if !isErr {
		t.Error("expected error for invalid pattern")
	}
}
