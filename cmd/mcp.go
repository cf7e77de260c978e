package cmd

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server for AI agent integration",
	Long: `MCP server for AI agent integration.

mcpm can itself run as a Model Context Protocol server so agents can read and
edit the MCP list.

SETUP

  Claude Code:

    claude mcp add mcpm -- mcpm mcp serve

  Manual .mcp.json:

    {
      "mcpServers": {
        "mcpm": {
          "command": "mcpm",
          "args": ["mcp", "serve"]
        }
      }
    }

AVAILABLE TOOLS

  mcp_list      List configured servers with their preview lines
  mcp_show      Get one server's fields
  mcp_add       Append a server to the list
  mcp_remove    Remove every server with a name
  mcp_command   Show the claude command that add-all would run for a server

Tools never run claude themselves.`,
}
