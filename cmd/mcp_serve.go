package cmd

import (
	"io"

	"github.com/protocollar/mcpm/internal/jsonout"
	mcpmserver "github.com/protocollar/mcpm/internal/mcp"
	"github.com/spf13/cobra"
)

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP server on stdio",
	Args:  cobra.NoArgs,
	RunE:  runMCPServe,
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	// stdout carries the MCP protocol
	jsonout.SetMsgOut(io.Discard)

	s := mcpmserver.NewServer(Version)
	registerMCPTools(s)
	return mcpmserver.Serve(s)
}
