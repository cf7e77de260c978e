package cmd

import (
	"errors"
	"fmt"

	"github.com/protocollar/mcpm/internal/exitcode"
	"github.com/protocollar/mcpm/internal/jsonout"
	"github.com/protocollar/mcpm/internal/mcpstore"
	"github.com/protocollar/mcpm/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove an MCP server from the list",
	Long: `Remove every entry with the given name from the list.

This only edits mcpm's list; run "claude mcp remove <name>" to unregister it
from claude as well.`,
	Example:           `  mcpm rm supabase`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: mcpNameCompletion,
	RunE:              runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	name := args[0]
	store, err := openStore()
	if err != nil {
		return err
	}

	n, err := store.Remove(name)
	if err != nil {
		if errors.Is(err, mcpstore.ErrNotFound) {
			return exitcode.Errorf("not_found", "mcp %q not found (see: mcpm list)", name)
		}
		return err
	}

	if jsonout.Enabled {
		return jsonout.Write(struct {
			Action  string `json:"action"`
			Name    string `json:"name"`
			Removed int    `json:"removed"`
		}{Action: "removed", Name: name, Removed: n})
	}

	msg := fmt.Sprintf("Removed %s", name)
	if n > 1 {
		msg = fmt.Sprintf("Removed %d entries named %s", n, name)
	}
	fmt.Fprintln(jsonout.MsgOut(), ui.Success(msg))
	return nil
}
