package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/protocollar/mcpm/internal/claude"
	"github.com/protocollar/mcpm/internal/exitcode"
	"github.com/protocollar/mcpm/internal/jsonout"
	"github.com/protocollar/mcpm/internal/mcpstore"
	"github.com/protocollar/mcpm/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:               "show <name>",
	Short:             "Show one MCP server's fields",
	Example:           `  mcpm show supabase`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: mcpNameCompletion,
	RunE:              runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	name := args[0]
	store, err := openStore()
	if err != nil {
		return err
	}

	rec, err := store.Find(name)
	if err != nil {
		if errors.Is(err, mcpstore.ErrNotFound) {
			return exitcode.Errorf("not_found", "mcp %q not found (see: mcpm list)", name)
		}
		return err
	}

	if jsonout.Enabled {
		return jsonout.Write(rec)
	}

	w := tabwriter.NewWriter(jsonout.Stdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "name:\t%s\n", rec.Name)
	_, _ = fmt.Fprintf(w, "type:\t%s\n", rec.Kind)
	_, _ = fmt.Fprintf(w, "path:\t%s\n", rec.Path)
	_, _ = fmt.Fprintf(w, "options:\t%s\n", rec.Options)
	_ = w.Flush()

	if argv, err := claude.AddArgs(*rec); err == nil {
		fmt.Fprintln(jsonout.MsgOut(), ui.Dim("command: "+claude.FormatArgs(argv)))
	} else {
		fmt.Fprintln(jsonout.MsgOut(), ui.Warn(err.Error()))
	}
	return nil
}
