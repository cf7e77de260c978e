package cmd

import (
	"fmt"

	"github.com/protocollar/mcpm/internal/batch"
	"github.com/protocollar/mcpm/internal/claude"
	"github.com/protocollar/mcpm/internal/jsonout"
	"github.com/protocollar/mcpm/internal/mcpstore"
	"github.com/protocollar/mcpm/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list [pattern]",
	Aliases: []string{"ls"},
	Short:   "List configured MCP servers",
	Long: `List configured MCP servers, one preview line each:

  <name> -- <type> -y @<path> --<options>

An optional glob pattern (supports *, ?, [..] and {a,b}) filters by name.`,
	Example: `  mcpm list
  mcpm ls 'supa*'
  mcpm list --json`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: mcpNameCompletion,
	RunE:              runList,
}

type listItem struct {
	mcpstore.Record
	Preview string `json:"preview"`
}

type listOutput struct {
	Config string     `json:"config"`
	Mcps   []listItem `json:"mcps"`
}

func (l listOutput) Concise() any {
	names := make([]string, len(l.Mcps))
	for i, m := range l.Mcps {
		names[i] = m.Name
	}
	return names
}

func runList(cmd *cobra.Command, args []string) error {
	pattern := ""
	if len(args) > 0 {
		pattern = args[0]
	}
	if err := batch.ValidateFilter(pattern); err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	records, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	items := []listItem{}
	for _, r := range records {
		if batch.Match(pattern, r.Name) {
			items = append(items, listItem{Record: r, Preview: claude.Preview(r)})
		}
	}

	if jsonout.Enabled {
		return jsonout.Write(listOutput{Config: store.Path(), Mcps: items})
	}

	if len(items) == 0 {
		if pattern != "" {
			fmt.Fprintf(jsonout.MsgOut(), "No MCPs match %q.\n", pattern)
			return nil
		}
		fmt.Fprintln(jsonout.MsgOut(), "No MCPs configured. Add one with: mcpm add (or mcpm init for samples)")
		return nil
	}

	fmt.Fprintln(jsonout.MsgOut(), ui.Header(fmt.Sprintf("Configured MCPs (%s):", store.Path())))
	for _, it := range items {
		fmt.Fprintln(jsonout.Stdout(), it.Preview)
	}
	return nil
}
