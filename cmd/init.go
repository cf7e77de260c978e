package cmd

import (
	"bufio"
	"fmt"

	"github.com/protocollar/mcpm/internal/jsonout"
	"github.com/protocollar/mcpm/internal/mcpstore"
	"github.com/protocollar/mcpm/internal/ui"
	"github.com/spf13/cobra"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite without asking")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Replace the list with a sample set of MCP servers",
	Long: `Overwrite the config with a starter set of 7 MCP servers (supabase, context7,
playwright, sequential-thinking, memory, filesystem, github).

On a terminal you are asked before an existing list is replaced.`,
	Example: `  mcpm init
  mcpm init --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	// Skip confirmation for --json and non-TTY runs.
	if !initForce && !jsonout.Enabled && isInteractive() {
		if existing, err := store.Load(); err == nil && len(existing) > 0 {
			fmt.Fprintf(jsonout.MsgOut(), "Replace %d configured MCPs with the sample set? [y/N] ", len(existing))
			if !readYesNo(bufio.NewScanner(cmd.InOrStdin()), false) {
				fmt.Fprintln(jsonout.MsgOut(), "Cancelled.")
				return nil
			}
		}
	}

	samples := mcpstore.Samples()
	if err := store.Replace(samples); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if jsonout.Enabled {
		return jsonout.Write(struct {
			Action string            `json:"action"`
			Config string            `json:"config"`
			Mcps   []mcpstore.Record `json:"mcps"`
		}{Action: "initialized", Config: store.Path(), Mcps: samples})
	}

	fmt.Fprintln(jsonout.MsgOut(), ui.Success(fmt.Sprintf("Wrote %d sample MCPs to %s", len(samples), store.Path())))
	fmt.Fprintln(jsonout.MsgOut(), ui.Dim("Edit the github token before running: mcpm add-all"))
	return nil
}
