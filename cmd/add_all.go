package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/protocollar/mcpm/internal/batch"
	"github.com/protocollar/mcpm/internal/claude"
	"github.com/protocollar/mcpm/internal/jsonout"
	"github.com/protocollar/mcpm/internal/ui"
	"github.com/spf13/cobra"
)

var (
	addAllDryRun bool
	addAllDelay  time.Duration
	addAllOnly   string
)

// registrar is swapped out in tests.
var registrar claude.Registrar = claude.NewExecRegistrar()

func init() {
	addAllCmd.Flags().BoolVar(&addAllDryRun, "dry-run", false, "print the claude commands without running them")
	addAllCmd.Flags().DurationVar(&addAllDelay, "delay", batch.DefaultDelay, "pause between registrations")
	addAllCmd.Flags().StringVar(&addAllOnly, "only", "", "only register servers whose name matches this glob")
	rootCmd.AddCommand(addAllCmd)
}

var addAllCmd = &cobra.Command{
	Use:   "add-all",
	Short: "Register every configured MCP server with claude",
	Long: `Run "claude mcp add" once per configured server, in list order.

A failure is reported and the next server is tried; nothing is rolled back.
Servers with a type other than npx or env are skipped with a warning.`,
	Example: `  mcpm add-all
  mcpm add-all --dry-run
  mcpm add-all --only 'supa*' --delay 0`,
	Args: cobra.NoArgs,
	RunE: runAddAll,
}

func runAddAll(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	records, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if len(records) == 0 {
		if jsonout.Enabled {
			return jsonout.Write(batch.Summary{Results: []batch.Result{}})
		}
		fmt.Fprintln(jsonout.MsgOut(), "No MCPs configured. Add one with: mcpm add (or mcpm init for samples)")
		return nil
	}

	if !addAllDryRun {
		if err := claude.Available(); err != nil {
			fmt.Fprintln(os.Stderr, ui.Warn(err.Error()))
		}
	}

	out := jsonout.MsgOut()
	if addAllDryRun && !jsonout.Enabled {
		out = jsonout.Stdout()
	}
	sum, err := batch.Run(records, registrar, batch.Options{
		Delay:  addAllDelay,
		DryRun: addAllDryRun,
		Filter: addAllOnly,
		Out:    out,
		Warn:   os.Stderr,
	})
	if err != nil {
		return err
	}

	if jsonout.Enabled {
		return jsonout.Write(sum)
	}
	return nil
}
