package cmd

import (
	"fmt"
	"os"

	"github.com/protocollar/mcpm/internal/exitcode"
	"github.com/protocollar/mcpm/internal/jsonout"
	"github.com/protocollar/mcpm/internal/mcpstore"
	"github.com/protocollar/mcpm/internal/ui"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	jsonFlag    bool
	conciseFlag bool
)

// isInteractive and stdoutIsTerminal are replaced in tests.
var (
	isInteractive    = ui.IsInteractive
	stdoutIsTerminal = ui.StdoutIsTerminal
)

var rootCmd = &cobra.Command{
	Use:   "mcpm",
	Short: "Manage the MCP servers you register with claude",
	Long: `mcpm keeps a list of MCP (Model Context Protocol) servers in a JSON file and
registers them with the claude CLI ("claude mcp add") in one go.

Run without arguments to list the configured servers.

The list lives in ~/.config/mcpm/mcps.json (override with --config or $MCPM_CONFIG).`,
	Example: `  mcpm init                 # start from the sample set
  mcpm add                  # add a server interactively
  mcpm add-all              # register every server with claude
  mcpm rm supabase          # remove a server`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		jsonout.Concise = conciseFlag
		jsonout.Configure(jsonFlag, stdoutIsTerminal())
	},
	RunE: runList,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $MCPM_CONFIG or ~/.config/mcpm/mcps.json)")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "output JSON")
	rootCmd.PersistentFlags().BoolVar(&conciseFlag, "concise", false, "with --json, output names only")
}

// RootCommand returns the root command.
func RootCommand() *cobra.Command {
	return rootCmd
}

// openStore returns the store for --config, $MCPM_CONFIG, or the default path.
func openStore() (*mcpstore.Store, error) {
	if configPath != "" {
		return mcpstore.New(configPath), nil
	}
	p, err := mcpstore.DefaultPath()
	if err != nil {
		return nil, err
	}
	return mcpstore.New(p), nil
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	c, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}

	code, exit := exitcode.Classify(err)
	if jsonout.Enabled {
		jsonout.WriteError(code, err.Error(), exit)
		os.Exit(exit)
	}

	fmt.Fprintln(os.Stderr, ui.Failure("Error: "+err.Error()))
	if code == "usage" {
		if c == nil {
			c = rootCmd
		}
		fmt.Fprintln(os.Stderr)
		fmt.Fprint(os.Stderr, c.UsageString())
	}
	os.Exit(exit)
}
