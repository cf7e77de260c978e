package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/protocollar/mcpm/internal/exitcode"
	"github.com/protocollar/mcpm/internal/jsonout"
	"github.com/protocollar/mcpm/internal/mcpstore"
	"github.com/protocollar/mcpm/internal/tui"
	"github.com/protocollar/mcpm/internal/ui"
	"github.com/spf13/cobra"
)

var (
	addName    string
	addType    string
	addPath    string
	addOptions string
)

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "server name")
	addCmd.Flags().StringVar(&addType, "type", "", "launch type: npx or env")
	addCmd.Flags().StringVar(&addPath, "path", "", "npm package (npx) or KEY=VALUE (env)")
	addCmd.Flags().StringVar(&addOptions, "options", "", "extra arguments appended to the command")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an MCP server to the list",
	Long: `Add an MCP server to the list. Fields not given as flags are prompted for:
an interactive form on a terminal, plain line prompts otherwise.

Types:
  npx   path is an npm package, run as: npx -y @<path> [options]
  env   path is KEY=VALUE, run as:      env <path> [options]`,
	Example: `  mcpm add
  mcpm add --name context7 --type npx --path upstash/context7-mcp@latest
  mcpm add --name github --type env --path GITHUB_PERSONAL_ACCESS_TOKEN=xxx \
    --options "npx -y @modelcontextprotocol/server-github"`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	answers := tui.Answers{Name: addName, Type: addType, Path: addPath, Options: addOptions}
	var rec mcpstore.Record
	switch {
	case answers.Name != "" && answers.Type != "" && answers.Path != "":
		rec, err = mcpstore.BuildRecord(answers.Name, answers.Type, answers.Path, answers.Options)
	case !jsonout.Enabled && isInteractive():
		var r *mcpstore.Record
		r, err = tui.RunAddForm(answers)
		if errors.Is(err, tui.ErrCancelled) {
			fmt.Fprintln(jsonout.MsgOut(), "Cancelled.")
			return nil
		}
		if r != nil {
			rec = *r
		}
	default:
		rec, err = promptRecord(cmd.InOrStdin(), jsonout.MsgOut(), answers)
	}
	if err != nil {
		var ve *mcpstore.ValidationError
		if errors.As(err, &ve) {
			return exitcode.Wrap("validation_error", err)
		}
		return err
	}

	if err := store.Append(rec); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	if jsonout.Enabled {
		return jsonout.Write(struct {
			Action string          `json:"action"`
			Mcp    mcpstore.Record `json:"mcp"`
		}{Action: "added", Mcp: rec})
	}

	fmt.Fprintln(jsonout.MsgOut(), ui.Success(fmt.Sprintf("Added %s", rec.Name)))
	if !rec.Kind.Known() {
		fmt.Fprintln(jsonout.MsgOut(), ui.Warn(fmt.Sprintf("type %q is not npx or env; add-all will skip it", rec.Kind)))
	}
	fmt.Fprintln(jsonout.MsgOut(), ui.Dim("Register it with: mcpm add-all"))
	return nil
}

// promptRecord asks for each missing field on in and validates the answers.
func promptRecord(in io.Reader, out io.Writer, a tui.Answers) (mcpstore.Record, error) {
	scanner := bufio.NewScanner(in)
	name := ask(scanner, out, a.Name, "MCP name", "")
	kind := ask(scanner, out, a.Type, "Type (npx/env)", string(mcpstore.KindNpx))
	path := ask(scanner, out, a.Path, "Path (package or KEY=VALUE)", "")
	options := a.Options
	if options == "" {
		options = ask(scanner, out, "", "Options (optional)", "")
	}
	return mcpstore.BuildRecord(name, kind, path, options)
}
