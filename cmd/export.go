package cmd

import (
	"fmt"

	"github.com/protocollar/mcpm/internal/jsonout"
	"github.com/protocollar/mcpm/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [filename]",
	Short: "Copy the config to a file",
	Long: `Copy the config file as-is. Without a filename the copy is written to
mcp_export_<YYYYMMDD_HHMMSS>.json in the current directory.`,
	Example: `  mcpm export
  mcpm export backup.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	dst := ""
	if len(args) > 0 {
		dst = args[0]
	}
	store, err := openStore()
	if err != nil {
		return err
	}

	path, err := store.Export(dst)
	if err != nil {
		return err
	}

	if jsonout.Enabled {
		return jsonout.Write(struct {
			Action string `json:"action"`
			Path   string `json:"path"`
		}{Action: "exported", Path: path})
	}
	fmt.Fprintln(jsonout.MsgOut(), ui.Success(fmt.Sprintf("Exported to %s", path)))
	return nil
}
