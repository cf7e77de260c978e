package cmd

import (
	"fmt"

	"github.com/protocollar/mcpm/internal/jsonout"
	"github.com/protocollar/mcpm/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <filename>",
	Short: "Replace the config with a file's contents",
	Long: `Replace the config with the given JSON file. The file is not merged: it
becomes the whole list. The previous config is saved next to it as
<config>.backup.`,
	Example: `  mcpm import mcp_export_20260101_120000.json`,
	Args:    cobra.ExactArgs(1),
	RunE:    runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	src := args[0]
	store, err := openStore()
	if err != nil {
		return err
	}

	backedUp, err := store.Import(src)
	if err != nil {
		return err
	}

	if jsonout.Enabled {
		v := struct {
			Action string `json:"action"`
			Source string `json:"source"`
			Backup string `json:"backup,omitempty"`
		}{Action: "imported", Source: src}
		if backedUp {
			v.Backup = store.BackupPath()
		}
		return jsonout.Write(v)
	}

	if backedUp {
		fmt.Fprintln(jsonout.MsgOut(), ui.Dim(fmt.Sprintf("Previous config saved to %s", store.BackupPath())))
	}
	fmt.Fprintln(jsonout.MsgOut(), ui.Success(fmt.Sprintf("Imported %s", src)))
	return nil
}
