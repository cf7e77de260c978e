package cmd

import (
	"fmt"

	"github.com/protocollar/mcpm/internal/jsonout"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect mcpm's configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	if jsonout.Enabled {
		return jsonout.Write(struct {
			Path string `json:"path"`
		}{Path: store.Path()})
	}
	fmt.Fprintln(jsonout.Stdout(), store.Path())
	return nil
}
