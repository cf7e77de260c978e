package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/protocollar/mcpm/internal/exitcode"
	"github.com/protocollar/mcpm/internal/jsonout"
	"github.com/protocollar/mcpm/internal/shellhook"
	"github.com/protocollar/mcpm/internal/ui"
	"github.com/spf13/cobra"
)

var setupBinDir string

func init() {
	setupAutoCmd.Flags().StringVar(&setupBinDir, "bin-dir", "", "directory for the claude-mcp launcher (default ~/.local/bin)")
	rootCmd.AddCommand(setupAutoCmd)
}

var setupAutoCmd = &cobra.Command{
	Use:   "setup-auto",
	Short: "Install a claude-mcp command that loads all MCPs before starting claude",
	Long: `Install two ways to start claude with every configured MCP registered:

  - a claude-mcp shell function appended to your shell profile (zsh or bash)
  - a standalone claude-mcp launcher script (default ~/.local/bin)

Running it again does not duplicate the profile entry.`,
	Example: `  mcpm setup-auto
  mcpm setup-auto --bin-dir ~/bin`,
	Args: cobra.NoArgs,
	RunE: runSetupAuto,
}

type setupResult struct {
	Shell          string `json:"shell"`
	Profile        string `json:"profile"`
	ProfileUpdated bool   `json:"profile_updated"`
	Launcher       string `json:"launcher"`
}

func runSetupAuto(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}
	binary := "mcpm"
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		binary = exe
	}

	res, err := setupAuto(os.Getenv, home, setupBinDir, binary)
	if err != nil {
		return err
	}

	if jsonout.Enabled {
		return jsonout.Write(res)
	}
	printSetupResult(jsonout.MsgOut(), res)
	return nil
}

// setupAuto installs the profile hook and launcher for the detected shell.
func setupAuto(getenv func(string) string, home, binDir, binary string) (*setupResult, error) {
	sh, err := shellhook.Detect(getenv, home)
	if err != nil {
		return nil, exitcode.Wrap("unsupported_shell", err)
	}
	updated, err := shellhook.InstallProfile(sh.Profile, binary)
	if err != nil {
		return nil, err
	}
	if binDir == "" {
		binDir = shellhook.DefaultBinDir(home)
	}
	launcher, err := shellhook.InstallLauncher(binDir, binary)
	if err != nil {
		return nil, err
	}
	return &setupResult{Shell: sh.Name, Profile: sh.Profile, ProfileUpdated: updated, Launcher: launcher}, nil
}

func printSetupResult(w io.Writer, res *setupResult) {
	if res.ProfileUpdated {
		fmt.Fprintln(w, ui.Success(fmt.Sprintf("Added %s function to %s", shellhook.LauncherName, res.Profile)))
	} else {
		fmt.Fprintln(w, ui.Dim(fmt.Sprintf("%s already set up in %s", shellhook.LauncherName, res.Profile)))
	}
	fmt.Fprintln(w, ui.Success(fmt.Sprintf("Wrote launcher %s", res.Launcher)))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Reload your shell (source %s), then start claude with: %s\n", res.Profile, shellhook.LauncherName)
}
