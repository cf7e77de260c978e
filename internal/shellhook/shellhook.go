// Package shellhook installs the "claude-mcp" helper that loads every
// configured MCP before starting claude.
package shellhook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	MarkerBegin = "# >>> mcpm auto-load >>>"
	MarkerEnd   = "# <<< mcpm auto-load <<<"

	// LauncherName is both the shell function and the standalone script name.
	LauncherName = "claude-mcp"
)

var ErrUnsupportedShell = errors.New("unsupported shell")

// Shell is a detected login shell and the profile it reads.
type Shell struct {
	Name    string
	Profile string
}

// Detect picks the shell flavour from the environment. Shell-local version
// variables win when exported; otherwise $SHELL decides.
func Detect(getenv func(string) string, home string) (Shell, error) {
	name := ""
	switch {
	case getenv("ZSH_VERSION") != "":
		name = "zsh"
	case getenv("BASH_VERSION") != "":
		name = "bash"
	default:
		name = filepath.Base(getenv("SHELL"))
	}

	switch name {
	case "zsh":
		return Shell{Name: name, Profile: filepath.Join(home, ".zshrc")}, nil
	case "bash":
		profile := ".bashrc"
		if runtime.GOOS == "darwin" {
			profile = ".bash_profile"
		}
		return Shell{Name: name, Profile: filepath.Join(home, profile)}, nil
	case "", ".":
		return Shell{}, fmt.Errorf("%w: $SHELL is not set", ErrUnsupportedShell)
	default:
		return Shell{}, fmt.Errorf("%w: %s (zsh and bash are supported)", ErrUnsupportedShell, name)
	}
}

// ProfileSnippet is the block appended to a shell profile.
func ProfileSnippet(binary string) string {
	return fmt.Sprintf(`
%s
%s() {
  %s add-all >/dev/null 2>&1
  command claude "$@"
}
%s
`, MarkerBegin, LauncherName, shellQuote(binary), MarkerEnd)
}

// LauncherScript is the standalone script written by InstallLauncher.
func LauncherScript(binary string) string {
	return fmt.Sprintf(`#!/bin/sh
# Generated by mcpm setup-auto. Registers all configured MCPs, then starts claude.
%s add-all >/dev/null 2>&1
exec claude "$@"
`, shellQuote(binary))
}

// InstallProfile appends the wrapper function to profile unless the marker is
// already present. It reports whether anything was written.
func InstallProfile(profile, binary string) (bool, error) {
	data, err := os.ReadFile(profile)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("reading %s: %w", profile, err)
	}
	if strings.Contains(string(data), MarkerBegin) {
		return false, nil
	}

	f, err := os.OpenFile(profile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", profile, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(ProfileSnippet(binary)); err != nil {
		return false, fmt.Errorf("writing %s: %w", profile, err)
	}
	return true, nil
}

// InstallLauncher writes the executable launcher into dir and returns its path.
// An existing launcher is overwritten.
func InstallLauncher(dir, binary string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	path := filepath.Join(dir, LauncherName)
	if err := os.WriteFile(path, []byte(LauncherScript(binary)), 0755); err != nil {
		return "", fmt.Errorf("writing launcher: %w", err)
	}
	// WriteFile keeps the old mode when the file already exists.
	if err := os.Chmod(path, 0755); err != nil {
		return "", fmt.Errorf("making launcher executable: %w", err)
	}
	return path, nil
}

// DefaultBinDir is where the launcher goes unless overridden.
func DefaultBinDir(home string) string {
	return filepath.Join(home, ".local", "bin")
}

func shellQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t'\"$`\\") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
