// Package ui holds console styling and terminal detection shared by commands.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Adaptive palette, Light/Dark.
var (
	colorAccent = lipgloss.AdaptiveColor{Light: "63", Dark: "63"}
	colorSubtle = lipgloss.AdaptiveColor{Light: "243", Dark: "241"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "34", Dark: "78"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "203"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "37", Dark: "75"}
)

var (
	successStyle = lipgloss.NewStyle().Foreground(colorGreen)
	failureStyle = lipgloss.NewStyle().Foreground(colorRed)
	warnStyle    = lipgloss.NewStyle().Foreground(colorYellow)
	dimStyle     = lipgloss.NewStyle().Foreground(colorSubtle)
	nameStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
)

// Success renders a "✓ msg" line body.
func Success(msg string) string { return successStyle.Render("✓ " + msg) }

// Failure renders a "✗ msg" line body.
func Failure(msg string) string { return failureStyle.Render("✗ " + msg) }

// Warn renders a "! msg" line body.
func Warn(msg string) string { return warnStyle.Render("! " + msg) }

func Dim(s string) string    { return dimStyle.Render(s) }
func Name(s string) string   { return nameStyle.Render(s) }
func Header(s string) string { return headerStyle.Render(s) }

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

// StdoutIsTerminal reports whether stdout is a terminal.
func StdoutIsTerminal() bool {
	return isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
