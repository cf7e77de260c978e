package tui

import "github.com/charmbracelet/lipgloss"

// Adaptive color palette, Light/Dark.
var (
	colorAccent = lipgloss.AdaptiveColor{Light: "63", Dark: "63"}   // muted indigo
	colorSubtle = lipgloss.AdaptiveColor{Light: "243", Dark: "241"} // gray
	colorText   = lipgloss.AdaptiveColor{Light: "235", Dark: "252"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "203"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "37", Dark: "75"}
	colorBorder = lipgloss.AdaptiveColor{Light: "250", Dark: "238"}
)

// Breadcrumb / title bar
var (
	breadcrumbSepStyle = lipgloss.NewStyle().
				Foreground(colorSubtle).
				Padding(0, 1)

	breadcrumbActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent)

	breadcrumbDimStyle = lipgloss.NewStyle().
				Foreground(colorSubtle)
)

// Form fields
var (
	labelStyle = lipgloss.NewStyle().
			Foreground(colorSubtle).
			Width(10)

	focusedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent).
				Width(10)

	requiredStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	previewStyle = lipgloss.NewStyle().
			Foreground(colorCyan)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)
)

// Help bar
var (
	helpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorSubtle)

	helpSepStyle = lipgloss.NewStyle().
			Foreground(colorSubtle).
			Padding(0, 1)
)

var errorStyle = lipgloss.NewStyle().
	Foreground(colorRed)
