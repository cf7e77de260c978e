package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderTitledPanel renders content inside a rounded-border box with the
// title embedded in the top border.
//
//	╭─ Title ──────────────────────╮
//	│  content here                │
//	╰──────────────────────────────╯
func renderTitledPanel(title, content string, width int) string {
	// Left/right border and one column of padding on each side.
	innerWidth := width - 4
	if innerWidth < 10 {
		innerWidth = 10
		width = innerWidth + 4
	}

	borderFg := lipgloss.NewStyle().Foreground(colorBorder)
	titleRendered := breadcrumbActiveStyle.Render(title)

	var top strings.Builder
	top.WriteString(borderFg.Render("╭─ "))
	top.WriteString(titleRendered)
	top.WriteString(borderFg.Render(" "))

	// lipgloss.Width ignores ANSI sequences.
	used := 3 + lipgloss.Width(titleRendered) + 1
	remaining := width - used - 1
	if remaining < 0 {
		remaining = 0
	}
	top.WriteString(borderFg.Render(strings.Repeat("─", remaining) + "╮"))

	var body strings.Builder
	for _, line := range strings.Split(content, "\n") {
		pad := innerWidth - lipgloss.Width(line)
		if pad < 0 {
			pad = 0
		}
		body.WriteString(borderFg.Render("│"))
		body.WriteString(" ")
		body.WriteString(line)
		body.WriteString(strings.Repeat(" ", pad))
		body.WriteString(" ")
		body.WriteString(borderFg.Render("│"))
		body.WriteString("\n")
	}

	bottom := borderFg.Render("╰" + strings.Repeat("─", width-2) + "╯")
	return top.String() + "\n" + body.String() + bottom
}

type helpItem struct {
	key  string
	desc string
}

// renderHelpBar renders "key desc · key desc ..."
func renderHelpBar(items []helpItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, helpKeyStyle.Render(item.key)+" "+helpDescStyle.Render(item.desc))
	}
	sep := helpSepStyle.Render("·")
	return "  " + strings.Join(parts, " "+sep+" ")
}

// renderBreadcrumb renders "seg > seg > active" with the last segment bold.
func renderBreadcrumb(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	sep := breadcrumbSepStyle.Render(">")
	parts := make([]string, len(segments))
	for i, seg := range segments {
		if i == len(segments)-1 {
			parts[i] = breadcrumbActiveStyle.Render(seg)
		} else {
			parts[i] = breadcrumbDimStyle.Render(seg)
		}
	}
	return strings.Join(parts, sep)
}
