package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// buildHelpText renders the key reference shown in the pager
func buildHelpText() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	entry := func(key, desc string) string {
		return fmt.Sprintf("  %-18s %s\n", keyStyle.Render(key), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("subgrip"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(entry("↑/↓, j/k", "Move up/down"))
	help.WriteString(entry("PgUp/PgDn", "Page up/down"))
	help.WriteString(entry("gg/G", "Go to top/bottom"))
	help.WriteString(entry("Tab/Shift+Tab", "Next/previous tab"))
	help.WriteString(entry("1/2/3", "Subscriptions / Nodes / Profiles tab"))
	help.WriteString(entry("h/l, z", "Collapse/expand/toggle profile section"))

	help.WriteString(sectionStyle.Render("Batch selection"))
	help.WriteString("\n")
	help.WriteString(entry("Space", "Toggle selection (enters batch mode)"))
	help.WriteString(entry("b", "Toggle batch mode"))
	help.WriteString(entry("a", "Select all visible"))
	help.WriteString(entry("i", "Invert selection of visible"))
	help.WriteString(entry("u", "Deselect all"))
	help.WriteString(entry("Esc", "Leave batch mode, clear selection"))
	help.WriteString(entry("Space on header", "Select/deselect whole section"))

	help.WriteString(sectionStyle.Render("Items"))
	help.WriteString("\n")
	help.WriteString(entry("r", "Refresh selected subscriptions"))
	help.WriteString(entry("R", "Refresh all enabled (rename on profile rows)"))
	help.WriteString(entry("t", "Enable/disable"))
	help.WriteString(entry("d", "Delete (asks first)"))
	help.WriteString(entry("e", "Copy share links to clipboard"))
	help.WriteString(entry("p", "Preview share links in the pager"))
	help.WriteString(entry("m", "Move to profile"))
	help.WriteString(entry("o", "Add item on the current tab"))
	help.WriteString(entry("N", "New profile"))
	help.WriteString(entry("Enter, I", "Item details"))

	help.WriteString(sectionStyle.Render("Search & sort"))
	help.WriteString("\n")
	help.WriteString(entry("/", "Filter"))
	help.WriteString(entry("s", "Sort options"))
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Filter examples: state:on, state:error, proto:vmess, profile:work"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(entry("w", "Toggle sidebar"))
	help.WriteString(entry("T", "Toggle theme"))
	help.WriteString(entry("?", "This help"))
	help.WriteString(entry("q", "Quit"))

	return help.String()
}
