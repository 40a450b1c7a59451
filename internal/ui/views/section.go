package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SectionRenderer handles rendering of profile section headers and the
// flat profile rows on the profiles tab.
type SectionRenderer struct {
	styles *Styles
}

// NewSectionRenderer creates a new section renderer
func NewSectionRenderer(styles *Styles) *SectionRenderer {
	return &SectionRenderer{styles: styles}
}

// SetStyles swaps the style set, used on theme changes
func (s *SectionRenderer) SetStyles(styles *Styles) {
	s.styles = styles
}

// RenderHeader renders a collapsible profile section header on the item tabs
func (s *SectionRenderer) RenderHeader(name string, count int, expanded, underCursor, fullySelected bool, width int) string {
	arrow := "▶"
	if expanded {
		arrow = "▼"
	}
	line := fmt.Sprintf("%s %s (%d)", arrow, name, count)

	var style lipgloss.Style
	switch {
	case underCursor && fullySelected:
		style = lipgloss.NewStyle().Background(lipgloss.Color("33"))
	case underCursor:
		style = s.styles.CursorBg
	case fullySelected:
		style = lipgloss.NewStyle().Background(lipgloss.Color("240"))
	default:
		return line
	}
	if width > 0 {
		if pad := width - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
	}
	return style.Render(line)
}

// RenderProfileSummary renders one row of the profiles tab
func (s *SectionRenderer) RenderProfileSummary(name string, count int,
	underCursor, batchMode, selected bool) string {
	var parts []string
	if batchMode {
		box := "[ ]"
		style := lipgloss.NewStyle()
		if selected {
			box = "[x]"
			style = s.styles.Selected
		}
		if underCursor {
			style = style.Background(s.styles.CursorBg.GetBackground())
		}
		parts = append(parts, style.Render(box), " ")
	}

	nameStyle := lipgloss.NewStyle().Bold(true)
	if underCursor {
		nameStyle = nameStyle.Background(s.styles.CursorBg.GetBackground())
	}
	parts = append(parts, nameStyle.Render(name))

	meta := s.styles.Dim
	if underCursor {
		meta = meta.Background(s.styles.CursorBg.GetBackground())
	}
	parts = append(parts, meta.Render(fmt.Sprintf(" (%d items)", count)))

	return strings.Join(parts, "")
}
