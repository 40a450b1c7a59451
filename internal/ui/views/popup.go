package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{styles: styles}
}

// SetStyles swaps the style set, used on theme changes
func (pr *PopupRenderer) SetStyles(styles *Styles) {
	pr.styles = styles
}

// RenderPopupOverlay renders a popup centered over desaturated main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	if width > 0 && modalW > width-4 {
		styledPopup = popupStyle.Width(width - 4).Render(popupContent)
		modalW = lipgloss.Width(styledPopup)
	}

	base := strings.Split(desaturateANSI(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}

	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - modalH) / 2
	if y < 0 {
		y = 0
	}

	// Splice the popup lines into the plain base. The base was stripped
	// of escape codes above, so byte positions match columns closely
	// enough for box placement.
	popupLines := strings.Split(styledPopup, "\n")
	for i, pl := range popupLines {
		row := y + i
		if row >= len(base) {
			break
		}
		pad := x - lipgloss.Width(base[row])
		if pad > 0 {
			base[row] += strings.Repeat(" ", pad)
		}
		if lipgloss.Width(base[row]) > x {
			base[row] = truncateToWidth(base[row], x)
		}
		base[row] += pl
	}

	return strings.Join(base, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, len(lines))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		out[i] = dim.Render(ansiRE.ReplaceAllString(line, ""))
	}
	return strings.Join(out, "\n")
}

// truncateToWidth cuts a rendered line down to the given display width
func truncateToWidth(s string, width int) string {
	plain := ansiRE.ReplaceAllString(s, "")
	runes := []rune(plain)
	if len(runes) <= width {
		return plain
	}
	return string(runes[:width])
}
