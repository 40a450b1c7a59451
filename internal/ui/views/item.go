package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"subgrip/internal/domain"
)

// ItemRenderer handles rendering of subscription and node rows
type ItemRenderer struct {
	styles         *Styles
	showTimestamps bool
}

// NewItemRenderer creates a new item renderer
func NewItemRenderer(styles *Styles, showTimestamps bool) *ItemRenderer {
	return &ItemRenderer{
		styles:         styles,
		showTimestamps: showTimestamps,
	}
}

// SetStyles swaps the style set, used on theme changes
func (r *ItemRenderer) SetStyles(styles *Styles) {
	r.styles = styles
}

// RenderSubscription renders one subscription row
func (r *ItemRenderer) RenderSubscription(sub *domain.Subscription, indent int,
	underCursor, batchMode, selected, refreshing bool) string {
	if sub == nil {
		return ""
	}

	var parts []string
	if indent > 0 {
		parts = append(parts, strings.Repeat("  ", indent))
	}
	if batchMode {
		parts = append(parts, r.checkbox(selected, underCursor), " ")
	}

	parts = append(parts, r.subIcon(sub, refreshing, underCursor), " ")

	nameStyle := lipgloss.NewStyle()
	if !sub.Enabled {
		nameStyle = r.styles.StateDisabled
	}
	if underCursor {
		nameStyle = nameStyle.Background(r.styles.CursorBg.GetBackground())
	}
	parts = append(parts, nameStyle.Render(sub.Name))

	meta := fmt.Sprintf(" (%d nodes", sub.Status.NodeCount)
	if sub.Status.Delta != 0 {
		meta += fmt.Sprintf(", %+d", sub.Status.Delta)
	}
	meta += ")"
	parts = append(parts, r.withCursor(r.styles.Dim, underCursor).Render(meta))

	if r.showTimestamps && !sub.Status.RefreshedAt.IsZero() {
		stamp := " " + humanize.Time(sub.Status.RefreshedAt)
		parts = append(parts, r.withCursor(r.styles.Dim, underCursor).Render(stamp))
	}

	if sub.Status.Error != "" {
		parts = append(parts, " ", r.withCursor(r.styles.StateError, underCursor).Render("! "+sub.Status.Error))
	}

	return strings.Join(parts, "")
}

// RenderNode renders one node row
func (r *ItemRenderer) RenderNode(node *domain.Node, indent int,
	underCursor, batchMode, selected bool) string {
	if node == nil {
		return ""
	}

	var parts []string
	if indent > 0 {
		parts = append(parts, strings.Repeat("  ", indent))
	}
	if batchMode {
		parts = append(parts, r.checkbox(selected, underCursor), " ")
	}

	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ProtocolColor(node.Protocol)))
	if underCursor {
		badge = badge.Background(r.styles.CursorBg.GetBackground())
	}
	parts = append(parts, badge.Render(fmt.Sprintf("[%s]", node.Protocol)), " ")

	nameStyle := lipgloss.NewStyle()
	if !node.Enabled {
		nameStyle = r.styles.StateDisabled
	}
	if underCursor {
		nameStyle = nameStyle.Background(r.styles.CursorBg.GetBackground())
	}
	parts = append(parts, nameStyle.Render(node.Name))

	addr := fmt.Sprintf(" %s:%d", node.Address, node.Port)
	parts = append(parts, r.withCursor(r.styles.Dim, underCursor).Render(addr))

	if node.Source != "" {
		parts = append(parts, r.withCursor(r.styles.Dim, underCursor).Render(" (imported)"))
	}

	return strings.Join(parts, "")
}

func (r *ItemRenderer) checkbox(selected, underCursor bool) string {
	box := "[ ]"
	style := lipgloss.NewStyle()
	if selected {
		box = "[x]"
		style = r.styles.Selected
	}
	if underCursor {
		style = style.Background(r.styles.CursorBg.GetBackground())
	}
	return style.Render(box)
}

// subIcon picks the one-rune state indicator for a subscription
func (r *ItemRenderer) subIcon(sub *domain.Subscription, refreshing, underCursor bool) string {
	var icon string
	var style lipgloss.Style
	switch {
	case refreshing:
		icon, style = "⟳", r.styles.StateBusy
	case sub.Status.Error != "":
		icon, style = "✗", r.styles.StateError
	case !sub.Enabled:
		icon, style = "○", r.styles.StateWarning
	default:
		icon, style = "✓", r.styles.StateSuccess
	}
	if underCursor {
		style = style.Background(r.styles.CursorBg.GetBackground())
	}
	return style.Render(icon)
}

func (r *ItemRenderer) withCursor(style lipgloss.Style, underCursor bool) lipgloss.Style {
	if underCursor {
		return style.Background(r.styles.CursorBg.GetBackground())
	}
	return style
}
