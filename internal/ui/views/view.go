package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"subgrip/internal/domain"
	"subgrip/internal/ui/input/modes"
	"subgrip/internal/ui/services/query"
)

// SidebarEntry is one profile line in the sidebar
type SidebarEntry struct {
	Name   string
	Count  int
	Active bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	ActiveTab    domain.ItemKind
	SubCount     int
	NodeCount    int
	ProfileCount int

	Rows           []query.Row
	Expanded       map[string]bool // profile name -> section expanded
	FullySelected  map[string]bool // profile name -> every member selected
	Cursor         int
	ViewportOffset int
	ViewportHeight int

	BatchMode     bool
	Selected      map[string]bool
	SelectedCount int

	Refreshing map[string]bool
	Progress   domain.RefreshProgress
	Loading    bool
	LoadingState  string
	StatusMessage string
	FilterQuery   string

	ShowInfo    bool
	InfoContent string

	Sidebar     []SidebarEntry
	ShowSidebar bool

	TextInput       string
	InputMode       string
	SortOptionIndex int
	ConfirmPrompt   string

	ServerURL string
	HelpModel help.Model
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	itemRender    *ItemRenderer
	sectionRender *SectionRenderer
	popupRender   *PopupRenderer
}

// NewRenderer creates a new renderer for a theme
func NewRenderer(theme string, showTimestamps bool) *Renderer {
	styles := NewStyles(theme)
	return &Renderer{
		styles:        styles,
		itemRender:    NewItemRenderer(styles, showTimestamps),
		sectionRender: NewSectionRenderer(styles),
		popupRender:   NewPopupRenderer(styles),
	}
}

// SetTheme rebuilds the style set for a theme change
func (r *Renderer) SetTheme(theme string) {
	r.styles = NewStyles(theme)
	r.itemRender.SetStyles(r.styles)
	r.sectionRender.SetStyles(r.styles)
	r.popupRender.SetStyles(r.styles)
}

// SetShowTimestamps toggles refresh timestamps on subscription rows
func (r *Renderer) SetShowTimestamps(show bool) {
	r.itemRender.showTimestamps = show
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n")
	content.WriteString(r.renderTabLine(state))
	content.WriteString("\n")

	if state.ConfirmPrompt != "" {
		content.WriteString(r.styles.Confirm.Render(state.ConfirmPrompt))
		content.WriteString("\n")
	} else if state.InputMode != "" && state.InputMode != "normal" {
		if state.InputMode == "sort" {
			content.WriteString(r.renderSortOptions(state))
		} else {
			content.WriteString(state.TextInput)
		}
		content.WriteString("\n\n")
	}

	var mainContent string
	switch {
	case state.Loading:
		label := state.LoadingState
		if label == "" {
			label = "Loading..."
		}
		mainContent = r.styles.Dim.Render(label)
	case len(state.Rows) == 0 && state.FilterQuery != "":
		mainContent = r.styles.Dim.Render("Nothing matches the filter.")
	case len(state.Rows) == 0:
		mainContent = r.styles.Dim.Render(r.emptyMessage(state.ActiveTab))
	default:
		mainContent = r.renderRowList(state)
	}

	if state.ShowSidebar && len(state.Sidebar) > 0 {
		sidebar := r.renderSidebar(state)
		mainContent = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
	}
	content.WriteString(mainContent)

	footer := r.renderFooter(state)
	if footer != "" {
		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22
		}
		footerLines := strings.Count(footer, "\n") + 1
		if pad := availableLines - currentLines - footerLines; pad > 0 {
			content.WriteString(strings.Repeat("\n", pad))
		}
		content.WriteString("\n")
		content.WriteString(footer)
	}

	finalContent := r.styles.Main.MaxHeight(state.Height).Render(content.String())

	if state.ShowInfo && state.InfoContent != "" {
		return r.popupRender.RenderPopupOverlay(finalContent, state.InfoContent, state.Height, state.Width, r.styles.InfoBox)
	}

	return finalContent
}

// renderTitleLine builds the logo line with right-aligned indicators
func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("subgrip")
	if state.ServerURL != "" {
		logo += r.styles.Dim.Render(" " + state.ServerURL)
	}

	var indicators []string
	if state.Progress.InFlight {
		indicators = append(indicators,
			fmt.Sprintf("↻ Refreshing %d/%d", state.Progress.Completed, state.Progress.Total))
	} else if len(state.Refreshing) > 0 {
		indicators = append(indicators, fmt.Sprintf("↻ Refreshing %d", len(state.Refreshing)))
	}

	rightContent := ""
	if len(indicators) > 0 {
		rightContent = r.styles.Dim.Render(strings.Join(indicators, " | "))
	}
	if state.FilterQuery != "" {
		filterText := r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", state.FilterQuery))
		if rightContent != "" {
			rightContent += "  " + filterText
		} else {
			rightContent = filterText
		}
	}
	if state.BatchMode {
		badge := r.styles.BatchBadge.Render(fmt.Sprintf("[BATCH %d]", state.SelectedCount))
		if rightContent != "" {
			rightContent += "  " + badge
		} else {
			rightContent = badge
		}
	}

	if rightContent == "" {
		return logo
	}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	pad := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if pad > 0 {
		return logo + strings.Repeat(" ", pad) + rightContent
	}
	return logo + "  " + rightContent
}

// renderTabLine builds the tab bar with item counts
func (r *Renderer) renderTabLine(state ViewState) string {
	tabs := []struct {
		kind  domain.ItemKind
		label string
	}{
		{domain.KindSubscription, fmt.Sprintf("1:Subscriptions (%d)", state.SubCount)},
		{domain.KindNode, fmt.Sprintf("2:Nodes (%d)", state.NodeCount)},
		{domain.KindProfile, fmt.Sprintf("3:Profiles (%d)", state.ProfileCount)},
	}

	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		if tab.kind == state.ActiveTab {
			parts = append(parts, r.styles.TabActive.Render(tab.label))
		} else {
			parts = append(parts, r.styles.TabInactive.Render(tab.label))
		}
	}
	return strings.Join(parts, "  ")
}

// renderRowList renders the visible slice of the active tab's rows
func (r *Renderer) renderRowList(state ViewState) string {
	visibleLines := make([]string, 0, state.ViewportHeight)

	for i, row := range state.Rows {
		if i < state.ViewportOffset {
			continue
		}
		underCursor := i == state.Cursor

		var line string
		switch row.Kind {
		case query.RowProfileHeader:
			line = r.sectionRender.RenderHeader(
				row.Profile, row.Count,
				state.Expanded[row.Profile],
				underCursor,
				state.FullySelected[row.Profile],
				state.Width-4,
			)
		case query.RowSubscription:
			indent := 0
			if row.Profile != "" {
				indent = 1
			}
			line = r.itemRender.RenderSubscription(
				row.Sub, indent, underCursor, state.BatchMode,
				state.Selected[row.Sub.ID],
				state.Refreshing[row.Sub.ID],
			)
		case query.RowNode:
			indent := 0
			if row.Profile != "" {
				indent = 1
			}
			line = r.itemRender.RenderNode(
				row.Node, indent, underCursor, state.BatchMode,
				state.Selected[row.Node.ID],
			)
		case query.RowProfileSummary:
			line = r.sectionRender.RenderProfileSummary(
				row.Profile, row.Count, underCursor, state.BatchMode,
				state.Selected[row.Profile],
			)
		}
		visibleLines = append(visibleLines, line)
	}

	total := len(state.Rows)
	effectiveHeight := state.ViewportHeight
	needsTop := state.ViewportOffset > 0
	needsBottom := total > state.ViewportOffset+state.ViewportHeight
	if needsTop {
		effectiveHeight--
	}
	if needsBottom {
		effectiveHeight--
	}
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}

	var lines []string
	if needsTop {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", state.ViewportOffset)))
	}
	for i := 0; i < effectiveHeight && i < len(visibleLines); i++ {
		lines = append(lines, visibleLines[i])
	}
	if needsBottom {
		below := total - (state.ViewportOffset + effectiveHeight)
		if below < 0 {
			below = 0
		}
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}

	return strings.Join(lines, "\n")
}

// renderSidebar renders the profile overview column
func (r *Renderer) renderSidebar(state ViewState) string {
	lines := make([]string, 0, len(state.Sidebar)+1)
	lines = append(lines, r.styles.Dim.Render("Profiles"))
	for _, entry := range state.Sidebar {
		line := fmt.Sprintf("%s %d", entry.Name, entry.Count)
		if entry.Active {
			line = r.styles.Selected.Render(line)
		}
		lines = append(lines, line)
	}
	return r.styles.Sidebar.Render(strings.Join(lines, "\n"))
}

// renderFooter builds the status line and the key hint line
func (r *Renderer) renderFooter(state ViewState) string {
	var lines []string
	if state.StatusMessage != "" {
		lines = append(lines, r.styles.Status.Render(state.StatusMessage))
	}
	if state.BatchMode && state.SelectedCount > 0 {
		lines = append(lines, r.styles.Selected.Render(fmt.Sprintf("%d selected", state.SelectedCount)))
	}
	if !state.ShowInfo {
		lines = append(lines, r.styles.Help.Render("Press ? for help"))
	}
	return strings.Join(lines, "\n")
}

// renderSortOptions renders the sort mode picker line
func (r *Renderer) renderSortOptions(state ViewState) string {
	if state.SortOptionIndex < 0 || state.SortOptionIndex >= len(modes.SortOptions) {
		return ""
	}
	option := modes.SortOptions[state.SortOptionIndex]
	sortLine := fmt.Sprintf("Sort by: %s - %s", option.Name, option.Description)
	helpLine := r.styles.Dim.Render("↑/↓ or j/k to change • Enter to accept • Esc to cancel")
	return sortLine + "\n" + helpLine
}

func (r *Renderer) emptyMessage(tab domain.ItemKind) string {
	switch tab {
	case domain.KindNode:
		return "No nodes. Press o to add one manually."
	case domain.KindProfile:
		return "No profiles. Press N to create one."
	default:
		return "No subscriptions. Press o to add one."
	}
}
