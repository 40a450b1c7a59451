package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	Confirm       lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Filter        lipgloss.Style
	InfoBox       lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Sidebar       lipgloss.Style
	Scroll        lipgloss.Style
	CursorBg      lipgloss.Style
	Selected      lipgloss.Style
	BatchBadge    lipgloss.Style
	StateError    lipgloss.Style
	StateWarning  lipgloss.Style
	StateDisabled lipgloss.Style
	StateSuccess  lipgloss.Style
	StateBusy     lipgloss.Style
}

// NewStyles creates the style set for a theme ("dark" or "light")
func NewStyles(theme string) *Styles {
	p := darkPalette
	if theme == "light" {
		p = lightPalette
	}

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.title)).
			MarginBottom(1),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.tabActive)).
			Underline(true),
		TabInactive: lipgloss.NewStyle().Foreground(lipgloss.Color(p.dim)),
		Confirm:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.warning)),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.dim)).
			MarginTop(1),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color(p.warning)),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color(p.dim)),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color(p.dim)).
			PaddingRight(2).
			MarginRight(2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color(p.dim)).Italic(true),
		CursorBg:      lipgloss.NewStyle().Background(lipgloss.Color(p.cursorBg)),
		Selected:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.tabActive)),
		BatchBadge:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.batch)),
		StateError:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.errorFg)),
		StateWarning:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.warning)),
		StateDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color(p.dim)).Strikethrough(true),
		StateSuccess:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.success)),
		StateBusy:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.busy)),
	}
}

type palette struct {
	title     string
	tabActive string
	dim       string
	warning   string
	errorFg   string
	success   string
	busy      string
	batch     string
	cursorBg  string
}

var darkPalette = palette{
	title:     "99",
	tabActive: "39",
	dim:       "241",
	warning:   "214",
	errorFg:   "203",
	success:   "78",
	busy:      "51",
	batch:     "212",
	cursorBg:  "238",
}

var lightPalette = palette{
	title:     "55",
	tabActive: "26",
	dim:       "245",
	warning:   "130",
	errorFg:   "160",
	success:   "28",
	busy:      "31",
	batch:     "125",
	cursorBg:  "254",
}

// ProtocolColor returns the badge color for a node protocol
func ProtocolColor(protocol string) string {
	switch protocol {
	case "vmess":
		return "39"
	case "vless":
		return "78"
	case "trojan":
		return "203"
	case "ss":
		return "214"
	default:
		return "241"
	}
}
