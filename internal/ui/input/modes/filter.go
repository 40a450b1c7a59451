package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"subgrip/internal/ui/input/types"
)

type FilterMode struct {
	TextInputMode
	prior string // filter that was active before editing started
}

func NewFilterMode(ti *textinput.Model) *FilterMode {
	return &FilterMode{
		TextInputMode: NewTextInputMode(types.ModeFilter, "filter", "Filter: ", ti),
	}
}

// Enter overrides the base Enter to expand all sections so matches in
// collapsed profiles become visible.
func (m *FilterMode) Enter(ctx types.Context) []types.Action {
	m.prior = ctx.FilterQuery()
	actions := m.TextInputMode.Enter(ctx)
	return append(actions, types.ExpandAllProfilesAction{})
}

// HandleKey overrides esc to restore the filter that was active before
func (m *FilterMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.String() == "esc" {
		return []types.Action{
			types.SetFilterAction{Query: m.prior},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
