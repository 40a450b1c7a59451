package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"subgrip/internal/ui/input/types"
)

type ConfirmMode struct {
	profile string // non-empty when a profile deletion is pending
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "delete-confirm"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	// Capture the target when entering the mode. A selection wins over
	// the profile row under the cursor.
	m.profile = ""
	if !ctx.HasSelection() && ctx.IsOnProfile() {
		m.profile = ctx.CurrentProfileName()
	}
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "n", "N":
		// Cancel and return to normal mode
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "y", "Y":
		// Confirm deletion
		if m.profile != "" {
			return []types.Action{
				types.DeleteProfileAction{Name: m.profile},
				types.ChangeModeAction{Mode: types.ModeNormal},
			}, true
		}
		return []types.Action{
			types.DeleteItemsAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	return nil, false
}

// PendingProfile returns the profile queued for deletion, if any
func (m *ConfirmMode) PendingProfile() string {
	return m.profile
}
