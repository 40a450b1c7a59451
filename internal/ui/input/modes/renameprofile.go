package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"subgrip/internal/ui/input/types"
)

type RenameProfileMode struct {
	textInput *textinput.Model
	oldName   string
}

func NewRenameProfileMode(ti *textinput.Model) *RenameProfileMode {
	return &RenameProfileMode{
		textInput: ti,
	}
}

func (m *RenameProfileMode) Name() string {
	return "rename-profile"
}

func (m *RenameProfileMode) Prompt() string {
	return "Rename profile to: "
}

func (m *RenameProfileMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Reset()
		m.textInput.Focus()
		// Pre-fill with the current profile name
		if name := ctx.CurrentProfileName(); name != "" {
			m.oldName = name
			m.textInput.SetValue(name)
			m.textInput.CursorEnd()
		}
	}
	return nil
}

func (m *RenameProfileMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
		m.textInput.Reset()
	}
	m.oldName = ""
	return nil
}

func (m *RenameProfileMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc":
		// Cancel and return to normal mode
		return []types.Action{
			types.CancelTextAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "enter":
		newName := ""
		if m.textInput != nil {
			newName = m.textInput.Value()
		}

		// Only rename if the name changed and is not empty
		if newName != "" && newName != m.oldName {
			return []types.Action{
				types.RenameProfileAction{OldName: m.oldName, NewName: newName},
				types.ChangeModeAction{Mode: types.ModeNormal},
			}, true
		}

		// Just cancel if no change
		return []types.Action{
			types.CancelTextAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	default:
		// Let the main handler update the text input
		return nil, false
	}
}
