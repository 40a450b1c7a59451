package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"subgrip/internal/ui/input/types"
)

type NewProfileMode struct {
	textInputMode TextInputMode
}

func NewNewProfileMode(ti *textinput.Model) *NewProfileMode {
	return &NewProfileMode{
		textInputMode: NewTextInputMode(types.ModeNewProfile, "new-profile", "Enter new profile name: ", ti),
	}
}

func (m *NewProfileMode) Name() string {
	return m.textInputMode.Name()
}

func (m *NewProfileMode) Prompt() string {
	return m.textInputMode.Prompt()
}

func (m *NewProfileMode) Enter(ctx types.Context) []types.Action {
	return m.textInputMode.Enter(ctx)
}

func (m *NewProfileMode) Exit(ctx types.Context) []types.Action {
	return m.textInputMode.Exit(ctx)
}

func (m *NewProfileMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// Let the base TextInputMode handle all keys including Enter
	// It will send a SubmitTextAction when Enter is pressed
	return m.textInputMode.HandleKey(msg, ctx)
}
