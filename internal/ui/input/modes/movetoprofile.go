package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"subgrip/internal/ui/input/types"
)

type MoveToProfileMode struct {
	TextInputMode
}

func NewMoveToProfileMode(ti *textinput.Model) *MoveToProfileMode {
	return &MoveToProfileMode{
		TextInputMode: NewTextInputMode(types.ModeMoveToProfile, "move-to-profile", "Move to profile (empty ungroups): ", ti),
	}
}
