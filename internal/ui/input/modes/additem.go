package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"subgrip/internal/ui/input/types"
)

// AddSubMode prompts for a new subscription as "name url"
type AddSubMode struct {
	TextInputMode
}

func NewAddSubMode(ti *textinput.Model) *AddSubMode {
	return &AddSubMode{TextInputMode: NewTextInputMode(types.ModeAddSub, "add-subscription", "Add subscription (name url): ", ti)}
}

// AddNodeMode prompts for a new node as "name proto://host:port"
type AddNodeMode struct {
	TextInputMode
}

func NewAddNodeMode(ti *textinput.Model) *AddNodeMode {
	return &AddNodeMode{TextInputMode: NewTextInputMode(types.ModeAddNode, "add-node", "Add node (name proto://host:port): ", ti)}
}
