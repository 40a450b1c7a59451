package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"subgrip/internal/domain"
	"subgrip/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		// Esc leaves batch mode and clears the selection; otherwise it
		// drops an active filter
		if ctx.InBatchMode() {
			return []types.Action{types.ToggleBatchModeAction{Reset: true}}, true
		}
		if ctx.FilterQuery() != "" {
			return []types.Action{types.SetFilterAction{}}, true
		}
		return nil, true // Consume the key even if no action

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyTab:
		return []types.Action{types.SwitchTabAction{Offset: 1}}, true

	case tea.KeyShiftTab:
		return []types.Action{types.SwitchTabAction{Offset: -1}}, true

	case tea.KeyEnter:
		// Enter toggles a profile section; on an item it shows details
		if ctx.IsOnProfile() && ctx.CurrentItemID() == "" {
			return []types.Action{types.ToggleProfileAction{}}, true
		}
		if ctx.CurrentItemID() != "" {
			return []types.Action{types.ToggleInfoAction{}}, true
		}
		return nil, false
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h":
		// Collapse the section under the cursor
		if ctx.CurrentProfileName() != "" && ctx.ActiveTab() != domain.KindProfile {
			return []types.Action{types.CollapseProfileAction{}}, true
		}
		return nil, false

	case "l":
		if ctx.CurrentProfileName() != "" && ctx.ActiveTab() != domain.KindProfile {
			return []types.Action{types.ExpandProfileAction{}}, true
		}
		return nil, false

	case "z":
		// z toggles the section from the header or any member row
		if ctx.CurrentProfileName() != "" && ctx.ActiveTab() != domain.KindProfile {
			return []types.Action{types.ToggleProfileAction{}}, true
		}
		return nil, false

	case " ":
		// Space toggles selection; on a section header it selects the
		// whole section
		if ctx.IsOnProfile() && ctx.CurrentItemID() == "" {
			return []types.Action{types.SelectProfileAction{Profile: ctx.CurrentProfileName()}}, true
		}
		if ctx.CurrentItemID() != "" {
			return []types.Action{types.ToggleSelectAction{}}, true
		}
		return nil, false

	case "b":
		return []types.Action{types.ToggleBatchModeAction{}}, true

	case "a":
		// Select everything visible, keeping what is already selected
		return []types.Action{types.SelectAllAction{}}, true

	case "i":
		return []types.Action{types.InvertSelectionAction{}}, true

	case "u":
		if ctx.HasSelection() {
			return []types.Action{types.DeselectAllAction{}}, true
		}
		return nil, true // Consume the key even if no action

	case "t":
		// Toggle enabled for selected items or the current one
		if ctx.HasSelection() || ctx.CurrentItemID() != "" {
			return []types.Action{types.ToggleEnabledAction{}}, true
		}
		return nil, false

	case "r":
		// Refresh selected subscriptions or the current one
		if ctx.ActiveTab() != domain.KindSubscription {
			return nil, false
		}
		if ctx.HasSelection() || ctx.CurrentItemID() != "" {
			return []types.Action{types.RefreshAction{All: false}}, true
		}
		return nil, false

	case "R":
		// Rename profile when on a profile row, refresh all otherwise
		if ctx.IsOnProfile() {
			return []types.Action{types.ChangeModeAction{
				Mode: types.ModeRenameProfile,
				Data: ctx.CurrentProfileName(),
			}}, true
		}
		return []types.Action{types.RefreshAction{All: true}}, true

	case "d":
		// Delete selected items, the current item, or the profile under
		// the cursor, after confirmation. The confirmation can be turned
		// off in the config.
		if ctx.HasSelection() || ctx.CurrentItemID() != "" || ctx.IsOnProfile() {
			if ctx.ConfirmBeforeDelete() {
				return []types.Action{types.ChangeModeAction{Mode: types.ModeConfirmDelete}}, true
			}
			if !ctx.HasSelection() && ctx.IsOnProfile() && ctx.CurrentItemID() == "" {
				return []types.Action{types.DeleteProfileAction{Name: ctx.CurrentProfileName()}}, true
			}
			return []types.Action{types.DeleteItemsAction{}}, true
		}
		return nil, false

	case "e":
		if ctx.HasSelection() || ctx.CurrentItemID() != "" {
			return []types.Action{types.ExportAction{}}, true
		}
		return nil, false

	case "p":
		// Preview the export in the pager instead of copying it
		if ctx.HasSelection() || ctx.CurrentItemID() != "" {
			return []types.Action{types.ExportAction{Preview: true}}, true
		}
		return nil, false

	case "m":
		// Move to profile (items only, profiles cannot be nested)
		if ctx.ActiveTab() == domain.KindProfile {
			return nil, false
		}
		if ctx.HasSelection() || ctx.CurrentItemID() != "" {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeMoveToProfile}}, true
		}
		return nil, false

	case "N":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNewProfile}}, true

	case "o":
		// Add an item on the current tab
		switch ctx.ActiveTab() {
		case domain.KindNode:
			return []types.Action{types.ChangeModeAction{Mode: types.ModeAddNode}}, true
		case domain.KindProfile:
			return []types.Action{types.ChangeModeAction{Mode: types.ModeNewProfile}}, true
		default:
			return []types.Action{types.ChangeModeAction{Mode: types.ModeAddSub}}, true
		}

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter}}, true

	case "s":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSort}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "I":
		return []types.Action{types.ToggleInfoAction{}}, true

	case "w":
		return []types.Action{types.ToggleSidebarAction{}}, true

	case "T":
		return []types.Action{types.ToggleThemeAction{}}, true

	case "1":
		return []types.Action{types.SelectTabAction{Tab: 0}}, true

	case "2":
		return []types.Action{types.SelectTabAction{Tab: 1}}, true

	case "3":
		return []types.Action{types.SelectTabAction{Tab: 2}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		// First g, wait for next key
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true // consume the key but don't do anything

	case "G":
		// G - go to bottom
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		if m.lastKeyWasG {
			m.lastKeyWasG = false
		}
	}

	return nil, false
}
