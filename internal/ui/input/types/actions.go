package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type SwitchTabAction struct {
	Offset int // +1 next tab, -1 previous tab
}

func (a SwitchTabAction) Type() string { return "switch_tab" }

type SelectTabAction struct {
	Tab int // 0 subscriptions, 1 nodes, 2 profiles
}

func (a SelectTabAction) Type() string { return "select_tab" }

// Selection actions
type ToggleSelectAction struct{}

func (a ToggleSelectAction) Type() string { return "toggle_select" }

type ToggleBatchModeAction struct {
	Reset bool // clear the selection when leaving batch mode
}

func (a ToggleBatchModeAction) Type() string { return "toggle_batch_mode" }

type SelectAllAction struct{}

func (a SelectAllAction) Type() string { return "select_all" }

type DeselectAllAction struct{}

func (a DeselectAllAction) Type() string { return "deselect_all" }

type InvertSelectionAction struct{}

func (a InvertSelectionAction) Type() string { return "invert_selection" }

type SelectProfileAction struct {
	Profile string
}

func (a SelectProfileAction) Type() string { return "select_profile" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

type SetFilterAction struct {
	Query string // "" clears the filter
}

func (a SetFilterAction) Type() string { return "set_filter" }

// Command actions
type RefreshAction struct {
	All bool // true refreshes every enabled subscription
}

func (a RefreshAction) Type() string { return "refresh" }

type ToggleEnabledAction struct{}

func (a ToggleEnabledAction) Type() string { return "toggle_enabled" }

type DeleteItemsAction struct{}

func (a DeleteItemsAction) Type() string { return "delete_items" }

type DeleteProfileAction struct {
	Name string
}

func (a DeleteProfileAction) Type() string { return "delete_profile" }

type RenameProfileAction struct {
	OldName string
	NewName string
}

func (a RenameProfileAction) Type() string { return "rename_profile" }

type ExportAction struct {
	Preview bool // show in the pager instead of copying
}

func (a ExportAction) Type() string { return "export" }

// Profile section actions
type ToggleProfileAction struct{}

func (a ToggleProfileAction) Type() string { return "toggle_profile" }

type ExpandProfileAction struct{}

func (a ExpandProfileAction) Type() string { return "expand_profile" }

type CollapseProfileAction struct{}

func (a CollapseProfileAction) Type() string { return "collapse_profile" }

type ExpandAllProfilesAction struct{}

func (a ExpandAllProfilesAction) Type() string { return "expand_all_profiles" }

// View actions
type ToggleInfoAction struct{}

func (a ToggleInfoAction) Type() string { return "toggle_info" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ToggleSidebarAction struct{}

func (a ToggleSidebarAction) Type() string { return "toggle_sidebar" }

type ToggleThemeAction struct{}

func (a ToggleThemeAction) Type() string { return "toggle_theme" }

// Sort actions
type SortByAction struct {
	Criteria string
}

func (a SortByAction) Type() string { return "sort_by" }

type UpdateSortIndexAction struct {
	Index int
}

func (a UpdateSortIndexAction) Type() string { return "update_sort_index" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
