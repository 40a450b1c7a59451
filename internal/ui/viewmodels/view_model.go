package viewmodels

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"

	"subgrip/internal/domain"
	"subgrip/internal/ui/coordinator"
	"subgrip/internal/ui/services/query"
	"subgrip/internal/ui/state"
	"subgrip/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state *state.AppState
	coord *coordinator.Coordinator

	width  int
	height int
	help   help.Model

	inputMode      string
	inputLine      string
	confirmProfile string
	confirmArmed   bool
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, coord *coordinator.Coordinator) *ViewModel {
	return &ViewModel{
		state: appState,
		coord: coord,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model
func (vm *ViewModel) SetHelp(helpModel help.Model) {
	vm.help = helpModel
}

// SetInput passes the current input mode name and the rendered text
// input line (prompt plus input view, "" outside text modes).
func (vm *ViewModel) SetInput(mode, line string) {
	vm.inputMode = mode
	vm.inputLine = line
}

// SetConfirm arms the delete confirmation line. An empty profile means
// the pending deletion targets items, not a profile.
func (vm *ViewModel) SetConfirm(armed bool, profile string) {
	vm.confirmArmed = armed
	vm.confirmProfile = profile
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	rows := vm.coord.Rows()
	subCount, nodeCount, profileCount := vm.coord.Counts()
	tracker := vm.state.ActiveTracker()
	activeTab := vm.state.ActiveTab.Kind()

	selected := make(map[string]bool)
	for _, id := range tracker.SelectedIDs() {
		selected[id] = true
	}

	return views.ViewState{
		Width:  vm.width,
		Height: vm.height,

		ActiveTab:    activeTab,
		SubCount:     subCount,
		NodeCount:    nodeCount,
		ProfileCount: profileCount,

		Rows:           rows,
		Expanded:       vm.expandedMap(rows),
		FullySelected:  vm.fullySelectedMap(rows, activeTab, selected),
		Cursor:         vm.coord.GetCurrentIndex(),
		ViewportOffset: vm.coord.Navigation.GetViewportOffset(),
		ViewportHeight: vm.coord.Navigation.GetViewportHeight(),

		BatchMode:     tracker.InBatchMode(),
		Selected:      selected,
		SelectedCount: tracker.Count(),

		Refreshing:    vm.state.RefreshingSubs,
		Progress:      vm.state.Progress,
		Loading:       vm.state.Loading,
		LoadingState:  vm.state.LoadingState,
		StatusMessage: vm.state.StatusMessage,
		FilterQuery:   vm.coord.Query.Filter(),

		ShowInfo:    vm.state.ShowInfo,
		InfoContent: vm.state.InfoContent,

		Sidebar:     vm.buildSidebar(),
		ShowSidebar: vm.state.ShowSidebar,

		TextInput:       vm.inputLine,
		InputMode:       vm.inputMode,
		SortOptionIndex: vm.state.SortOptionIndex,
		ConfirmPrompt:   vm.confirmPrompt(),

		ServerURL: vm.state.ServerURL,
		HelpModel: vm.help,
	}
}

// expandedMap collects the expansion state of the profiles present in
// the rows.
func (vm *ViewModel) expandedMap(rows []query.Row) map[string]bool {
	expanded := make(map[string]bool)
	for _, row := range rows {
		if row.Kind == query.RowProfileHeader {
			expanded[row.Profile] = vm.coord.Query.IsExpanded(row.Profile)
		}
	}
	return expanded
}

// fullySelectedMap reports, per profile header, whether every member of
// the section is selected. Collapsed sections count their hidden members.
func (vm *ViewModel) fullySelectedMap(rows []query.Row, tab domain.ItemKind, selected map[string]bool) map[string]bool {
	full := make(map[string]bool)
	for _, row := range rows {
		if row.Kind != query.RowProfileHeader {
			continue
		}
		members := vm.coord.ProfileMemberIDs(tab, row.Profile)
		all := len(members) > 0
		for _, id := range members {
			if !selected[id] {
				all = false
				break
			}
		}
		full[row.Profile] = all
	}
	return full
}

// buildSidebar summarizes the profiles for the sidebar column
func (vm *ViewModel) buildSidebar() []views.SidebarEntry {
	profiles := vm.coord.Query.VisibleProfiles()
	active := ""
	if row := vm.coord.CurrentRow(); row != nil {
		active = row.Profile
	}

	entries := make([]views.SidebarEntry, 0, len(profiles))
	for _, p := range profiles {
		entries = append(entries, views.SidebarEntry{
			Name:   p.Name,
			Count:  len(p.Subs) + len(p.Nodes),
			Active: p.Name == active,
		})
	}
	return entries
}

// confirmPrompt builds the confirmation line text
func (vm *ViewModel) confirmPrompt() string {
	if !vm.confirmArmed {
		return ""
	}
	if vm.confirmProfile != "" {
		return fmt.Sprintf("Delete profile '%s'? Items become unassigned. (y/n): ", vm.confirmProfile)
	}

	tracker := vm.state.ActiveTracker()
	if n := tracker.Count(); n > 1 {
		return fmt.Sprintf("Delete %d selected items? (y/n): ", n)
	}
	name := ""
	if row := vm.coord.CurrentRow(); row != nil {
		switch row.Kind {
		case query.RowSubscription:
			name = row.Sub.Name
		case query.RowNode:
			name = row.Node.Name
		}
	}
	if name == "" {
		return "Delete selected item? (y/n): "
	}
	return fmt.Sprintf("Delete '%s'? (y/n): ", name)
}
