package selection

// State holds selection state for one list
type State struct {
	BatchMode bool
	Selected  map[string]bool
}

// Tracker is the id-level view of a Manager. It lets callers operate on
// whichever list is active without knowing the concrete item type.
type Tracker interface {
	ToggleBatchMode(resetOnExit bool)
	InBatchMode() bool
	Toggle(id string)
	DeselectAll()
	IsSelected(id string) bool
	Count() int
	HasSelection() bool
	SelectedIDs() []string
	RemoveFromSelection(ids []string)
}
