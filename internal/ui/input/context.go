package input

import (
	"subgrip/internal/domain"
	"subgrip/internal/ui/coordinator"
	"subgrip/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler.
// Everything row-related delegates to the coordinator so input decisions
// and rendering always agree on what is under the cursor.
type ModelContext struct {
	State       *state.AppState
	Coordinator *coordinator.Coordinator
}

// CurrentIndex returns the current cursor index
func (c *ModelContext) CurrentIndex() int {
	return c.Coordinator.GetCurrentIndex()
}

// TotalItems returns the total number of visible rows
func (c *ModelContext) TotalItems() int {
	return len(c.Coordinator.Rows())
}

// ActiveTab returns the kind of item the active tab shows
func (c *ModelContext) ActiveTab() domain.ItemKind {
	return c.State.ActiveTab.Kind()
}

// InBatchMode reports whether the active tab is in batch mode
func (c *ModelContext) InBatchMode() bool {
	return c.State.ActiveTracker().InBatchMode()
}

// HasSelection returns true if any items are selected on the active tab
func (c *ModelContext) HasSelection() bool {
	return c.State.ActiveTracker().HasSelection()
}

// SelectedCount returns the number of selected items on the active tab
func (c *ModelContext) SelectedCount() int {
	return c.State.ActiveTracker().Count()
}

// CurrentItemID returns the id under the cursor, "" on section headers
func (c *ModelContext) CurrentItemID() string {
	return c.Coordinator.CurrentItemID()
}

// IsOnProfile returns true when the cursor is on a profile row
func (c *ModelContext) IsOnProfile() bool {
	return c.Coordinator.IsOnProfileRow()
}

// CurrentProfileName returns the profile under the cursor
func (c *ModelContext) CurrentProfileName() string {
	return c.Coordinator.CurrentProfileName()
}

// FilterQuery returns the active filter
func (c *ModelContext) FilterQuery() string {
	return c.Coordinator.Query.Filter()
}

// GetCurrentSort returns the current sort mode key
func (c *ModelContext) GetCurrentSort() string {
	return c.Coordinator.Sorting.GetModeString()
}

// ConfirmBeforeDelete reports whether deletions need a confirmation
func (c *ModelContext) ConfirmBeforeDelete() bool {
	return c.State.ConfirmBulkDelete
}
