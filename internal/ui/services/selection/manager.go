package selection

import (
	"sort"

	"subgrip/internal/eventbus"
)

// Item is any record that exposes a stable, unique identifier.
type Item interface {
	ItemID() string
}

// Manager tracks batch mode and the selected ids for a single list.
// It never holds on to the list itself; bulk operations receive the
// currently visible items as an argument, so ids of items that have
// since disappeared stay selected until toggled or pruned.
type Manager[T Item] struct {
	state *State
	list  string
	bus   eventbus.EventBus
}

// NewManager creates a manager for the named list. bus may be nil when
// nothing observes selection changes.
func NewManager[T Item](list string, bus eventbus.EventBus) *Manager[T] {
	return &Manager[T]{
		state: &State{Selected: make(map[string]bool)},
		list:  list,
		bus:   bus,
	}
}

// ToggleBatchMode enters batch mode, or exits it when already active.
// On exit with resetOnExit the selection is cleared; without it the
// selection is kept for a later re-entry.
func (m *Manager[T]) ToggleBatchMode(resetOnExit bool) {
	if !m.state.BatchMode {
		m.state.BatchMode = true
		m.publish(eventbus.BatchModeChangedEvent{List: m.list, Enabled: true})
		return
	}

	m.state.BatchMode = false
	cleared := 0
	if resetOnExit && len(m.state.Selected) > 0 {
		cleared = len(m.state.Selected)
		m.state.Selected = make(map[string]bool)
	}

	m.publish(eventbus.BatchModeChangedEvent{List: m.list, Enabled: false, Cleared: cleared})
}

// InBatchMode reports whether batch mode is active.
func (m *Manager[T]) InBatchMode() bool {
	return m.state.BatchMode
}

// Toggle flips membership of id in the selection. Unknown ids are
// accepted; the manager does not validate them against any list.
func (m *Manager[T]) Toggle(id string) {
	if id == "" {
		return
	}

	var added, removed []string
	if m.state.Selected[id] {
		delete(m.state.Selected, id)
		removed = append(removed, id)
	} else {
		m.state.Selected[id] = true
		added = append(added, id)
	}

	m.publish(eventbus.SelectionChangedEvent{
		List:    m.list,
		Added:   added,
		Removed: removed,
		Total:   len(m.state.Selected),
	})
}

// SelectAll adds every item in the snapshot to the selection. Ids
// selected earlier but absent from the snapshot are left alone.
func (m *Manager[T]) SelectAll(items []T) {
	var added []string
	for _, it := range items {
		id := it.ItemID()
		if id == "" || m.state.Selected[id] {
			continue
		}
		m.state.Selected[id] = true
		added = append(added, id)
	}

	if len(added) > 0 {
		m.publish(eventbus.SelectionChangedEvent{
			List:  m.list,
			Added: added,
			Total: len(m.state.Selected),
		})
	}
}

// DeselectAll empties the selection, in or out of batch mode.
func (m *Manager[T]) DeselectAll() {
	cleared := len(m.state.Selected)
	m.state.Selected = make(map[string]bool)

	m.publish(eventbus.SelectionClearedEvent{List: m.list, Cleared: cleared})
}

// Invert flips membership for every item in the snapshot. Ids outside
// the snapshot keep their current state.
func (m *Manager[T]) Invert(items []T) {
	var added, removed []string
	for _, it := range items {
		id := it.ItemID()
		if id == "" {
			continue
		}
		if m.state.Selected[id] {
			delete(m.state.Selected, id)
			removed = append(removed, id)
		} else {
			m.state.Selected[id] = true
			added = append(added, id)
		}
	}

	if len(added) > 0 || len(removed) > 0 {
		m.publish(eventbus.SelectionChangedEvent{
			List:    m.list,
			Added:   added,
			Removed: removed,
			Total:   len(m.state.Selected),
		})
	}
}

// IsSelected checks if an id is selected.
func (m *Manager[T]) IsSelected(id string) bool {
	return m.state.Selected[id]
}

// Count returns the number of selected ids.
func (m *Manager[T]) Count() int {
	return len(m.state.Selected)
}

// HasSelection returns true if anything is selected.
func (m *Manager[T]) HasSelection() bool {
	return len(m.state.Selected) > 0
}

// SelectedIDs returns the selected ids in lexical order.
func (m *Manager[T]) SelectedIDs() []string {
	ids := make([]string, 0, len(m.state.Selected))
	for id := range m.state.Selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RemoveFromSelection drops specific ids from the selection, e.g. after
// the items were deleted on the server.
func (m *Manager[T]) RemoveFromSelection(ids []string) {
	var removed []string
	for _, id := range ids {
		if m.state.Selected[id] {
			delete(m.state.Selected, id)
			removed = append(removed, id)
		}
	}

	if len(removed) > 0 {
		m.publish(eventbus.SelectionChangedEvent{
			List:    m.list,
			Removed: removed,
			Total:   len(m.state.Selected),
		})
	}
}

func (m *Manager[T]) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}
