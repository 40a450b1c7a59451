package state

import (
	"subgrip/internal/domain"
	"subgrip/internal/eventbus"
	"subgrip/internal/ui/services/selection"
)

// Tab identifies one of the three item lists
type Tab int

const (
	TabSubscriptions Tab = iota
	TabNodes
	TabProfiles
)

// Kind maps a tab to the item kind it shows
func (t Tab) Kind() domain.ItemKind {
	switch t {
	case TabNodes:
		return domain.KindNode
	case TabProfiles:
		return domain.KindProfile
	default:
		return domain.KindSubscription
	}
}

func (t Tab) String() string {
	switch t {
	case TabNodes:
		return "nodes"
	case TabProfiles:
		return "profiles"
	default:
		return "subscriptions"
	}
}

// AppState contains the UI-side application state. Item data lives in
// the stores; this is what the views need beyond it.
type AppState struct {
	// Tab state
	ActiveTab  Tab
	TabCursors map[Tab]int // saved cursor positions for tab switching

	// Selection state, one manager per list
	SubSelection     *selection.Manager[*domain.Subscription]
	NodeSelection    *selection.Manager[*domain.Node]
	ProfileSelection *selection.Manager[*domain.Profile]

	// Operation states
	RefreshingSubs map[string]bool // subscriptions currently refreshing
	Progress       domain.RefreshProgress
	Loading        bool
	LoadingState   string // current loading state description

	// UI state
	ShowInfo      bool
	InfoContent   string
	StatusMessage string // status bar message

	// Persisted look and feel
	Theme             string
	ShowSidebar       bool
	ShowTimestamps    bool
	ConfirmBulkDelete bool

	SortOptionIndex int // selected option while the sort picker is open

	ServerURL string
	Ready     bool // initial load finished
}

// NewAppState creates a new application state
func NewAppState(bus eventbus.EventBus) *AppState {
	return &AppState{
		TabCursors:       make(map[Tab]int),
		SubSelection:     selection.NewManager[*domain.Subscription]("subscriptions", bus),
		NodeSelection:    selection.NewManager[*domain.Node]("nodes", bus),
		ProfileSelection: selection.NewManager[*domain.Profile]("profiles", bus),
		RefreshingSubs:   make(map[string]bool),
		Theme:            "dark",
		ShowSidebar:      true,
	}
}

// Tracker returns the id-level selection handle for a tab
func (s *AppState) Tracker(tab Tab) selection.Tracker {
	switch tab {
	case TabNodes:
		return s.NodeSelection
	case TabProfiles:
		return s.ProfileSelection
	default:
		return s.SubSelection
	}
}

// ActiveTracker returns the selection handle for the active tab
func (s *AppState) ActiveTracker() selection.Tracker {
	return s.Tracker(s.ActiveTab)
}

// Operation state management

// SetRefreshing marks subscriptions as refreshing
func (s *AppState) SetRefreshing(ids []string, refreshing bool) {
	for _, id := range ids {
		if refreshing {
			s.RefreshingSubs[id] = true
		} else {
			delete(s.RefreshingSubs, id)
		}
	}
}

// ClearRefreshing clears all refresh markers
func (s *AppState) ClearRefreshing() {
	s.RefreshingSubs = make(map[string]bool)
	s.Progress = domain.RefreshProgress{}
}

// SetStatus sets the status bar message
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
}
