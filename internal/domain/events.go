package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSubsLoaded        EventType = "SubsLoaded"
	EventSubAdded          EventType = "SubAdded"
	EventSubUpdated        EventType = "SubUpdated"
	EventSubsDeleted       EventType = "SubsDeleted"
	EventNodesLoaded       EventType = "NodesLoaded"
	EventNodeAdded         EventType = "NodeAdded"
	EventNodesDeleted      EventType = "NodesDeleted"
	EventProfilesLoaded    EventType = "ProfilesLoaded"
	EventProfileAdded      EventType = "ProfileAdded"
	EventProfileRenamed    EventType = "ProfileRenamed"
	EventProfileRemoved    EventType = "ProfileRemoved"
	EventItemsMoved        EventType = "ItemsMoved"
	EventItemsEnabled      EventType = "ItemsEnabled"
	EventRefreshRequested  EventType = "RefreshRequested"
	EventRefreshProgressed EventType = "RefreshProgressed"
	EventRefreshCompleted  EventType = "RefreshCompleted"
	EventSelectionChanged  EventType = "SelectionChanged"
	EventSelectionCleared  EventType = "SelectionCleared"
	EventBatchModeChanged  EventType = "BatchModeChanged"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
	EventConfigChanged     EventType = "ConfigChanged"
	EventError             EventType = "Error"
	EventAppReady          EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SubsLoadedEvent is emitted when the subscription list is fetched from the server
type SubsLoadedEvent struct {
	Subs []Subscription
}

func (e SubsLoadedEvent) Type() EventType { return EventSubsLoaded }

// SubAddedEvent is emitted when a new subscription is created
type SubAddedEvent struct {
	Sub Subscription
}

func (e SubAddedEvent) Type() EventType { return EventSubAdded }

// SubUpdatedEvent is emitted when a subscription's status changes, usually after a refresh
type SubUpdatedEvent struct {
	Sub Subscription
}

func (e SubUpdatedEvent) Type() EventType { return EventSubUpdated }

// SubsDeletedEvent is emitted when subscriptions are deleted
type SubsDeletedEvent struct {
	IDs []string
}

func (e SubsDeletedEvent) Type() EventType { return EventSubsDeleted }

// NodesLoadedEvent is emitted when the node list is fetched from the server
type NodesLoadedEvent struct {
	Nodes []Node
}

func (e NodesLoadedEvent) Type() EventType { return EventNodesLoaded }

// NodeAddedEvent is emitted when a node is added manually
type NodeAddedEvent struct {
	Node Node
}

func (e NodeAddedEvent) Type() EventType { return EventNodeAdded }

// NodesDeletedEvent is emitted when nodes are deleted
type NodesDeletedEvent struct {
	IDs []string
}

func (e NodesDeletedEvent) Type() EventType { return EventNodesDeleted }

// ProfilesLoadedEvent is emitted when the profile list is fetched from the server
type ProfilesLoadedEvent struct {
	Profiles []Profile
}

func (e ProfilesLoadedEvent) Type() EventType { return EventProfilesLoaded }

// ProfileAddedEvent is emitted when a new profile is created
type ProfileAddedEvent struct {
	Name string
}

func (e ProfileAddedEvent) Type() EventType { return EventProfileAdded }

// ProfileRenamedEvent is emitted when a profile is renamed
type ProfileRenamedEvent struct {
	OldName string
	NewName string
}

func (e ProfileRenamedEvent) Type() EventType { return EventProfileRenamed }

// ProfileRemovedEvent is emitted when a profile is deleted
type ProfileRemovedEvent struct {
	Name string
}

func (e ProfileRemovedEvent) Type() EventType { return EventProfileRemoved }

// ItemsMovedEvent is emitted when items are moved to a different profile
type ItemsMovedEvent struct {
	Kind      ItemKind
	IDs       []string
	ToProfile string // "" moves items out of their profile
}

func (e ItemsMovedEvent) Type() EventType { return EventItemsMoved }

// ItemsEnabledEvent is emitted when items are enabled or disabled
type ItemsEnabledEvent struct {
	Kind    ItemKind
	IDs     []string
	Enabled bool
}

func (e ItemsEnabledEvent) Type() EventType { return EventItemsEnabled }

// RefreshRequestedEvent is emitted to request a refresh for specific subscriptions
type RefreshRequestedEvent struct {
	IDs []string // Empty means refresh all enabled subscriptions
}

func (e RefreshRequestedEvent) Type() EventType { return EventRefreshRequested }

// RefreshProgressedEvent is emitted after each subscription in a bulk refresh finishes
type RefreshProgressedEvent struct {
	Completed int
	Total     int
	Current   string // name of the subscription that just finished
}

func (e RefreshProgressedEvent) Type() EventType { return EventRefreshProgressed }

// RefreshCompletedEvent is emitted when a bulk refresh finishes
type RefreshCompletedEvent struct {
	Succeeded int
	Failed    int
}

func (e RefreshCompletedEvent) Type() EventType { return EventRefreshCompleted }

// SelectionChangedEvent is emitted when items are selected or deselected
type SelectionChangedEvent struct {
	List    string // which list the selection belongs to
	Added   []string
	Removed []string
	Total   int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SelectionClearedEvent is emitted when a selection is emptied at once
type SelectionClearedEvent struct {
	List    string
	Cleared int
}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// BatchModeChangedEvent is emitted when batch mode is entered or exited
type BatchModeChangedEvent struct {
	List    string
	Enabled bool
	Cleared int // selections dropped on exit, 0 when kept
}

func (e BatchModeChangedEvent) Type() EventType { return EventBatchModeChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	Profiles map[string][]string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when configuration needs to be saved
type ConfigChangedEvent struct {
	Profiles map[string][]string // Current profile membership
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// ErrorEvent is emitted when a server operation fails
type ErrorEvent struct {
	Op      string // operation that failed, e.g. "refresh" or "delete"
	Message string
}

func (e ErrorEvent) Type() EventType { return EventError }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	ServerURL string
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
