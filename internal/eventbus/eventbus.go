package eventbus

import (
	"runtime/debug"
	"sync"

	"github.com/charmbracelet/log"

	"subgrip/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSubsLoaded        = domain.EventSubsLoaded
	EventSubAdded          = domain.EventSubAdded
	EventSubUpdated        = domain.EventSubUpdated
	EventSubsDeleted       = domain.EventSubsDeleted
	EventNodesLoaded       = domain.EventNodesLoaded
	EventNodeAdded         = domain.EventNodeAdded
	EventNodesDeleted      = domain.EventNodesDeleted
	EventProfilesLoaded    = domain.EventProfilesLoaded
	EventProfileAdded      = domain.EventProfileAdded
	EventProfileRenamed    = domain.EventProfileRenamed
	EventProfileRemoved    = domain.EventProfileRemoved
	EventItemsMoved        = domain.EventItemsMoved
	EventItemsEnabled      = domain.EventItemsEnabled
	EventRefreshRequested  = domain.EventRefreshRequested
	EventRefreshProgressed = domain.EventRefreshProgressed
	EventRefreshCompleted  = domain.EventRefreshCompleted
	EventSelectionChanged  = domain.EventSelectionChanged
	EventSelectionCleared  = domain.EventSelectionCleared
	EventBatchModeChanged  = domain.EventBatchModeChanged
	EventConfigLoaded      = domain.EventConfigLoaded
	EventConfigSaved       = domain.EventConfigSaved
	EventConfigChanged     = domain.EventConfigChanged
	EventError             = domain.EventError
	EventAppReady          = domain.EventAppReady
)

// Re-export domain event types
type SubsLoadedEvent = domain.SubsLoadedEvent
type SubAddedEvent = domain.SubAddedEvent
type SubUpdatedEvent = domain.SubUpdatedEvent
type SubsDeletedEvent = domain.SubsDeletedEvent
type NodesLoadedEvent = domain.NodesLoadedEvent
type NodeAddedEvent = domain.NodeAddedEvent
type NodesDeletedEvent = domain.NodesDeletedEvent
type ProfilesLoadedEvent = domain.ProfilesLoadedEvent
type ProfileAddedEvent = domain.ProfileAddedEvent
type ProfileRenamedEvent = domain.ProfileRenamedEvent
type ProfileRemovedEvent = domain.ProfileRemovedEvent
type ItemsMovedEvent = domain.ItemsMovedEvent
type ItemsEnabledEvent = domain.ItemsEnabledEvent
type RefreshRequestedEvent = domain.RefreshRequestedEvent
type RefreshProgressedEvent = domain.RefreshProgressedEvent
type RefreshCompletedEvent = domain.RefreshCompletedEvent
type SelectionChangedEvent = domain.SelectionChangedEvent
type SelectionClearedEvent = domain.SelectionClearedEvent
type BatchModeChangedEvent = domain.BatchModeChangedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ConfigChangedEvent = domain.ConfigChangedEvent
type ErrorEvent = domain.ErrorEvent
type AppReadyEvent = domain.AppReadyEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

// subscriber pairs a handler with a registration id so it can be removed later
type subscriber struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	nextID    uint64
	handlers  map[EventType][]subscriber
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus and starts its dispatcher
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscriber),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	// Skip logging for high-frequency events
	switch event.Type() {
	case EventRefreshProgressed, EventSelectionChanged:
	default:
		log.Debug("publishing event", "type", event.Type())
	}

	select {
	case b.eventChan <- event:
	default:
		// Channel full, log and drop
		log.Warn("event bus channel full, dropping event", "type", event.Type())
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher. Events still queued are discarded.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			// Copy handlers so the lock isn't held during handler execution
			b.mu.RLock()
			subs := b.handlers[event.Type()]
			subsCopy := make([]subscriber, len(subs))
			copy(subsCopy, subs)
			b.mu.RUnlock()

			for _, s := range subsCopy {
				go func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							log.Error("event handler panic", "type", eventType, "panic", r, "stack", string(debug.Stack()))
						}
					}()
					h(event)
				}(s.handler, event.Type())
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}
