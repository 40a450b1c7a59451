package handlers

import (
	"fmt"

	"subgrip/internal/domain"
	"subgrip/internal/eventbus"
	"subgrip/internal/store"
	"subgrip/internal/ui/state"
)

// EventHandler applies domain events to the stores and UI state. It
// runs on the Bubble Tea goroutine; events reach it via program messages.
type EventHandler struct {
	state              *state.AppState
	subs               store.SubscriptionStore
	nodes              store.NodeStore
	profiles           store.ProfileStore
	updateOrderedLists func()
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, subs store.SubscriptionStore,
	nodes store.NodeStore, profiles store.ProfileStore, updateOrderedLists func()) *EventHandler {
	return &EventHandler{
		state:              appState,
		subs:               subs,
		nodes:              nodes,
		profiles:           profiles,
		updateOrderedLists: updateOrderedLists,
	}
}

// HandleEvent processes one domain event
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.SubsLoadedEvent:
		h.subs.ReplaceSubscriptions(e.Subs)
		h.updateOrderedLists()

	case eventbus.SubAddedEvent:
		sub := e.Sub
		h.subs.AddSubscription(&sub)
		h.addMember(sub.Profile, domain.KindSubscription, sub.ID)
		h.updateOrderedLists()
		h.state.SetStatus(fmt.Sprintf("Added subscription '%s'", sub.Name))

	case eventbus.SubUpdatedEvent:
		sub := e.Sub
		h.subs.UpdateSubscription(&sub)
		h.state.SetRefreshing([]string{sub.ID}, false)
		h.updateOrderedLists()

	case eventbus.SubsDeletedEvent:
		for _, id := range e.IDs {
			if sub := h.subs.GetSubscription(id); sub != nil {
				h.removeMember(sub.Profile, domain.KindSubscription, id)
			}
			h.subs.RemoveSubscription(id)
			h.state.SubSelection.RemoveFromSelection([]string{id})
		}
		h.state.SetRefreshing(e.IDs, false)
		h.updateOrderedLists()
		h.state.SetStatus(fmt.Sprintf("Deleted %d subscription(s)", len(e.IDs)))

	case eventbus.NodesLoadedEvent:
		h.nodes.ReplaceNodes(e.Nodes)
		h.updateOrderedLists()

	case eventbus.NodeAddedEvent:
		node := e.Node
		h.nodes.AddNode(&node)
		h.addMember(node.Profile, domain.KindNode, node.ID)
		h.updateOrderedLists()
		h.state.SetStatus(fmt.Sprintf("Added node '%s'", node.Name))

	case eventbus.NodesDeletedEvent:
		for _, id := range e.IDs {
			if node := h.nodes.GetNode(id); node != nil {
				h.removeMember(node.Profile, domain.KindNode, id)
			}
			h.nodes.RemoveNode(id)
			h.state.NodeSelection.RemoveFromSelection([]string{id})
		}
		h.updateOrderedLists()
		h.state.SetStatus(fmt.Sprintf("Deleted %d node(s)", len(e.IDs)))

	case eventbus.ProfilesLoadedEvent:
		h.profiles.ReplaceProfiles(e.Profiles)
		h.updateOrderedLists()

	case eventbus.ProfileAddedEvent:
		if h.profiles.GetProfile(e.Name) == nil {
			h.profiles.AddProfile(&domain.Profile{Name: e.Name})
			h.updateOrderedLists()
		}
		h.state.SetStatus(fmt.Sprintf("Created profile '%s'", e.Name))

	case eventbus.ProfileRenamedEvent:
		h.renameProfile(e.OldName, e.NewName)
		h.updateOrderedLists()
		h.state.SetStatus(fmt.Sprintf("Renamed profile '%s' to '%s'", e.OldName, e.NewName))

	case eventbus.ProfileRemovedEvent:
		h.removeProfile(e.Name)
		h.state.ProfileSelection.RemoveFromSelection([]string{e.Name})
		h.updateOrderedLists()
		h.state.SetStatus(fmt.Sprintf("Deleted profile '%s'", e.Name))

	case eventbus.ItemsMovedEvent:
		h.moveItems(e.Kind, e.IDs, e.ToProfile)
		h.updateOrderedLists()
		if e.ToProfile == "" {
			h.state.SetStatus(fmt.Sprintf("Unassigned %d item(s)", len(e.IDs)))
		} else {
			h.state.SetStatus(fmt.Sprintf("Moved %d item(s) to '%s'", len(e.IDs), e.ToProfile))
		}

	case eventbus.ItemsEnabledEvent:
		h.setEnabled(e.Kind, e.IDs, e.Enabled)
		h.updateOrderedLists()
		verb := "Enabled"
		if !e.Enabled {
			verb = "Disabled"
		}
		h.state.SetStatus(fmt.Sprintf("%s %d item(s)", verb, len(e.IDs)))

	case eventbus.RefreshProgressedEvent:
		h.state.Progress = domain.RefreshProgress{
			InFlight:  e.Completed < e.Total,
			Completed: e.Completed,
			Total:     e.Total,
		}

	case eventbus.RefreshCompletedEvent:
		h.state.ClearRefreshing()
		if e.Failed > 0 {
			h.state.SetStatus(fmt.Sprintf("Refresh done: %d ok, %d failed", e.Succeeded, e.Failed))
		} else {
			h.state.SetStatus(fmt.Sprintf("Refreshed %d subscription(s)", e.Succeeded))
		}

	case eventbus.ErrorEvent:
		h.state.SetStatus(fmt.Sprintf("Error (%s): %s", e.Op, e.Message))

	case eventbus.ConfigLoadedEvent:
		// Profile membership cached in the config seeds the list before
		// the server answers.
		for name := range e.Profiles {
			if h.profiles.GetProfile(name) == nil {
				h.profiles.AddProfile(&domain.Profile{Name: name})
			}
		}
		h.updateOrderedLists()

	case eventbus.AppReadyEvent:
		h.state.Ready = true
		h.state.Loading = false
		h.state.LoadingState = ""
		h.state.ServerURL = e.ServerURL
	}
}

// addMember records an item in its profile's membership lists
func (h *EventHandler) addMember(profile string, kind domain.ItemKind, id string) {
	if profile == "" {
		return
	}
	p := h.profiles.GetProfile(profile)
	if p == nil {
		p = &domain.Profile{Name: profile}
		h.profiles.AddProfile(p)
	}
	switch kind {
	case domain.KindSubscription:
		p.Subs = appendUnique(p.Subs, id)
	case domain.KindNode:
		p.Nodes = appendUnique(p.Nodes, id)
	}
	h.profiles.UpdateProfile(p)
}

// removeMember drops an item from its profile's membership lists
func (h *EventHandler) removeMember(profile string, kind domain.ItemKind, id string) {
	if profile == "" {
		return
	}
	p := h.profiles.GetProfile(profile)
	if p == nil {
		return
	}
	switch kind {
	case domain.KindSubscription:
		p.Subs = remove(p.Subs, id)
	case domain.KindNode:
		p.Nodes = remove(p.Nodes, id)
	}
	h.profiles.UpdateProfile(p)
}

// moveItems reassigns items between profiles, "" unassigns
func (h *EventHandler) moveItems(kind domain.ItemKind, ids []string, toProfile string) {
	for _, id := range ids {
		switch kind {
		case domain.KindSubscription:
			sub := h.subs.GetSubscription(id)
			if sub == nil {
				continue
			}
			h.removeMember(sub.Profile, kind, id)
			sub.Profile = toProfile
			h.subs.UpdateSubscription(sub)
			h.addMember(toProfile, kind, id)
		case domain.KindNode:
			node := h.nodes.GetNode(id)
			if node == nil {
				continue
			}
			h.removeMember(node.Profile, kind, id)
			node.Profile = toProfile
			h.nodes.UpdateNode(node)
			h.addMember(toProfile, kind, id)
		}
	}
}

// setEnabled flips the enabled flag on items
func (h *EventHandler) setEnabled(kind domain.ItemKind, ids []string, enabled bool) {
	for _, id := range ids {
		switch kind {
		case domain.KindSubscription:
			if sub := h.subs.GetSubscription(id); sub != nil {
				sub.Enabled = enabled
				h.subs.UpdateSubscription(sub)
			}
		case domain.KindNode:
			if node := h.nodes.GetNode(id); node != nil {
				node.Enabled = enabled
				h.nodes.UpdateNode(node)
			}
		}
	}
}

// renameProfile moves the profile record and rewrites member assignments
func (h *EventHandler) renameProfile(oldName, newName string) {
	p := h.profiles.GetProfile(oldName)
	if p == nil {
		return
	}
	h.profiles.DeleteProfile(oldName)
	p.Name = newName
	h.profiles.AddProfile(p)

	for _, sub := range h.subs.GetAllSubscriptions() {
		if sub.Profile == oldName {
			sub.Profile = newName
			h.subs.UpdateSubscription(sub)
		}
	}
	for _, node := range h.nodes.GetAllNodes() {
		if node.Profile == oldName {
			node.Profile = newName
			h.nodes.UpdateNode(node)
		}
	}
}

// removeProfile deletes a profile; its members become unassigned
func (h *EventHandler) removeProfile(name string) {
	h.profiles.DeleteProfile(name)
	for _, sub := range h.subs.GetAllSubscriptions() {
		if sub.Profile == name {
			sub.Profile = ""
			h.subs.UpdateSubscription(sub)
		}
	}
	for _, node := range h.nodes.GetAllNodes() {
		if node.Profile == name {
			node.Profile = ""
			h.nodes.UpdateNode(node)
		}
	}
}

func appendUnique(list []string, id string) []string {
	for _, existing := range list {
		if existing == id {
			return list
		}
	}
	return append(list, id)
}

func remove(list []string, id string) []string {
	out := list[:0]
	for _, existing := range list {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
