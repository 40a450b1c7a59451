package coordinator

import (
	"subgrip/internal/domain"
	"subgrip/internal/store"
	"subgrip/internal/ui/services/navigation"
	"subgrip/internal/ui/services/query"
	"subgrip/internal/ui/services/sorting"
)

// Coordinator manages the UI services and their interactions
type Coordinator struct {
	// Services
	Navigation *navigation.Service
	Query      *query.Service
	Sorting    *sorting.Service

	// Dependencies
	subs     store.SubscriptionStore
	nodes    store.NodeStore
	profiles store.ProfileStore

	tabFn func() domain.ItemKind // Function to get the active tab
}

// NewCoordinator creates a new coordinator with all services
func NewCoordinator(subs store.SubscriptionStore, nodes store.NodeStore, profiles store.ProfileStore) *Coordinator {
	c := &Coordinator{
		Navigation: navigation.NewService(),
		Query:      query.NewService(subs, nodes, profiles),
		Sorting:    sorting.NewService(),
		subs:       subs,
		nodes:      nodes,
		profiles:   profiles,
	}

	// Wire up service dependencies
	c.wireServices()

	return c
}

// SetTabFunction sets the function reporting the active tab
func (c *Coordinator) SetTabFunction(fn func() domain.ItemKind) {
	c.tabFn = fn
}

// wireServices connects services with their dependencies
func (c *Coordinator) wireServices() {
	// Navigation needs to know how long the active list is
	c.Navigation.SetMaxIndexFunction(func() int {
		return c.MaxIndex()
	})

	// Sorting needs to look items up
	c.Sorting.SetSubscriptionFunction(c.subs.GetSubscription)
	c.Sorting.SetNodeFunction(c.nodes.GetNode)
}

// UpdateOrderedLists re-sorts the store contents and pushes the new
// ordering into the query service. Call after any store change and
// after sort mode changes.
func (c *Coordinator) UpdateOrderedLists() {
	allSubs := c.subs.GetAllSubscriptions()
	subIDs := make([]string, 0, len(allSubs))
	for id := range allSubs {
		subIDs = append(subIDs, id)
	}
	c.Sorting.SortSubscriptions(subIDs)
	c.Query.SetOrderedSubs(subIDs)

	allNodes := c.nodes.GetAllNodes()
	nodeIDs := make([]string, 0, len(allNodes))
	for id := range allNodes {
		nodeIDs = append(nodeIDs, id)
	}
	c.Sorting.SortNodes(nodeIDs)
	c.Query.SetOrderedNodes(nodeIDs)

	allProfiles := c.profiles.GetAllProfiles()
	names := make([]string, 0, len(allProfiles))
	for name := range allProfiles {
		names = append(names, name)
	}
	c.Sorting.SortProfiles(names)
	c.Query.SetOrderedProfiles(names)

	// The list may have shrunk under the cursor
	c.Navigation.Clamp()
}

// ActiveTab returns the tab the model currently shows
func (c *Coordinator) ActiveTab() domain.ItemKind {
	if c.tabFn == nil {
		return domain.KindSubscription
	}
	return c.tabFn()
}

// Rows returns the rows of the active tab
func (c *Coordinator) Rows() []query.Row {
	switch c.ActiveTab() {
	case domain.KindNode:
		return c.Query.NodeRows()
	case domain.KindProfile:
		return c.Query.ProfileRows()
	default:
		return c.Query.SubscriptionRows()
	}
}

// Counts returns the total item counts for the tab bar
func (c *Coordinator) Counts() (subs, nodes, profiles int) {
	return len(c.subs.GetAllSubscriptions()),
		len(c.nodes.GetAllNodes()),
		len(c.profiles.GetAllProfiles())
}

// MaxIndex returns the last navigable index of the active tab, 0 when
// the list is empty.
func (c *Coordinator) MaxIndex() int {
	if n := len(c.Rows()); n > 0 {
		return n - 1
	}
	return 0
}

// GetCurrentIndex returns the current navigation index
func (c *Coordinator) GetCurrentIndex() int {
	return c.Navigation.GetCursor()
}

// CurrentRow returns the row under the cursor, nil when the list is empty
func (c *Coordinator) CurrentRow() *query.Row {
	rows := c.Rows()
	index := c.Navigation.GetCursor()
	if index < 0 || index >= len(rows) {
		return nil
	}
	row := rows[index]
	return &row
}

// CurrentItemID returns the selectable id under the cursor, "" on
// section headers and when the list is empty.
func (c *Coordinator) CurrentItemID() string {
	if row := c.CurrentRow(); row != nil {
		return row.ItemID()
	}
	return ""
}

// IsOnProfileRow checks if the cursor is on a profile header or summary
func (c *Coordinator) IsOnProfileRow() bool {
	row := c.CurrentRow()
	if row == nil {
		return false
	}
	return row.Kind == query.RowProfileHeader || row.Kind == query.RowProfileSummary
}

// CurrentProfileName returns the profile under the cursor: the header
// or summary name, or the assignment of the item row.
func (c *Coordinator) CurrentProfileName() string {
	if row := c.CurrentRow(); row != nil {
		return row.Profile
	}
	return ""
}

// ProfileMemberIDs returns the ids of the items assigned to a profile
// on the given tab, collapsed sections included.
func (c *Coordinator) ProfileMemberIDs(kind domain.ItemKind, profile string) []string {
	var ids []string
	switch kind {
	case domain.KindNode:
		for id, node := range c.nodes.GetAllNodes() {
			if node.Profile == profile {
				ids = append(ids, id)
			}
		}
	case domain.KindSubscription:
		for id, sub := range c.subs.GetAllSubscriptions() {
			if sub.Profile == profile {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// MoveCursorToItem places the cursor on the row showing the given id
func (c *Coordinator) MoveCursorToItem(id string) {
	if index := query.IndexOf(c.Rows(), id); index >= 0 {
		c.Navigation.MoveToIndex(index)
	}
}

// SetViewportHeight updates viewport height across services
func (c *Coordinator) SetViewportHeight(height int) {
	c.Navigation.SetViewportHeight(height)
}
