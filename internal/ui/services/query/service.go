package query

import (
	"sort"
	"strings"

	"subgrip/internal/domain"
	"subgrip/internal/store"
)

// Service composes the visible rows of each tab from the stores, the
// ordered id lists pushed in by the coordinator, the filter and the
// per-profile expansion state.
type Service struct {
	subs     store.SubscriptionStore
	nodes    store.NodeStore
	profiles store.ProfileStore

	orderedProfiles []string
	orderedSubs     []string
	orderedNodes    []string
	expanded        map[string]bool
	filter          string
}

// NewService creates a new query service
func NewService(subs store.SubscriptionStore, nodes store.NodeStore, profiles store.ProfileStore) *Service {
	return &Service{
		subs:     subs,
		nodes:    nodes,
		profiles: profiles,
		expanded: make(map[string]bool),
	}
}

// SetOrderedProfiles updates the profile ordering. New profiles start expanded.
func (s *Service) SetOrderedProfiles(names []string) {
	s.orderedProfiles = names
	for _, name := range names {
		if _, known := s.expanded[name]; !known {
			s.expanded[name] = true
		}
	}
}

// SetOrderedSubs updates the subscription ordering
func (s *Service) SetOrderedSubs(ids []string) {
	s.orderedSubs = ids
}

// SetOrderedNodes updates the node ordering
func (s *Service) SetOrderedNodes(ids []string) {
	s.orderedNodes = ids
}

// SetFilter sets the active filter query ("" clears)
func (s *Service) SetFilter(query string) {
	s.filter = strings.TrimSpace(query)
}

// Filter returns the active filter query
func (s *Service) Filter() string {
	return s.filter
}

// IsFiltered reports whether a filter is active
func (s *Service) IsFiltered() bool {
	return s.filter != ""
}

// IsExpanded reports whether a profile section is expanded
func (s *Service) IsExpanded(name string) bool {
	expanded, known := s.expanded[name]
	return !known || expanded
}

// ToggleProfile flips a profile section between expanded and collapsed
func (s *Service) ToggleProfile(name string) {
	s.expanded[name] = !s.IsExpanded(name)
}

// SetExpanded sets a profile section's expansion state directly
func (s *Service) SetExpanded(name string, expanded bool) {
	s.expanded[name] = expanded
}

// ExpandAll expands every known profile section
func (s *Service) ExpandAll() {
	for _, name := range s.orderedProfiles {
		s.expanded[name] = true
	}
}

// CollapseAll collapses every known profile section
func (s *Service) CollapseAll() {
	for _, name := range s.orderedProfiles {
		s.expanded[name] = false
	}
}

// SubscriptionRows builds the rows of the subscriptions tab
func (s *Service) SubscriptionRows() []Row {
	all := s.subs.GetAllSubscriptions()
	byProfile := make(map[string][]*domain.Subscription)
	var ungrouped []*domain.Subscription

	for _, id := range s.orderedSubs {
		sub := all[id]
		if sub == nil || !s.matchesSub(sub) {
			continue
		}
		if sub.Profile == "" {
			ungrouped = append(ungrouped, sub)
		} else {
			byProfile[sub.Profile] = append(byProfile[sub.Profile], sub)
		}
	}

	var rows []Row
	appendSection := func(name string, members []*domain.Subscription) {
		rows = append(rows, Row{Kind: RowProfileHeader, Profile: name, Count: len(members)})
		if s.IsExpanded(name) {
			for _, sub := range members {
				rows = append(rows, Row{Kind: RowSubscription, Profile: name, Sub: sub})
			}
		}
	}

	for _, name := range s.orderedProfiles {
		if members := byProfile[name]; len(members) > 0 {
			appendSection(name, members)
			delete(byProfile, name)
		}
	}
	// Items pointing at profiles the server hasn't listed yet
	for _, name := range sortedKeys(byProfile) {
		appendSection(name, byProfile[name])
	}

	for _, sub := range ungrouped {
		rows = append(rows, Row{Kind: RowSubscription, Sub: sub})
	}
	return rows
}

// NodeRows builds the rows of the nodes tab
func (s *Service) NodeRows() []Row {
	all := s.nodes.GetAllNodes()
	byProfile := make(map[string][]*domain.Node)
	var ungrouped []*domain.Node

	for _, id := range s.orderedNodes {
		node := all[id]
		if node == nil || !s.matchesNode(node) {
			continue
		}
		if node.Profile == "" {
			ungrouped = append(ungrouped, node)
		} else {
			byProfile[node.Profile] = append(byProfile[node.Profile], node)
		}
	}

	var rows []Row
	appendSection := func(name string, members []*domain.Node) {
		rows = append(rows, Row{Kind: RowProfileHeader, Profile: name, Count: len(members)})
		if s.IsExpanded(name) {
			for _, node := range members {
				rows = append(rows, Row{Kind: RowNode, Profile: name, Node: node})
			}
		}
	}

	for _, name := range s.orderedProfiles {
		if members := byProfile[name]; len(members) > 0 {
			appendSection(name, members)
			delete(byProfile, name)
		}
	}
	for _, name := range sortedNodeKeys(byProfile) {
		appendSection(name, byProfile[name])
	}

	for _, node := range ungrouped {
		rows = append(rows, Row{Kind: RowNode, Node: node})
	}
	return rows
}

// ProfileRows builds the rows of the profiles tab
func (s *Service) ProfileRows() []Row {
	all := s.profiles.GetAllProfiles()

	var rows []Row
	for _, name := range s.orderedProfiles {
		profile := all[name]
		if profile == nil || !s.matchesProfile(profile) {
			continue
		}
		rows = append(rows, Row{
			Kind:    RowProfileSummary,
			Profile: name,
			Count:   len(profile.Subs) + len(profile.Nodes),
		})
	}
	return rows
}

// VisibleSubscriptions returns the subscriptions that currently have a
// row, in row order. Items in collapsed sections are not visible.
func (s *Service) VisibleSubscriptions() []*domain.Subscription {
	var out []*domain.Subscription
	for _, row := range s.SubscriptionRows() {
		if row.Kind == RowSubscription {
			out = append(out, row.Sub)
		}
	}
	return out
}

// VisibleNodes returns the nodes that currently have a row, in row order
func (s *Service) VisibleNodes() []*domain.Node {
	var out []*domain.Node
	for _, row := range s.NodeRows() {
		if row.Kind == RowNode {
			out = append(out, row.Node)
		}
	}
	return out
}

// VisibleProfiles returns the profiles shown on the profiles tab
func (s *Service) VisibleProfiles() []*domain.Profile {
	all := s.profiles.GetAllProfiles()
	var out []*domain.Profile
	for _, row := range s.ProfileRows() {
		if p := all[row.Profile]; p != nil {
			out = append(out, p)
		}
	}
	return out
}

// matchesSub applies the filter to a subscription. "state:" filters the
// enabled flag and error state, "profile:" matches the assignment, and
// anything else substring-matches name, url and profile.
func (s *Service) matchesSub(sub *domain.Subscription) bool {
	q := strings.ToLower(s.filter)
	if q == "" {
		return true
	}

	switch {
	case q == "state:on":
		return sub.Enabled
	case q == "state:off":
		return !sub.Enabled
	case q == "state:error":
		return sub.Status.Error != ""
	case strings.HasPrefix(q, "profile:"):
		return strings.EqualFold(sub.Profile, strings.TrimPrefix(q, "profile:"))
	}

	return strings.Contains(strings.ToLower(sub.Name), q) ||
		strings.Contains(strings.ToLower(sub.URL), q) ||
		strings.Contains(strings.ToLower(sub.Profile), q)
}

// matchesNode applies the filter to a node, adding a "proto:" prefix for
// protocol matching.
func (s *Service) matchesNode(node *domain.Node) bool {
	q := strings.ToLower(s.filter)
	if q == "" {
		return true
	}

	switch {
	case q == "state:on":
		return node.Enabled
	case q == "state:off":
		return !node.Enabled
	case strings.HasPrefix(q, "proto:"):
		return strings.EqualFold(node.Protocol, strings.TrimPrefix(q, "proto:"))
	case strings.HasPrefix(q, "profile:"):
		return strings.EqualFold(node.Profile, strings.TrimPrefix(q, "profile:"))
	}

	return strings.Contains(strings.ToLower(node.Name), q) ||
		strings.Contains(strings.ToLower(node.Address), q) ||
		strings.Contains(strings.ToLower(node.Protocol), q) ||
		strings.Contains(strings.ToLower(node.Profile), q)
}

func (s *Service) matchesProfile(profile *domain.Profile) bool {
	q := strings.ToLower(s.filter)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(profile.Name), q)
}

func sortedKeys(m map[string][]*domain.Subscription) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedNodeKeys(m map[string][]*domain.Node) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
