package store

import (
	"sync"

	"subgrip/internal/domain"
)

// MemorySubscriptionStore is an in-memory implementation of SubscriptionStore
type MemorySubscriptionStore struct {
	mu   sync.RWMutex
	subs map[string]*domain.Subscription
}

// NewMemorySubscriptionStore creates a new memory-based subscription store
func NewMemorySubscriptionStore() *MemorySubscriptionStore {
	return &MemorySubscriptionStore{
		subs: make(map[string]*domain.Subscription),
	}
}

func (s *MemorySubscriptionStore) GetSubscription(id string) *domain.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subs[id]
}

func (s *MemorySubscriptionStore) GetAllSubscriptions() map[string]*domain.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make(map[string]*domain.Subscription)
	for k, v := range s.subs {
		result[k] = v
	}
	return result
}

func (s *MemorySubscriptionStore) AddSubscription(sub *domain.Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[sub.ID] = sub
}

func (s *MemorySubscriptionStore) UpdateSubscription(sub *domain.Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[sub.ID] = sub
}

func (s *MemorySubscriptionStore) RemoveSubscription(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}

func (s *MemorySubscriptionStore) ReplaceSubscriptions(subs []domain.Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = make(map[string]*domain.Subscription, len(subs))
	for i := range subs {
		s.subs[subs[i].ID] = &subs[i]
	}
}

// MemoryNodeStore is an in-memory implementation of NodeStore
type MemoryNodeStore struct {
	mu    sync.RWMutex
	nodes map[string]*domain.Node
}

// NewMemoryNodeStore creates a new memory-based node store
func NewMemoryNodeStore() *MemoryNodeStore {
	return &MemoryNodeStore{
		nodes: make(map[string]*domain.Node),
	}
}

func (s *MemoryNodeStore) GetNode(id string) *domain.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nodes[id]
}

func (s *MemoryNodeStore) GetAllNodes() map[string]*domain.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make(map[string]*domain.Node)
	for k, v := range s.nodes {
		result[k] = v
	}
	return result
}

func (s *MemoryNodeStore) AddNode(node *domain.Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes[node.ID] = node
}

func (s *MemoryNodeStore) UpdateNode(node *domain.Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes[node.ID] = node
}

func (s *MemoryNodeStore) RemoveNode(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.nodes, id)
}

func (s *MemoryNodeStore) ReplaceNodes(nodes []domain.Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes = make(map[string]*domain.Node, len(nodes))
	for i := range nodes {
		s.nodes[nodes[i].ID] = &nodes[i]
	}
}

// MemoryProfileStore is an in-memory implementation of ProfileStore
type MemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]*domain.Profile
}

// NewMemoryProfileStore creates a new memory-based profile store
func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{
		profiles: make(map[string]*domain.Profile),
	}
}

func (s *MemoryProfileStore) GetProfile(name string) *domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles[name]
}

func (s *MemoryProfileStore) GetAllProfiles() map[string]*domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make(map[string]*domain.Profile)
	for k, v := range s.profiles {
		result[k] = v
	}
	return result
}

func (s *MemoryProfileStore) AddProfile(profile *domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.Name] = profile
}

func (s *MemoryProfileStore) UpdateProfile(profile *domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.Name] = profile
}

func (s *MemoryProfileStore) DeleteProfile(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, name)
}

func (s *MemoryProfileStore) ReplaceProfiles(profiles []domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = make(map[string]*domain.Profile, len(profiles))
	for i := range profiles {
		s.profiles[profiles[i].Name] = &profiles[i]
	}
}
