package store

import "subgrip/internal/domain"

// SubscriptionStore provides access to subscription data
type SubscriptionStore interface {
	GetSubscription(id string) *domain.Subscription
	GetAllSubscriptions() map[string]*domain.Subscription
	AddSubscription(sub *domain.Subscription)
	UpdateSubscription(sub *domain.Subscription)
	RemoveSubscription(id string)
	ReplaceSubscriptions(subs []domain.Subscription)
}

// NodeStore provides access to node data
type NodeStore interface {
	GetNode(id string) *domain.Node
	GetAllNodes() map[string]*domain.Node
	AddNode(node *domain.Node)
	UpdateNode(node *domain.Node)
	RemoveNode(id string)
	ReplaceNodes(nodes []domain.Node)
}

// ProfileStore provides access to profile data
type ProfileStore interface {
	GetProfile(name string) *domain.Profile
	GetAllProfiles() map[string]*domain.Profile
	AddProfile(profile *domain.Profile)
	UpdateProfile(profile *domain.Profile)
	DeleteProfile(name string)
	ReplaceProfiles(profiles []domain.Profile)
}
