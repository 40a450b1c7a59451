package api

import "subgrip/internal/domain"

// SubscriptionsResponse wraps the subscription listing.
type SubscriptionsResponse struct {
	Subscriptions []domain.Subscription `json:"subscriptions"`
}

// NodesResponse wraps the node listing.
type NodesResponse struct {
	Nodes []domain.Node `json:"nodes"`
}

// ProfilesResponse wraps the profile listing.
type ProfilesResponse struct {
	Profiles []domain.Profile `json:"profiles"`
}

// ExportRequest selects the items to render share links for.
type ExportRequest struct {
	Kind   domain.ItemKind `json:"kind"`
	IDs    []string        `json:"ids"`
	Format string          `json:"format,omitempty"`
}

// ExportResponse carries the rendered share text.
type ExportResponse struct {
	Content string `json:"content"`
}

type idsRequest struct {
	IDs []string `json:"ids"`
}

type enableRequest struct {
	Kind    domain.ItemKind `json:"kind"`
	IDs     []string        `json:"ids"`
	Enabled bool            `json:"enabled"`
}

type moveRequest struct {
	Kind    domain.ItemKind `json:"kind"`
	IDs     []string        `json:"ids"`
	Profile string          `json:"profile"`
}

type profileRequest struct {
	Name string `json:"name"`
}

type renameProfileRequest struct {
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
}
