package domain

import "time"

// ItemKind distinguishes the kinds of items the console manages.
type ItemKind string

const (
	KindSubscription ItemKind = "subscription"
	KindNode         ItemKind = "node"
	KindProfile      ItemKind = "profile"
)

// Subscription represents a remote subscription link managed by the server.
type Subscription struct {
	ID      string    `json:"id"`      // unique identifier assigned by the server
	Name    string    `json:"name"`    // display name
	URL     string    `json:"url"`     // subscription link
	Profile string    `json:"profile"` // profile name it belongs to ("" if unassigned)
	Enabled bool      `json:"enabled"` // disabled subscriptions are skipped on refresh
	Status  SubStatus `json:"status"`
}

// ItemID returns the stable identifier used for selection and lookups.
func (s Subscription) ItemID() string { return s.ID }

// SubStatus holds the outcome of the most recent refresh.
type SubStatus struct {
	NodeCount   int       `json:"node_count"`
	Delta       int       `json:"delta"` // node count change relative to the previous refresh
	RefreshedAt time.Time `json:"refreshed_at"`
	Error       string    `json:"error,omitempty"` // error message if the last refresh failed
}

// Node represents a single proxy node, imported by a subscription refresh
// or added manually.
type Node struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Protocol string `json:"protocol"` // vmess, vless, trojan, ss, ...
	Address  string `json:"address"`
	Port     int    `json:"port"`
	Profile  string `json:"profile"` // profile name it belongs to ("" if unassigned)
	Enabled  bool   `json:"enabled"`
	Source   string `json:"source,omitempty"` // id of the subscription that produced it ("" for manual nodes)
}

// ItemID returns the stable identifier used for selection and lookups.
func (n Node) ItemID() string { return n.ID }

// Profile is a named grouping of subscriptions and nodes.
type Profile struct {
	Name  string   `json:"name"`
	Subs  []string `json:"subs"`  // subscription ids
	Nodes []string `json:"nodes"` // node ids
}

// ItemID returns the profile name, which doubles as its identifier.
func (p Profile) ItemID() string { return p.Name }

// RefreshProgress represents the current bulk refresh state.
type RefreshProgress struct {
	InFlight  bool
	Completed int
	Total     int
}

// Settings mirrors the server-side preferences exposed by the management API.
type Settings struct {
	DefaultProfile     string `json:"default_profile"`
	AutoRefreshMinutes int    `json:"auto_refresh_minutes"`
	ExportFormat       string `json:"export_format"` // "links" or "base64"
}
