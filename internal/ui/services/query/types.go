package query

import "subgrip/internal/domain"

// RowKind identifies what a list row shows
type RowKind int

const (
	RowProfileHeader  RowKind = iota // collapsible profile section on the item tabs
	RowSubscription                  // one subscription under a section or ungrouped
	RowNode                          // one node under a section or ungrouped
	RowProfileSummary                // flat profile line on the profiles tab
)

// Row is one renderable line of the active list
type Row struct {
	Kind    RowKind
	Profile string               // profile name for header/summary rows and grouped items
	Sub     *domain.Subscription // set when Kind == RowSubscription
	Node    *domain.Node         // set when Kind == RowNode
	Count   int                  // members under a header or summary row
}

// ItemID returns the selectable id of the row, "" for section headers
func (r Row) ItemID() string {
	switch r.Kind {
	case RowSubscription:
		return r.Sub.ID
	case RowNode:
		return r.Node.ID
	case RowProfileSummary:
		return r.Profile
	}
	return ""
}

// IndexOf returns the position of the row with the given id, or -1
func IndexOf(rows []Row, id string) int {
	if id == "" {
		return -1
	}
	for i, r := range rows {
		if r.ItemID() == id {
			return i
		}
	}
	return -1
}
