package sorting

// Mode identifies a sort order for the item lists
type Mode int

const (
	SortByName Mode = iota
	SortByRecent
	SortByNodes
	SortByProtocol
)

// State holds sorting state
type State struct {
	CurrentMode Mode
}
