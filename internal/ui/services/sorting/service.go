package sorting

import (
	"sort"
	"strings"

	"subgrip/internal/domain"
)

// Service handles sorting logic
type Service struct {
	state  *State
	subFn  func(string) *domain.Subscription // Function to get subscription
	nodeFn func(string) *domain.Node         // Function to get node
}

// NewService creates a new sorting service
func NewService() *Service {
	return &Service{
		state: &State{
			CurrentMode: SortByName, // Default
		},
	}
}

// SetSubscriptionFunction sets the function to get subscriptions
func (s *Service) SetSubscriptionFunction(fn func(string) *domain.Subscription) {
	s.subFn = fn
}

// SetNodeFunction sets the function to get nodes
func (s *Service) SetNodeFunction(fn func(string) *domain.Node) {
	s.nodeFn = fn
}

// GetCurrentMode returns the current sort mode
func (s *Service) GetCurrentMode() Mode {
	return s.state.CurrentMode
}

// SetMode sets the sort mode
func (s *Service) SetMode(mode Mode) {
	s.state.CurrentMode = mode
}

// NextMode cycles to the next sort mode
func (s *Service) NextMode() {
	modes := []Mode{
		SortByName,
		SortByRecent,
		SortByNodes,
		SortByProtocol,
	}

	currentIndex := 0
	for i, mode := range modes {
		if mode == s.state.CurrentMode {
			currentIndex = i
			break
		}
	}

	nextIndex := (currentIndex + 1) % len(modes)
	s.SetMode(modes[nextIndex])
}

// SortSubscriptions sorts a list of subscription ids in place
func (s *Service) SortSubscriptions(ids []string) {
	if s.subFn == nil {
		return
	}

	switch s.state.CurrentMode {
	case SortByRecent:
		sort.Slice(ids, func(i, j int) bool {
			subI := s.subFn(ids[i])
			subJ := s.subFn(ids[j])
			if subI == nil || subJ == nil {
				return subI == nil
			}
			tI := subI.Status.RefreshedAt
			tJ := subJ.Status.RefreshedAt
			if !tI.Equal(tJ) {
				return tI.After(tJ) // most recently refreshed first
			}
			return strings.ToLower(subI.Name) < strings.ToLower(subJ.Name)
		})

	case SortByNodes:
		sort.Slice(ids, func(i, j int) bool {
			subI := s.subFn(ids[i])
			subJ := s.subFn(ids[j])
			if subI == nil || subJ == nil {
				return subI == nil
			}
			if subI.Status.NodeCount != subJ.Status.NodeCount {
				return subI.Status.NodeCount > subJ.Status.NodeCount
			}
			return strings.ToLower(subI.Name) < strings.ToLower(subJ.Name)
		})

	default:
		// Protocol order has no meaning for subscriptions, fall back to name
		sort.Slice(ids, func(i, j int) bool {
			subI := s.subFn(ids[i])
			subJ := s.subFn(ids[j])
			if subI == nil || subJ == nil {
				return subI == nil
			}
			return strings.ToLower(subI.Name) < strings.ToLower(subJ.Name)
		})
	}
}

// SortNodes sorts a list of node ids in place
func (s *Service) SortNodes(ids []string) {
	if s.nodeFn == nil {
		return
	}

	switch s.state.CurrentMode {
	case SortByProtocol:
		sort.Slice(ids, func(i, j int) bool {
			nodeI := s.nodeFn(ids[i])
			nodeJ := s.nodeFn(ids[j])
			if nodeI == nil || nodeJ == nil {
				return nodeI == nil
			}
			pI := strings.ToLower(nodeI.Protocol)
			pJ := strings.ToLower(nodeJ.Protocol)
			if pI != pJ {
				return pI < pJ
			}
			return strings.ToLower(nodeI.Name) < strings.ToLower(nodeJ.Name)
		})

	default:
		sort.Slice(ids, func(i, j int) bool {
			nodeI := s.nodeFn(ids[i])
			nodeJ := s.nodeFn(ids[j])
			if nodeI == nil || nodeJ == nil {
				return nodeI == nil
			}
			return strings.ToLower(nodeI.Name) < strings.ToLower(nodeJ.Name)
		})
	}
}

// SortProfiles sorts profile names alphabetically
func (s *Service) SortProfiles(names []string) {
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
}

// GetModeString returns a string representation of the current mode
func (s *Service) GetModeString() string {
	switch s.state.CurrentMode {
	case SortByName:
		return "name"
	case SortByRecent:
		return "recent"
	case SortByNodes:
		return "nodes"
	case SortByProtocol:
		return "protocol"
	default:
		return "unknown"
	}
}
