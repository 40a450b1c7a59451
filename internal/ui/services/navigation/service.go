package navigation

// Service handles cursor and viewport movement over the active list.
// The list itself lives elsewhere; maxFn reports how far down we may go.
type Service struct {
	state *State
	maxFn func() int
}

// NewService creates a new navigation service
func NewService() *Service {
	return &Service{
		state: &State{
			ViewportHeight: 20, // Default, will be updated
		},
	}
}

// SetMaxIndexFunction sets the function that reports the last valid index
func (s *Service) SetMaxIndexFunction(fn func() int) {
	s.maxFn = fn
}

// GetCursor returns current cursor position
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetViewportOffset returns current viewport offset
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns current viewport height
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates viewport height from the terminal height
func (s *Service) SetViewportHeight(height int) {
	// Reserve space for title, tab bar, input line and footer
	effectiveHeight := height - 8
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}
	s.state.ViewportHeight = effectiveHeight
	s.ensureVisible()
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	switch direction {
	case DirectionUp:
		s.moveUp()
	case DirectionDown:
		s.moveDown()
	case DirectionPageUp:
		s.pageUp()
	case DirectionPageDown:
		s.pageDown()
	case DirectionHome:
		s.moveToStart()
	case DirectionEnd:
		s.moveToEnd()
	}
}

// MoveToIndex moves cursor to a specific index
func (s *Service) MoveToIndex(index int) {
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()
}

// Clamp re-applies bounds after the underlying list shrank or grew
func (s *Service) Clamp() {
	s.state.Cursor = s.clampIndex(s.state.Cursor)
	s.ensureVisible()
}

func (s *Service) moveUp() {
	if s.state.Cursor > 0 {
		s.state.Cursor--
		s.ensureVisible()
	}
}

func (s *Service) moveDown() {
	s.refreshMaxIndex()
	if s.state.Cursor < s.state.MaxIndex {
		s.state.Cursor++
		s.ensureVisible()
	}
}

func (s *Service) pageUp() {
	pageSize := s.state.ViewportHeight - 1
	s.state.Cursor = s.clampIndex(s.state.Cursor - pageSize)

	s.state.ViewportOffset -= pageSize
	if s.state.ViewportOffset < 0 {
		s.state.ViewportOffset = 0
	}
	s.ensureVisible()
}

func (s *Service) pageDown() {
	pageSize := s.state.ViewportHeight - 1
	s.state.Cursor = s.clampIndex(s.state.Cursor + pageSize)
	s.ensureVisible()
}

func (s *Service) moveToStart() {
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
}

func (s *Service) moveToEnd() {
	s.refreshMaxIndex()
	s.state.Cursor = s.state.MaxIndex
	s.ensureVisible()
}

func (s *Service) refreshMaxIndex() {
	if s.maxFn != nil {
		s.state.MaxIndex = s.maxFn()
	}
}

func (s *Service) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	s.refreshMaxIndex()
	if index > s.state.MaxIndex {
		return s.state.MaxIndex
	}
	return index
}

func (s *Service) ensureVisible() {
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
	if s.state.ViewportOffset < 0 {
		s.state.ViewportOffset = 0
	}
}
