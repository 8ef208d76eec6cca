package catalog

import "sync"

// Ticket identifies one issued query within a Session
type Ticket uint64

// Session tracks the most recently issued query so that a slow response to an
// older query cannot replace the result of a newer one.
type Session struct {
	mu        sync.Mutex
	latest    Ticket
	committed Ticket
	current   Result
	hasResult bool
	selected  *MovieSummary
}

// NewSession creates an empty Session
func NewSession() *Session {
	return &Session{}
}

// Begin issues a ticket for a new query. Every earlier ticket becomes stale.
func (s *Session) Begin() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest++
	return s.latest
}

// IsLatest reports whether t is the most recently issued ticket
func (s *Session) IsLatest(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return t == s.latest
}

// Commit stores result if t is still the latest ticket and reports whether it did.
// Committing clears any selection from the previous result.
func (s *Session) Commit(t Ticket, result Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t != s.latest || t <= s.committed {
		return false
	}

	s.committed = t
	s.current = result
	s.hasResult = true
	s.selected = nil
	return true
}

// Current returns the committed result
func (s *Session) Current() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current, s.hasResult
}

// Select marks the movie at 1-based position n of the committed result as selected
func (s *Session) Select(n int) (MovieSummary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	movie, ok := s.current.Select(n)
	if !ok {
		return MovieSummary{}, false
	}
	s.selected = &movie
	return movie, true
}

// Selected returns the selected movie, if any
func (s *Session) Selected() (MovieSummary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return MovieSummary{}, false
	}
	return *s.selected, true
}

// ClearSelection closes the detail view
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = nil
}
