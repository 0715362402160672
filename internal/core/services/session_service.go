package services

import (
	"sync"

	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
	portssvc "github.com/fincontrol/fincontrol_backend/internal/core/ports/services"
)

// SessionService owns the single current session. The mutex serializes the
// concurrent HTTP runtime down to the single-writer discipline the store
// assumes; callers always observe a consistent user-or-nil.
type SessionService struct {
	mu      sync.RWMutex
	current *domain.User
}

// NewSessionService creates an unauthenticated session holder.
func NewSessionService() *SessionService {
	return &SessionService{}
}

var _ portssvc.SessionSvcFacade = (*SessionService)(nil)

// CurrentUser returns a snapshot of the authenticated user, or nil. The copy
// keeps readers from mutating session state through the pointer.
func (s *SessionService) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	snapshot := *s.current
	return &snapshot
}

// SetCurrentUser switches the session to the given user.
func (s *SessionService) SetCurrentUser(user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &user
}

// ClearCurrentUser ends the session, returning the outgoing user or nil.
func (s *SessionService) ClearCurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	outgoing := s.current
	s.current = nil
	return outgoing
}
