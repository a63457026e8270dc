// ABOUTME: Session service owning one navigation history per split-view viewer
// ABOUTME: Loads, mutates and saves sessions through a SessionStorage backend

package viewer

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"splitview-api/core/domain"
	coreerrors "splitview-api/core/errors"
	"splitview-api/core/interfaces"
)

// SessionService handles viewer session operations. A session has a single
// active viewer, so loads and saves are not coordinated.
type SessionService struct {
	storage  interfaces.SessionStorage
	pipeline *Pipeline
	ttl      time.Duration
}

// NewSessionService creates a new session service instance
func NewSessionService(storage interfaces.SessionStorage, pipeline *Pipeline, ttl time.Duration) *SessionService {
	return &SessionService{
		storage:  storage,
		pipeline: pipeline,
		ttl:      ttl,
	}
}

// Create starts a session with an empty history
func (s *SessionService) Create(ctx context.Context) (*domain.Session, error) {
	session := domain.NewSession(s.ttl)
	if err := s.storage.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get retrieves a live session by ID
func (s *SessionService) Get(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "session ID cannot be empty"}
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "invalid session ID format"}
	}

	session, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, &coreerrors.NotFoundError{Resource: "session", ID: id}
	}

	if session.IsExpired() {
		_ = s.storage.Delete(ctx, id)
		return nil, &coreerrors.NotFoundError{Resource: "session", ID: id}
	}

	return session, nil
}

// Open resolves rawURL and records it as the newest entry, discarding any
// forward entries
func (s *SessionService) Open(ctx context.Context, id, rawURL, hint string) (*domain.Session, domain.ViewerDecision, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, domain.ViewerDecision{}, err
	}

	decision, err := s.pipeline.Resolve(ctx, rawURL, hint)
	if err != nil {
		return nil, domain.ViewerDecision{}, err
	}

	session.History.Open(HistoryEntry(decision))
	if err := s.save(ctx, session); err != nil {
		return nil, domain.ViewerDecision{}, err
	}

	return session, decision, nil
}

// OpenText records a text note as the newest entry
func (s *SessionService) OpenText(ctx context.Context, id, content, title string) (*domain.Session, error) {
	if strings.TrimSpace(content) == "" {
		return nil, &coreerrors.ValidationError{Field: "content", Message: "text content cannot be empty"}
	}

	return s.mutate(ctx, id, func(h *domain.History) {
		h.OpenText(content, title)
	})
}

// Back moves the cursor one entry back. It is a no-op at the oldest entry.
func (s *SessionService) Back(ctx context.Context, id string) (*domain.Session, error) {
	return s.mutate(ctx, id, func(h *domain.History) {
		h.Back()
	})
}

// Forward moves the cursor one entry forward. It is a no-op at the newest entry.
func (s *SessionService) Forward(ctx context.Context, id string) (*domain.Session, error) {
	return s.mutate(ctx, id, func(h *domain.History) {
		h.Forward()
	})
}

// SwitchToReaderMode flags the current entry for reader rendering
func (s *SessionService) SwitchToReaderMode(ctx context.Context, id string) (*domain.Session, error) {
	return s.mutate(ctx, id, func(h *domain.History) {
		h.SwitchToReaderMode()
	})
}

// Close deletes the session and its history
func (s *SessionService) Close(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.storage.Delete(ctx, id)
}

func (s *SessionService) mutate(ctx context.Context, id string, fn func(h *domain.History)) (*domain.Session, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fn(&session.History)

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) save(ctx context.Context, session *domain.Session) error {
	session.Touch(s.ttl)
	return s.storage.Save(ctx, session)
}
