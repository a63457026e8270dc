// ABOUTME: Session storage persisting viewer sessions as JSON in any Cache backend
// ABOUTME: Maps cache misses to absent sessions and derives the TTL from the session expiry

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"splitview-api/core/domain"
	"splitview-api/core/interfaces"
)

const keyPrefix = "session:"

// SessionStore implements interfaces.SessionStorage over a Cache
type SessionStore struct {
	cache interfaces.Cache
}

// NewSessionStore creates a store writing through cache
func NewSessionStore(cache interfaces.Cache) *SessionStore {
	return &SessionStore{cache: cache}
}

// Save encodes session and stores it until it expires
func (s *SessionStore) Save(ctx context.Context, session *domain.Session) error {
	if session == nil || session.ID == "" {
		return errors.New("session must have an ID")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID, err)
	}

	var ttl time.Duration
	if session.ExpiresAt != nil {
		ttl = time.Until(*session.ExpiresAt)
		if ttl <= 0 {
			return s.cache.Delete(ctx, key(session.ID))
		}
	}

	return s.cache.Set(ctx, key(session.ID), data, ttl)
}

// Get returns the session or nil when it is not stored
func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := s.cache.Get(ctx, key(id))
	if errors.Is(err, interfaces.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &session, nil
}

// Delete removes the session
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.cache.Delete(ctx, key(id))
}

func key(id string) string {
	return keyPrefix + id
}
