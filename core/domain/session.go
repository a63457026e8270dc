// ABOUTME: Session domain model represents one split-view viewer and its history
// ABOUTME: Provides construction and expiration checking for viewer sessions

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is a single active split-view viewer
type Session struct {
	// ID is the unique identifier (UUID) for the session
	ID string `json:"id"`

	// History is the navigation log owned by this session
	History History `json:"history"`

	// CreatedAt is when the session was created
	CreatedAt time.Time `json:"createdAt"`

	// ExpiresAt is when the session expires (nil means no expiration)
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// NewSession creates a new Session with an empty history.
// A ttl of zero creates a session that never expires.
func NewSession(ttl time.Duration) *Session {
	now := time.Now()
	session := &Session{
		ID:        uuid.New().String(),
		History:   NewHistory(),
		CreatedAt: now,
	}
	if ttl > 0 {
		expires := now.Add(ttl)
		session.ExpiresAt = &expires
	}
	return session
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	if s.ExpiresAt == nil {
		return false
	}

	return time.Now().After(*s.ExpiresAt)
}

// Touch pushes the expiration forward by ttl
func (s *Session) Touch(ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	expires := time.Now().Add(ttl)
	s.ExpiresAt = &expires
}
