// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for data persistence operations

package interfaces

import (
	"context"

	"splitview-api/core/domain"
)

// SessionStorage defines the interface for viewer session persistence
type SessionStorage interface {
	// Save persists a session
	Save(ctx context.Context, session *domain.Session) error

	// Get retrieves a session by ID
	Get(ctx context.Context, id string) (*domain.Session, error)

	// Delete removes a session by ID
	Delete(ctx context.Context, id string) error
}
