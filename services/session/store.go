package session

import (
	"context"
	"errors"

	"legalease/models"
)

// ErrSessionNotFound is returned when a session does not exist or has expired.
var ErrSessionNotFound = errors.New("session not found or expired")

// Store persists user sessions with a TTL. Implementations exist for
// in-memory (default) and Redis (SESSION_STORE=redis).
type Store interface {
	Put(ctx context.Context, session *models.UserSession) error
	Get(ctx context.Context, sessionID string) (*models.UserSession, error)
	Delete(ctx context.Context, sessionID string) error
}
