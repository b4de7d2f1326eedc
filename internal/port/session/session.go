package session

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

// Store is the narrow port for session state so callers depend on the
// contract, not on a concrete backend.
type Store interface {
	Set(ctx context.Context, actorID, token string, ttl time.Duration) error
	Get(ctx context.Context, actorID string) (string, error)
	Clear(ctx context.Context, actorID string) error
}
