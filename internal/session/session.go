// Package session keeps login state server-side. A session is a small
// record keyed by a random id; the browser only ever holds a signed
// token wrapping that id, so logout can invalidate the session for real.
package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a session id is unknown or expired.
var ErrNotFound = errors.New("session: not found")

// Session is the server-side login record
type Session struct {
	ID     string `json:"id"`      // Random session id
	UserID uint   `json:"user_id"` // The authenticated user
}

// Store persists sessions
type Store interface {
	Create(ctx context.Context, userID uint) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	// Delete is idempotent; deleting an absent session is not an error.
	Delete(ctx context.Context, id string) error
}
