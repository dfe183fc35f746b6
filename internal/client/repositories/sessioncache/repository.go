// Package sessioncache persists the auth session between runs of the client.
//
// Durability is an add-on concern: the in-memory session owned by the session
// store stays authoritative, and a restored record still has to pass the
// session gate. The backing store is a single-row SQLite table written
// atomically, so a reader never sees a partially populated session.
package sessioncache

import (
	"context"

	"github.com/dmitrijs2005/storedash/internal/client/api"
)

// Record is the persisted shape of a session.
type Record struct {
	User            *api.User
	AccessToken     string
	RefreshToken    string
	IsAuthenticated bool
	ExpiresAt       int64
}

// Repository stores at most one session record.
type Repository interface {
	// Load returns the persisted record, or (nil, nil) when none exists.
	Load(ctx context.Context) (*Record, error)

	// Save replaces the persisted record atomically.
	Save(ctx context.Context, rec Record) error

	// Clear removes the persisted record. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
