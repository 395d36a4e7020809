package ports

import (
	"context"

	"github.com/agrocampo/farm-system/internal/core/domain"
)

// SessionStore holds server-side sessions keyed by an opaque identifier that
// travels to the client only inside a cookie.
//
// Sessions are owned by a single client context; concurrent mutation of the
// same session (e.g. a logout racing a password change) is resolved as
// last-write-wins. That race is accepted, not guarded against.
type SessionStore interface {
	// Issue creates a new session and returns its opaque identifier.
	// The snapshot fully overwrites; there are no merge semantics.
	Issue(ctx context.Context, s domain.Session) (string, error)

	// Get returns the session for id, or (nil, nil) when absent or expired.
	Get(ctx context.Context, id string) (*domain.Session, error)

	// Clear destroys the session. Idempotent: clearing an absent session
	// is not an error.
	Clear(ctx context.Context, id string) error

	// SetTempPassword mutates only the provisional-credential flag of the
	// session. A no-op when the session does not exist.
	SetTempPassword(ctx context.Context, id string, temp bool) error
}
