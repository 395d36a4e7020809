package ports

import (
	"context"
	"time"
)

// LoginTouch is a best-effort record update queued after a successful login.
type LoginTouch struct {
	UserID string
	At     time.Time
}

// LoginRecorder persists a LoginTouch.
type LoginRecorder interface {
	Record(ctx context.Context, t LoginTouch) error
}

// TouchQueue accepts touches for asynchronous processing. Failures never
// surface to the enclosing login.
type TouchQueue interface {
	Enqueue(t LoginTouch)
}
