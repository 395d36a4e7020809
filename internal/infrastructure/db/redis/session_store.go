package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/agrocampo/farm-system/internal/core/domain"
)

const (
	sessionKeyPrefix  = "session:"
	defaultSessionTTL = 12 * time.Hour
)

// SessionStore persists login sessions in Redis, keyed by an opaque UUID that
// travels to the client only inside a cookie. Sessions expire after the
// configured TTL; expiry is indistinguishable from logout for readers.
//
// Each session is owned by a single client context. Two requests mutating the
// same session concurrently (a logout racing a password change) resolve as
// last-write-wins; this race is accepted rather than locked around.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
// A default TTL is applied when none is provided.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Issue creates a new session under a fresh identifier. The snapshot fully
// overwrites any previous value; there are no merge semantics.
func (s *SessionStore) Issue(ctx context.Context, sess domain.Session) (string, error) {
	payload, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("encode session: %w", err)
	}

	id := uuid.NewString()
	if err := s.client.Set(ctx, s.key(id), payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("issue session: %w", err)
	}
	return id, nil
}

// Get returns the session for id, or (nil, nil) when absent or expired.
func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return nil, nil
	}

	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

// Clear destroys the session. Idempotent.
func (s *SessionStore) Clear(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// SetTempPassword rewrites only the provisional-credential flag of the live
// session, preserving its remaining TTL. A no-op when the session is gone.
func (s *SessionStore) SetTempPassword(ctx context.Context, id string, temp bool) error {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if sess == nil {
		return nil
	}

	sess.TempPassword = temp
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	// SetXX: only rewrite if the key still exists, keeping its TTL.
	if err := s.client.SetXX(ctx, s.key(id), payload, redis.KeepTTL).Err(); err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(id string) string {
	return sessionKeyPrefix + id
}
