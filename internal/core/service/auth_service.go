package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrocampo/farm-system/internal/api/metrics"
	"github.com/agrocampo/farm-system/internal/core/domain"
	"github.com/agrocampo/farm-system/internal/core/ports"
)

// AuthService implements the login, logout and password-change flows.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	touches  ports.TouchQueue
	loc      *time.Location
	log      zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionStore,
	touches ports.TouchQueue,
	loc *time.Location,
	log zerolog.Logger,
) *AuthService {
	if loc == nil {
		loc = time.UTC
	}
	return &AuthService{users: users, sessions: sessions, touches: touches, loc: loc, log: log}
}

// Login verifies the credential, migrates legacy plaintext records to a hash,
// and issues a session snapshot. A lookup miss and a secret mismatch produce
// the same ErrInvalidCredentials so the caller cannot tell which occurred.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	match, rehashNeeded := verifyStoredPassword(user.Password, password)
	if !match {
		return nil, domain.ErrInvalidCredentials
	}

	if rehashNeeded {
		s.rehash(ctx, user, password)
	}

	sessionID, err := s.sessions.Issue(ctx, domain.Session{
		UserID:       user.ID,
		Role:         user.Role,
		TempPassword: user.TempPassword,
		CreatedAt:    time.Now().In(s.loc),
	})
	if err != nil {
		return nil, err
	}

	// Last-login stamp is best effort: queued for a background worker and
	// never allowed to fail the login.
	s.touches.Enqueue(ports.LoginTouch{UserID: user.ID, At: time.Now().In(s.loc)})

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login succeeded")

	return &ports.LoginResult{
		SessionID:    sessionID,
		Role:         user.Role,
		TempPassword: user.TempPassword,
	}, nil
}

// rehash upgrades a legacy plaintext credential to a bcrypt hash. Failure is
// reported but does not fail the enclosing login.
func (s *AuthService) rehash(ctx context.Context, user *domain.User, password string) {
	hash, err := HashPassword(password)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to hash legacy password")
		return
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash, user.TempPassword); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to persist rehashed password")
		return
	}
	metrics.PasswordRehashTotal.Inc()
	s.log.Info().Str("user_id", user.ID).Msg("legacy plaintext password upgraded to hash")
}

// Logout clears the session unconditionally. It never fails: a store error is
// logged and swallowed so the client always ends up logged out.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear session on logout")
	}
	return nil
}

// ChangePassword sets a new secret for the user bound to the session. In the
// normal flow the current secret must verify first; in the forced flow (a
// provisional credential) that check is skipped. On success the record's
// forced-change flag is cleared and the live session is updated in place.
func (s *AuthService) ChangePassword(ctx context.Context, in ports.ChangePasswordInput) error {
	user, err := s.users.FindByID(ctx, in.UserID)
	if err != nil {
		return err
	}

	if !in.TempFlow {
		match, _ := verifyStoredPassword(user.Password, in.CurrentPassword)
		if !match {
			return domain.ErrInvalidCredentials
		}
	}

	hash, err := HashPassword(in.NewPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash, false); err != nil {
		return err
	}

	// The record is the source of truth; a session-store failure here only
	// delays the flag until the next login.
	if err := s.sessions.SetTempPassword(ctx, in.SessionID, false); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update session after password change")
	}

	s.log.Info().Str("user_id", user.ID).Bool("forced_flow", in.TempFlow).Msg("password changed")
	return nil
}
