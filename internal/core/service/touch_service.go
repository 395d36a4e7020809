package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/agrocampo/farm-system/internal/core/ports"
)

type touchService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

// NewTouchService returns the LoginRecorder used by the background dispatcher
// to stamp last-login timestamps.
func NewTouchService(users ports.UserRepository, log zerolog.Logger) ports.LoginRecorder {
	return &touchService{users: users, log: log}
}

func (s *touchService) Record(ctx context.Context, t ports.LoginTouch) error {
	if err := s.users.UpdateLastLogin(ctx, t.UserID, t.At); err != nil {
		return fmt.Errorf("record login touch: %w", err)
	}
	s.log.Debug().Str("user_id", t.UserID).Time("at", t.At).Msg("last login recorded")
	return nil
}
