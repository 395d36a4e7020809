package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrocampo/farm-system/internal/core/domain"
	"github.com/agrocampo/farm-system/internal/core/ports"
)

// ErrInvalidRole rejects a role outside the closed set.
var ErrInvalidRole = errors.New("invalid user role")

// UserService implements administrative user provisioning.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Create provisions a user account with a provisional password: the record is
// stored with the forced-change flag set so the first login is funneled into
// the password-change flow.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if !domain.ValidRole(in.Role) {
		return nil, ErrInvalidRole
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		Password:     hash,
		Role:         in.Role,
		TempPassword: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user provisioned")
	return created, nil
}

// Update applies an administrative edit. A new password is hashed here and
// re-marks the account provisional at the repository.
func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) error {
	if in.Role != nil && !domain.ValidRole(*in.Role) {
		return ErrInvalidRole
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	update := ports.UserRecordUpdate{Name: in.Name, Email: in.Email, Role: in.Role}
	if in.Password != nil && *in.Password != "" {
		hash, err := HashPassword(*in.Password)
		if err != nil {
			return err
		}
		update.PasswordHash = &hash
	}

	return s.repo.Update(ctx, id, update)
}

// Delete removes a user, refusing to delete the last administrator.
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if user.Role == domain.RoleAdmin {
		admins, err := s.repo.CountAdmins(ctx)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return domain.ErrLastAdmin
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
