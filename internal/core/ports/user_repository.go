package ports

import (
	"context"
	"time"

	"github.com/agrocampo/farm-system/internal/core/domain"
)

// UserRecordUpdate carries the optional fields of a user update. Nil fields
// are left untouched. A non-nil PasswordHash re-marks the account as holding
// a provisional credential (the user must change it on next login).
type UserRecordUpdate struct {
	Name         *string
	Email        *string
	Role         *string
	PasswordHash *string
}

// UserRepository defines persistence for credential records.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, in UserRecordUpdate) error
	Delete(ctx context.Context, id string) error

	// UpdatePassword rewrites the stored secret and sets the provisional flag.
	// Used both by the password-change flow (temp=false) and by the
	// legacy-plaintext rehash migration (temp unchanged from the record).
	UpdatePassword(ctx context.Context, id, hash string, temp bool) error

	// UpdateLastLogin stamps the last successful authentication.
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error

	Count(ctx context.Context) (int64, error)
	CountAdmins(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context) ([]domain.CountByGroup, error)
	RecentLogins(ctx context.Context, limit int) ([]*domain.User, error)
}
