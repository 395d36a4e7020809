package ports

import (
	"context"

	"github.com/agrocampo/farm-system/internal/core/domain"
)

// CreateUserInput carries the data for provisioning a user. The assigned
// password is provisional: the account is created with the forced-change flag
// set and the user must pick a new secret on first login.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput carries the optional fields of an administrative user
// update. A non-nil Password is hashed and re-marks the account provisional.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Role     *string
	Password *string
}

// UserService defines administrative operations on user accounts.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) error
	Delete(ctx context.Context, id string) error
}
