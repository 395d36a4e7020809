package ports

import (
	"context"

	"github.com/agrocampo/farm-system/internal/core/domain"
)

// FarmRecordUpdate carries the optional fields of a farm update. Nil fields
// are left untouched.
type FarmRecordUpdate struct {
	Name        *string
	Address     *string
	City        *string
	State       *string
	TotalArea   *float64
	PastureArea *float64
	CapacityUA  *float64
	Manager     *string
	Phone       *string
	Email       *string
	Notes       *string
	Active      *bool
}

// FarmRepository defines persistence for farm records.
type FarmRepository interface {
	List(ctx context.Context, limit, offset int) ([]*domain.Farm, error)
	// Search matches term against name, city, state and manager.
	Search(ctx context.Context, term string, limit, offset int) ([]*domain.Farm, error)
	FindByID(ctx context.Context, id string) (*domain.Farm, error)
	Create(ctx context.Context, f *domain.Farm) (*domain.Farm, error)
	Update(ctx context.Context, id string, in FarmRecordUpdate) error
	Delete(ctx context.Context, id string) error
}
