package ports

import (
	"context"
	"time"

	"github.com/agrocampo/farm-system/internal/core/domain"
)

// AnimalRecordUpdate carries the optional fields of an animal update.
// Nil fields are left untouched.
type AnimalRecordUpdate struct {
	Code      *string
	Kind      *string
	Breed     *string
	BirthDate *time.Time
	WeightKg  *float64
	Sex       *string
	Status    *string
	Notes     *string
}

// AnimalRepository defines persistence for livestock records.
type AnimalRepository interface {
	List(ctx context.Context, limit, offset int) ([]*domain.Animal, error)
	// Search matches term against code, kind, breed and notes.
	Search(ctx context.Context, term string, limit, offset int) ([]*domain.Animal, error)
	FindByID(ctx context.Context, id string) (*domain.Animal, error)
	Create(ctx context.Context, a *domain.Animal) (*domain.Animal, error)
	Update(ctx context.Context, id string, in AnimalRecordUpdate) error
	Delete(ctx context.Context, id string) error

	Count(ctx context.Context) (int64, error)
	CountByKind(ctx context.Context) ([]domain.CountByGroup, error)
	CountByStatus(ctx context.Context) ([]domain.CountByGroup, error)
}
