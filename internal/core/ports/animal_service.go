package ports

import (
	"context"

	"github.com/agrocampo/farm-system/internal/core/domain"
)

// ListAnimalsInput carries the query parameters for listing animals.
type ListAnimalsInput struct {
	Search string
	Limit  int // capped by the service
	Offset int
}

// CreateAnimalInput carries the data for a new livestock record.
type CreateAnimalInput struct {
	Code      string
	Kind      string
	Breed     string
	BirthDate string // dd/mm/yyyy, optional
	WeightKg  float64
	Sex       string
	Status    string
	Notes     string
}

// AnimalService defines use-case operations on livestock records.
type AnimalService interface {
	List(ctx context.Context, in ListAnimalsInput) ([]*domain.Animal, error)
	Get(ctx context.Context, id string) (*domain.Animal, error)
	Create(ctx context.Context, in CreateAnimalInput) (*domain.Animal, error)
	Update(ctx context.Context, id string, in AnimalRecordUpdate) error
	Delete(ctx context.Context, id string) error
}
