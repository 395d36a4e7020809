package ports

import (
	"context"

	"github.com/agrocampo/farm-system/internal/core/domain"
)

// ListFarmsInput carries the query parameters for listing farms.
type ListFarmsInput struct {
	Search string
	Limit  int
	Offset int
}

// CreateFarmInput carries the data for a new farm record.
type CreateFarmInput struct {
	Name        string
	Address     string
	City        string
	State       string
	TotalArea   float64
	PastureArea float64
	CapacityUA  float64
	Manager     string
	Phone       string
	Email       string
	Notes       string
}

// FarmService defines use-case operations on farm records.
type FarmService interface {
	List(ctx context.Context, in ListFarmsInput) ([]*domain.Farm, error)
	Get(ctx context.Context, id string) (*domain.Farm, error)
	Create(ctx context.Context, in CreateFarmInput) (*domain.Farm, error)
	Update(ctx context.Context, id string, in FarmRecordUpdate) error
	Delete(ctx context.Context, id string) error
}
