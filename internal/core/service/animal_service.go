package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrocampo/farm-system/internal/core/domain"
	"github.com/agrocampo/farm-system/internal/core/ports"
	"github.com/agrocampo/farm-system/pkg/dateutil"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

type AnimalService struct {
	repo   ports.AnimalRepository
	logger zerolog.Logger
}

func NewAnimalService(repo ports.AnimalRepository, logger zerolog.Logger) *AnimalService {
	return &AnimalService{repo: repo, logger: logger}
}

func (s *AnimalService) List(ctx context.Context, in ports.ListAnimalsInput) ([]*domain.Animal, error) {
	limit, offset := clampPage(in.Limit, in.Offset)
	if in.Search != "" {
		return s.repo.Search(ctx, in.Search, limit, offset)
	}
	return s.repo.List(ctx, limit, offset)
}

func (s *AnimalService) Get(ctx context.Context, id string) (*domain.Animal, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AnimalService) Create(ctx context.Context, in ports.CreateAnimalInput) (*domain.Animal, error) {
	birthDate, err := dateutil.Parse(in.BirthDate)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = domain.AnimalStatusActive
	}

	now := time.Now().UTC()
	animal := &domain.Animal{
		Code:      in.Code,
		Kind:      in.Kind,
		Breed:     in.Breed,
		BirthDate: birthDate,
		WeightKg:  in.WeightKg,
		Sex:       in.Sex,
		Status:    status,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, animal)
	if err != nil {
		s.logger.Error().Err(err).Str("codigo", in.Code).Msg("failed to create animal")
		return nil, err
	}

	s.logger.Info().Str("id", created.ID).Str("codigo", created.Code).Msg("animal created")
	return created, nil
}

func (s *AnimalService) Update(ctx context.Context, id string, in ports.AnimalRecordUpdate) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, in)
}

func (s *AnimalService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// clampPage normalises pagination parameters.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
