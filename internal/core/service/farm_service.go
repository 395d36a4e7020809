package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrocampo/farm-system/internal/core/domain"
	"github.com/agrocampo/farm-system/internal/core/ports"
)

type FarmService struct {
	repo   ports.FarmRepository
	logger zerolog.Logger
}

func NewFarmService(repo ports.FarmRepository, logger zerolog.Logger) *FarmService {
	return &FarmService{repo: repo, logger: logger}
}

func (s *FarmService) List(ctx context.Context, in ports.ListFarmsInput) ([]*domain.Farm, error) {
	limit, offset := clampPage(in.Limit, in.Offset)
	if in.Search != "" {
		return s.repo.Search(ctx, in.Search, limit, offset)
	}
	return s.repo.List(ctx, limit, offset)
}

func (s *FarmService) Get(ctx context.Context, id string) (*domain.Farm, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *FarmService) Create(ctx context.Context, in ports.CreateFarmInput) (*domain.Farm, error) {
	now := time.Now().UTC()
	farm := &domain.Farm{
		Name:        in.Name,
		Address:     in.Address,
		City:        in.City,
		State:       in.State,
		TotalArea:   in.TotalArea,
		PastureArea: in.PastureArea,
		CapacityUA:  in.CapacityUA,
		Manager:     in.Manager,
		Phone:       in.Phone,
		Email:       in.Email,
		Notes:       in.Notes,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, farm)
	if err != nil {
		s.logger.Error().Err(err).Str("nome", in.Name).Msg("failed to create farm")
		return nil, err
	}

	s.logger.Info().Str("id", created.ID).Str("nome", created.Name).Msg("farm created")
	return created, nil
}

func (s *FarmService) Update(ctx context.Context, id string, in ports.FarmRecordUpdate) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, in)
}

func (s *FarmService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
