package service

import (
	"context"

	"github.com/agrocampo/farm-system/internal/core/domain"
	"github.com/agrocampo/farm-system/internal/core/ports"
)

const recentLoginsLimit = 5

// ReportService produces read-only aggregates for dashboards and reports.
type ReportService struct {
	animals ports.AnimalRepository
	users   ports.UserRepository
}

func NewReportService(animals ports.AnimalRepository, users ports.UserRepository) *ReportService {
	return &ReportService{animals: animals, users: users}
}

func (s *ReportService) AnimalsByKind(ctx context.Context) ([]domain.CountByGroup, error) {
	return s.animals.CountByKind(ctx)
}

func (s *ReportService) AnimalsByStatus(ctx context.Context) ([]domain.CountByGroup, error) {
	return s.animals.CountByStatus(ctx)
}

func (s *ReportService) DashboardStats(ctx context.Context) (*ports.DashboardStats, error) {
	byKind, err := s.animals.CountByKind(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.DashboardStats{AnimalsByKind: byKind}, nil
}

func (s *ReportService) SystemInfo(ctx context.Context) (*ports.SystemInfo, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalAnimals, err := s.animals.Count(ctx)
	if err != nil {
		return nil, err
	}
	byRole, err := s.users.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.users.RecentLogins(ctx, recentLoginsLimit)
	if err != nil {
		return nil, err
	}

	return &ports.SystemInfo{
		TotalUsers:   totalUsers,
		TotalAnimals: totalAnimals,
		UsersByRole:  byRole,
		RecentLogins: recent,
	}, nil
}
