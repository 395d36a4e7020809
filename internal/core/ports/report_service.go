package ports

import (
	"context"

	"github.com/agrocampo/farm-system/internal/core/domain"
)

// DashboardStats is the aggregate view backing the dashboard.
type DashboardStats struct {
	AnimalsByKind []domain.CountByGroup
}

// SystemInfo is the administrative overview of the installation.
type SystemInfo struct {
	TotalUsers   int64
	TotalAnimals int64
	UsersByRole  []domain.CountByGroup
	RecentLogins []*domain.User
}

// ReportService produces read-only aggregates over the record store.
type ReportService interface {
	AnimalsByKind(ctx context.Context) ([]domain.CountByGroup, error)
	AnimalsByStatus(ctx context.Context) ([]domain.CountByGroup, error)
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	SystemInfo(ctx context.Context) (*SystemInfo, error)
}
