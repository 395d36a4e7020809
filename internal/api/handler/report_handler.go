package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/agrocampo/farm-system/internal/core/ports"
)

// ReportHandler exposes the read-only aggregate endpoints.
type ReportHandler struct {
	reports ports.ReportService
	log     zerolog.Logger
}

func NewReportHandler(reports ports.ReportService, log zerolog.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, log: log}
}

// Dashboard godoc
// @Summary      Dashboard aggregates
// @Tags         reports
// @Produce      json
// @Success      200  {object}  ports.DashboardStats
// @Router       /api/dashboard/stats [get]
func (h *ReportHandler) Dashboard(c echo.Context) error {
	stats, err := h.reports.DashboardStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// AnimalsByKind godoc
// @Summary      Livestock count grouped by kind
// @Tags         reports
// @Produce      json
// @Success      200  {array}  domain.CountByGroup
// @Router       /api/relatorios/animais_por_tipo [get]
func (h *ReportHandler) AnimalsByKind(c echo.Context) error {
	rows, err := h.reports.AnimalsByKind(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}

// AnimalsByStatus godoc
// @Summary      Livestock count grouped by status
// @Tags         reports
// @Produce      json
// @Success      200  {array}  domain.CountByGroup
// @Router       /api/relatorios/animais_por_status [get]
func (h *ReportHandler) AnimalsByStatus(c echo.Context) error {
	rows, err := h.reports.AnimalsByStatus(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}

// SystemInfo godoc
// @Summary      Administrative system overview
// @Tags         reports
// @Produce      json
// @Success      200  {object}  ports.SystemInfo
// @Failure      403  {object}  api.errorResponse
// @Router       /api/system/info [get]
func (h *ReportHandler) SystemInfo(c echo.Context) error {
	info, err := h.reports.SystemInfo(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}
