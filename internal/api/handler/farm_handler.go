package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/agrocampo/farm-system/internal/core/ports"
)

// FarmHandler exposes the farm record endpoints.
type FarmHandler struct {
	farms ports.FarmService
	log   zerolog.Logger
}

func NewFarmHandler(farms ports.FarmService, log zerolog.Logger) *FarmHandler {
	return &FarmHandler{farms: farms, log: log}
}

// List godoc
// @Summary      List farms
// @Tags         farms
// @Produce      json
// @Param        busca   query     string  false  "Search term over name, city, state and manager"
// @Param        limit   query     int     false  "Page size"
// @Param        offset  query     int     false  "Page offset"
// @Success      200     {object}  farmListResponse
// @Router       /api/fazendas [get]
func (h *FarmHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	farms, err := h.farms.List(c.Request().Context(), ports.ListFarmsInput{
		Search: c.QueryParam("busca"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, farmListResponse{Farms: farms, Total: len(farms)})
}

// Get godoc
// @Summary      Fetch a farm
// @Tags         farms
// @Produce      json
// @Param        id   path      string  true  "Farm ID"
// @Success      200  {object}  domain.Farm
// @Failure      404  {object}  api.errorResponse
// @Router       /api/fazendas/{id} [get]
func (h *FarmHandler) Get(c echo.Context) error {
	farm, err := h.farms.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, farm)
}

// Create godoc
// @Summary      Create a farm
// @Tags         farms
// @Accept       json
// @Produce      json
// @Param        farm  body      createFarmRequest  true  "New farm"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  api.errorResponse
// @Router       /api/fazendas [post]
func (h *FarmHandler) Create(c echo.Context) error {
	var req createFarmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	farm, err := h.farms.Create(c.Request().Context(), ports.CreateFarmInput{
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		TotalArea:   req.TotalArea,
		PastureArea: req.PastureArea,
		CapacityUA:  req.CapacityUA,
		Manager:     req.Manager,
		Phone:       req.Phone,
		Email:       req.Email,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createdResponse{Message: "farm created", ID: farm.ID})
}

// Update godoc
// @Summary      Update a farm
// @Tags         farms
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Farm ID"
// @Param        farm  body      updateFarmRequest  true  "Fields to update"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  api.errorResponse
// @Router       /api/fazendas/{id} [put]
func (h *FarmHandler) Update(c echo.Context) error {
	var req updateFarmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	err := h.farms.Update(c.Request().Context(), c.Param("id"), ports.FarmRecordUpdate{
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		TotalArea:   req.TotalArea,
		PastureArea: req.PastureArea,
		CapacityUA:  req.CapacityUA,
		Manager:     req.Manager,
		Phone:       req.Phone,
		Email:       req.Email,
		Notes:       req.Notes,
		Active:      req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "farm updated"})
}

// Delete godoc
// @Summary      Delete a farm
// @Tags         farms
// @Produce      json
// @Param        id   path      string  true  "Farm ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  api.errorResponse
// @Router       /api/fazendas/{id} [delete]
func (h *FarmHandler) Delete(c echo.Context) error {
	if err := h.farms.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "farm deleted"})
}
