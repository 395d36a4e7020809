package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/agrocampo/farm-system/internal/core/ports"
	"github.com/agrocampo/farm-system/pkg/dateutil"
)

// AnimalHandler exposes the livestock record endpoints.
type AnimalHandler struct {
	animals ports.AnimalService
	log     zerolog.Logger
}

func NewAnimalHandler(animals ports.AnimalService, log zerolog.Logger) *AnimalHandler {
	return &AnimalHandler{animals: animals, log: log}
}

// List godoc
// @Summary      List livestock records
// @Tags         animals
// @Produce      json
// @Param        busca   query     string  false  "Search term over code, kind, breed and notes"
// @Param        limit   query     int     false  "Page size"
// @Param        offset  query     int     false  "Page offset"
// @Success      200     {object}  animalListResponse
// @Router       /api/animais [get]
func (h *AnimalHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	animals, err := h.animals.List(c.Request().Context(), ports.ListAnimalsInput{
		Search: c.QueryParam("busca"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return err
	}

	resp := animalListResponse{Animals: make([]animalResponse, 0, len(animals)), Total: len(animals)}
	for _, a := range animals {
		resp.Animals = append(resp.Animals, toAnimalResponse(a))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Fetch a livestock record
// @Tags         animals
// @Produce      json
// @Param        id   path      string  true  "Record ID"
// @Success      200  {object}  animalResponse
// @Failure      404  {object}  api.errorResponse
// @Router       /api/animais/{id} [get]
func (h *AnimalHandler) Get(c echo.Context) error {
	animal, err := h.animals.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAnimalResponse(animal))
}

// Create godoc
// @Summary      Create a livestock record
// @Tags         animals
// @Accept       json
// @Produce      json
// @Param        animal  body      createAnimalRequest  true  "New record"
// @Success      201     {object}  createdResponse
// @Failure      400     {object}  api.errorResponse
// @Router       /api/animais [post]
func (h *AnimalHandler) Create(c echo.Context) error {
	var req createAnimalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	animal, err := h.animals.Create(c.Request().Context(), ports.CreateAnimalInput{
		Code:      req.Code,
		Kind:      req.Kind,
		Breed:     req.Breed,
		BirthDate: req.BirthDate,
		WeightKg:  req.WeightKg,
		Sex:       req.Sex,
		Status:    req.Status,
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createdResponse{Message: "animal created", ID: animal.ID})
}

// Update godoc
// @Summary      Update a livestock record
// @Tags         animals
// @Accept       json
// @Produce      json
// @Param        id      path      string               true  "Record ID"
// @Param        animal  body      updateAnimalRequest  true  "Fields to update"
// @Success      200     {object}  messageResponse
// @Failure      400     {object}  api.errorResponse
// @Failure      404     {object}  api.errorResponse
// @Router       /api/animais/{id} [put]
func (h *AnimalHandler) Update(c echo.Context) error {
	var req updateAnimalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	update := ports.AnimalRecordUpdate{
		Code:     req.Code,
		Kind:     req.Kind,
		Breed:    req.Breed,
		WeightKg: req.WeightKg,
		Sex:      req.Sex,
		Status:   req.Status,
		Notes:    req.Notes,
	}
	if req.BirthDate != nil {
		birth, err := dateutil.Parse(*req.BirthDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "data_nascimento must be dd/mm/yyyy")
		}
		update.BirthDate = birth
	}

	if err := h.animals.Update(c.Request().Context(), c.Param("id"), update); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "animal updated"})
}

// Delete godoc
// @Summary      Delete a livestock record
// @Tags         animals
// @Produce      json
// @Param        id   path      string  true  "Record ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  api.errorResponse
// @Router       /api/animais/{id} [delete]
func (h *AnimalHandler) Delete(c echo.Context) error {
	if err := h.animals.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "animal deleted"})
}
