package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agrilink/farm-market/internal/core/ports"
)

// CropHandler handles HTTP requests for crop record-keeping.
type CropHandler struct {
	cropService ports.CropService
}

func NewCropHandler(cropService ports.CropService) *CropHandler {
	return &CropHandler{cropService: cropService}
}

type createCropRequest struct {
	Name                 string    `json:"name" validate:"required"`
	Variety              string    `json:"variety" validate:"required"`
	Quantity             float64   `json:"quantity" validate:"required,gte=0"`
	PlantedDate          time.Time `json:"planted_date" validate:"required"`
	EstimatedHarvestDate time.Time `json:"estimated_harvest_date" validate:"required,gtefield=PlantedDate"`
}

type updateCropRequest struct {
	Name                 *string    `json:"name"`
	Variety              *string    `json:"variety"`
	Quantity             *float64   `json:"quantity" validate:"omitempty,gte=0"`
	PlantedDate          *time.Time `json:"planted_date"`
	EstimatedHarvestDate *time.Time `json:"estimated_harvest_date"`
}

// Create records a new crop planting owned by the caller.
func (h *CropHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createCropRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	crop, err := h.cropService.Create(c.Request().Context(), actor, ports.CropInput{
		Name:                 req.Name,
		Variety:              req.Variety,
		Quantity:             req.Quantity,
		PlantedDate:          req.PlantedDate,
		EstimatedHarvestDate: req.EstimatedHarvestDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, crop)
}

// ListByOwner returns the crops owned by :userId, self-scoped.
func (h *CropHandler) ListByOwner(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	crops, err := h.cropService.ListByOwner(c.Request().Context(), actor, c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, crops)
}

// Get returns a single crop, owner-or-admin only.
func (h *CropHandler) Get(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	crop, err := h.cropService.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, crop)
}

// Update applies a partial mutation, owner-or-admin only. Harvest-before-
// planting ordering is re-checked in full by the service once dates merge
// with the stored record.
func (h *CropHandler) Update(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateCropRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	crop, err := h.cropService.Update(c.Request().Context(), actor, c.Param("id"), ports.CropUpdate{
		Name:                 req.Name,
		Variety:              req.Variety,
		Quantity:             req.Quantity,
		PlantedDate:          req.PlantedDate,
		EstimatedHarvestDate: req.EstimatedHarvestDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, crop)
}

// Delete removes a crop, owner-or-admin only.
func (h *CropHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.cropService.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Crop deleted successfully."})
}
