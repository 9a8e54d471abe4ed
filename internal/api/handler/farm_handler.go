package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrilink/farm-market/internal/core/ports"
)

// FarmHandler handles HTTP requests for farm record-keeping.
type FarmHandler struct {
	farmService ports.FarmService
}

func NewFarmHandler(farmService ports.FarmService) *FarmHandler {
	return &FarmHandler{farmService: farmService}
}

type createFarmRequest struct {
	Name     string  `json:"name" validate:"required"`
	Location string  `json:"location" validate:"required"`
	AreaSize float64 `json:"area_size" validate:"required,gte=0"`
	CropType string  `json:"crop_type" validate:"required"`
}

type updateFarmRequest struct {
	Name     *string  `json:"name"`
	Location *string  `json:"location"`
	AreaSize *float64 `json:"area_size" validate:"omitempty,gte=0"`
	CropType *string  `json:"crop_type"`
}

// Create adds a new farm owned by the caller.
//
// @Summary      Add a farm
// @Tags         farms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createFarmRequest  true  "Farm details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Router       /api/farms [post]
func (h *FarmHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createFarmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	farm, err := h.farmService.Create(c.Request().Context(), actor, ports.FarmInput{
		Name:     req.Name,
		Location: req.Location,
		AreaSize: req.AreaSize,
		CropType: req.CropType,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Farm added successfully",
		"farm":    farm,
	})
}

// ListAll returns every farm. Public.
func (h *FarmHandler) ListAll(c echo.Context) error {
	farms, err := h.farmService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, farms)
}

// ListByOwner returns the farms owned by :userId, self-scoped.
func (h *FarmHandler) ListByOwner(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	farms, err := h.farmService.ListByOwner(c.Request().Context(), actor, c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, farms)
}

// Get returns a single farm, owner-or-admin only.
func (h *FarmHandler) Get(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	farm, err := h.farmService.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, farm)
}

// Update applies a partial mutation, owner-or-admin only.
func (h *FarmHandler) Update(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateFarmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	farm, err := h.farmService.Update(c.Request().Context(), actor, c.Param("id"), ports.FarmUpdate{
		Name:     req.Name,
		Location: req.Location,
		AreaSize: req.AreaSize,
		CropType: req.CropType,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Farm updated successfully",
		"farm":    farm,
	})
}

// Delete removes a farm, owner-or-admin only.
func (h *FarmHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.farmService.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Farm deleted successfully."})
}
