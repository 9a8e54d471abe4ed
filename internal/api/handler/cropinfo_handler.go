package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrilink/farm-market/internal/core/ports"
)

// CropInfoHandler handles crop reference data. Reads are public; mutations
// require the admin role.
type CropInfoHandler struct {
	cropInfoService ports.CropInfoService
}

func NewCropInfoHandler(cropInfoService ports.CropInfoService) *CropInfoHandler {
	return &CropInfoHandler{cropInfoService: cropInfoService}
}

type cropInfoRequest struct {
	Name             string   `json:"name" validate:"required"`
	ScientificName   string   `json:"scientific_name"`
	Season           string   `json:"season"`
	TemperatureRange string   `json:"temperature_range"`
	RainfallRange    string   `json:"rainfall_range"`
	SoilType         string   `json:"soil_type"`
	SowingTime       string   `json:"sowing_time"`
	HarvestTime      string   `json:"harvest_time"`
	Duration         string   `json:"duration"`
	ImgURL           string   `json:"img_url"`
	Pesticides       []string `json:"pesticides"`
	Fertilizers      []string `json:"fertilizers"`
}

// List returns all crop reference entries. Public.
func (h *CropInfoHandler) List(c echo.Context) error {
	infos, err := h.cropInfoService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, infos)
}

// Get returns a single crop reference entry. Public.
func (h *CropInfoHandler) Get(c echo.Context) error {
	info, err := h.cropInfoService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}

// Create adds a crop reference entry. Admin-only route.
func (h *CropInfoHandler) Create(c echo.Context) error {
	req, err := bindCropInfo(c)
	if err != nil {
		return err
	}

	info, err := h.cropInfoService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message":   "Crop info created.",
		"crop_info": info,
	})
}

// Update replaces a crop reference entry. Admin-only route.
func (h *CropInfoHandler) Update(c echo.Context) error {
	req, err := bindCropInfo(c)
	if err != nil {
		return err
	}

	info, err := h.cropInfoService.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":   "Crop info updated.",
		"crop_info": info,
	})
}

// Delete removes a crop reference entry. Admin-only route.
func (h *CropInfoHandler) Delete(c echo.Context) error {
	if err := h.cropInfoService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Crop info deleted."})
}

func (r *cropInfoRequest) toInput() ports.CropInfoInput {
	return ports.CropInfoInput{
		Name:             r.Name,
		ScientificName:   r.ScientificName,
		Season:           r.Season,
		TemperatureRange: r.TemperatureRange,
		RainfallRange:    r.RainfallRange,
		SoilType:         r.SoilType,
		SowingTime:       r.SowingTime,
		HarvestTime:      r.HarvestTime,
		Duration:         r.Duration,
		ImgURL:           r.ImgURL,
		Pesticides:       r.Pesticides,
		Fertilizers:      r.Fertilizers,
	}
}

func bindCropInfo(c echo.Context) (*cropInfoRequest, error) {
	var req cropInfoRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return &req, nil
}
