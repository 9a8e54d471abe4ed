package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrilink/farm-market/internal/core/ports"
)

// ProductHandler handles the product catalogue. Reads are public; mutations
// are mounted under the admin group.
type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

type createProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"required,gte=0"`
	Description string  `json:"description"`
	ImgURL      string  `json:"img_url"`
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
	ImgURL      *string  `json:"img_url"`
	InStock     *bool    `json:"in_stock"`
}

// List returns the full catalogue. Public.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get returns a single product. Public.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.productService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create adds a product listing. Admin-only route.
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.Create(c.Request().Context(), ports.ProductInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		ImgURL:      req.ImgURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Product added successfully",
		"product": product,
	})
}

// Update applies a partial mutation. Admin-only route.
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.Update(c.Request().Context(), c.Param("id"), ports.ProductUpdate{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		ImgURL:      req.ImgURL,
		InStock:     req.InStock,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete removes a product. Admin-only route.
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.productService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Product deleted successfully"})
}
