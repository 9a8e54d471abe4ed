package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrilink/farm-market/internal/api/metrics"
	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
)

// BookingHandler handles HTTP requests for product bookings.
type BookingHandler struct {
	bookingService ports.BookingService
	auditService   ports.BookingEventService
}

func NewBookingHandler(bookingService ports.BookingService, auditService ports.BookingEventService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService, auditService: auditService}
}

type createBookingRequest struct {
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       string  `json:"phone" validate:"required,len=10,numeric"`
	Quantity    int     `json:"quantity" validate:"required,gte=1"`
	TotalAmount float64 `json:"total_amount" validate:"required,gte=0"`
	ProductName string  `json:"product_name" validate:"required"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ImgURL      string  `json:"img_url"`
}

type updateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled delivered"`
}

// Create places a booking owned by the caller.
//
// @Summary      Place a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookingService.Create(c.Request().Context(), actor, ports.BookingInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Quantity:    req.Quantity,
		TotalAmount: req.TotalAmount,
		ProductName: req.ProductName,
		Category:    req.Category,
		Description: req.Description,
		ImgURL:      req.ImgURL,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Booked successfully",
		"booking": booking,
	})
}

// ListAll returns every booking. Admin-only route.
func (h *BookingHandler) ListAll(c echo.Context) error {
	bookings, err := h.bookingService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// ListByOwner returns :userId's bookings, self-scoped.
func (h *BookingHandler) ListByOwner(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	bookings, err := h.bookingService.ListByOwner(c.Request().Context(), actor, c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// UpdateStatus moves a booking through its lifecycle. Admin-only route.
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookingService.UpdateStatus(c.Request().Context(), actor, c.Param("id"), domain.BookingStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Booking status updated successfully",
		"booking": booking,
	})
}

// History returns the status audit trail of a booking. Admin-only route.
func (h *BookingHandler) History(c echo.Context) error {
	// Confirm the booking exists so a bad id yields 404, not an empty trail.
	if _, err := h.bookingService.Get(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	events, err := h.auditService.History(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Delete removes a booking. Admin-only route.
func (h *BookingHandler) Delete(c echo.Context) error {
	if err := h.bookingService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Booking deleted successfully"})
}
