package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
)

// AdminHandler exposes admin-side user management. Every route is behind the
// authentication gate plus the admin role check.
type AdminHandler struct {
	adminService ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role" validate:"omitempty,oneof=user admin"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// ListUsers returns every user with their farms and crops.
//
// @Summary      List users with owned records
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.UserOverview
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	overviews, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overviews)
}

// GetUser returns a single user record.
func (h *AdminHandler) GetUser(c echo.Context) error {
	user, err := h.adminService.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser applies a partial mutation to a user record. The role value,
// when present, must be one of the recognised roles; free-text roles are
// rejected before they reach the store.
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var role *domain.Role
	if req.Role != nil {
		r := domain.Role(*req.Role)
		role = &r
	}

	updated, err := h.adminService.UpdateUser(c.Request().Context(), c.Param("id"), ports.UserUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "User updated successfully",
		"user":    updated,
	})
}

// DeleteUser removes a user record.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.adminService.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}
