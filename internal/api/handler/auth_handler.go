package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrilink/farm-market/internal/api/metrics"
	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
)

// AuthHandler handles registration, login, and profile endpoints for both
// user types.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

type authResponse struct {
	Message string           `json:"message"`
	Token   string           `json:"token,omitempty"`
	User    *domain.Identity `json:"user,omitempty"`
}

// RegisterUser creates a new user account and logs the caller in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/users/register [post]
func (h *AuthHandler) RegisterUser(c echo.Context) error {
	req, err := bindRegister(c)
	if err != nil {
		return err
	}

	token, user, err := h.authService.RegisterUser(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(domain.RoleUser)).Inc()
	return c.JSON(http.StatusCreated, authResponse{
		Message: "User account created successfully.",
		Token:   token,
		User:    user,
	})
}

// LoginUser authenticates a user and returns a session token.
//
// @Summary      User login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Router       /api/users/login [post]
func (h *AuthHandler) LoginUser(c echo.Context) error {
	return h.login(c, domain.RoleUser, h.authService.LoginUser)
}

// RegisterAdmin creates a new administrator account.
//
// @Summary      Register a new admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Admin registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/register [post]
func (h *AuthHandler) RegisterAdmin(c echo.Context) error {
	req, err := bindRegister(c)
	if err != nil {
		return err
	}

	token, admin, err := h.authService.RegisterAdmin(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(domain.RoleAdmin)).Inc()
	return c.JSON(http.StatusCreated, authResponse{
		Message: "Admin account created successfully.",
		Token:   token,
		User:    admin,
	})
}

// LoginAdmin authenticates an administrator.
//
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Router       /api/admin/login [post]
func (h *AuthHandler) LoginAdmin(c echo.Context) error {
	return h.login(c, domain.RoleAdmin, h.authService.LoginAdmin)
}

// Profile returns the authenticated identity's own record.
//
// @Summary      Get own profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Identity
// @Failure      401  {object}  map[string]string
// @Router       /api/users/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.authService.Profile(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile applies a partial mutation to the caller's own record.
//
// @Summary      Update own profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/users/profile [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.authService.UpdateProfile(c.Request().Context(), actor, ports.ProfileUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{
		Message: "Profile updated successfully",
		User:    updated,
	})
}

type loginFunc func(ctx context.Context, email, password string) (string, *domain.Identity, error)

func (h *AuthHandler) login(c echo.Context, role domain.Role, fn loginFunc) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, identity, err := fn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(string(role), "failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues(string(role), "success").Inc()
	return c.JSON(http.StatusOK, authResponse{
		Message: "Login successful",
		Token:   token,
		User:    identity,
	})
}

func bindRegister(c echo.Context) (*registerRequest, error) {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return &req, nil
}
