package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/agrilink/farm-market/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrIdentityExists):
		return http.StatusBadRequest, "account with this email already exists"
	case errors.Is(err, domain.ErrIdentityNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "invalid role"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "not authorized to access this resource"
	case errors.Is(err, domain.ErrFarmNotFound):
		return http.StatusNotFound, "farm not found"
	case errors.Is(err, domain.ErrCropNotFound):
		return http.StatusNotFound, "crop not found"
	case errors.Is(err, domain.ErrBookingNotFound):
		return http.StatusNotFound, "booking not found"
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "product not found"
	case errors.Is(err, domain.ErrCropInfoNotFound):
		return http.StatusNotFound, "crop info not found"
	case errors.Is(err, domain.ErrCropInfoExists):
		return http.StatusBadRequest, "crop info with this name already exists"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusBadRequest, "invalid or missing status value"
	case errors.Is(err, domain.ErrInvalidCropDates):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrCorruptCredential):
		// Data-integrity failure: log the real cause, never echo it.
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("corrupt credential record")
		return http.StatusInternalServerError, "internal server error"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
