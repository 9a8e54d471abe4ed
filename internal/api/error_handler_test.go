package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/agrilink/farm-market/internal/core/domain"
)

func render(t *testing.T, err error) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return rec, body["error"]
}

func TestErrorHandler_DomainSentinels(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"identity exists", domain.ErrIdentityExists, http.StatusBadRequest},
		{"identity not found", domain.ErrIdentityNotFound, http.StatusNotFound},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"farm not found", domain.ErrFarmNotFound, http.StatusNotFound},
		{"crop not found", domain.ErrCropNotFound, http.StatusNotFound},
		{"booking not found", domain.ErrBookingNotFound, http.StatusNotFound},
		{"product not found", domain.ErrProductNotFound, http.StatusNotFound},
		{"crop info not found", domain.ErrCropInfoNotFound, http.StatusNotFound},
		{"crop info exists", domain.ErrCropInfoExists, http.StatusBadRequest},
		{"invalid transition", domain.ErrInvalidTransition, http.StatusBadRequest},
		{"invalid crop dates", domain.ErrInvalidCropDates, http.StatusBadRequest},
		{"corrupt credential", domain.ErrCorruptCredential, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, _ := render(t, tc.err)
			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
		})
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, msg := render(t, echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if msg != "not authorized, no token" {
		t.Fatalf("middleware message must pass through, got %q", msg)
	}
}

// Internal failures must never leak their cause to the client.
func TestErrorHandler_UnexpectedError(t *testing.T) {
	rec, msg := render(t, errors.New("mongo: connection reset"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}
