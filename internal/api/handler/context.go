package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrilink/farm-market/internal/api/middleware"
	"github.com/agrilink/farm-market/internal/core/domain"
)

// ctxIdentity extracts the identity attached by the authentication gate and
// performs a fast-fail check before any service call: presence proves the
// gate ran, so a missing identity on a protected route is a wiring bug and
// the request is rejected rather than processed anonymously.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity, _ := c.Get(middleware.IdentityKey).(*domain.Identity)
	if identity == nil || identity.ID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
