package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrilink/farm-market/internal/core/domain"
)

// RequireRoles enforces role-based access control. It runs after Auth and
// before the resource is ever loaded; ownership checks on loaded resources
// live in the services.
func RequireRoles(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, _ := c.Get(IdentityKey).(*domain.Identity)
			if identity == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if _, ok := allowed[identity.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "role "+string(identity.Role)+" is not authorized to access this route")
			}
			return next(c)
		}
	}
}
