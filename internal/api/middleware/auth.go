package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/agrilink/farm-market/internal/api/metrics"
	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/token"
)

// IdentityKey is the echo context key under which the gate stores the
// authenticated identity.
const IdentityKey = "identity"

// TokenVerifier decodes a bearer token into claims. Satisfied by token.Issuer.
type TokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// IdentityStore is the point-read the gate needs from a credential store.
type IdentityStore interface {
	FindByID(ctx context.Context, id string) (*domain.Identity, error)
}

// Auth is the authentication gate. It extracts the bearer token, verifies it,
// resolves the claims to a live identity in the store matching the token's
// role, and attaches the password-stripped identity to the request context.
// Every failure is terminal and returns 401 immediately; a handler behind
// this middleware can assume the identity is known-valid.
func Auth(verifier TokenVerifier, users, admins IdentityStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return reject("no_token", "not authorized, no token")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return reject("no_token", "not authorized, no token")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				if errors.Is(err, token.ErrExpired) {
					return reject("expired", "not authorized, token expired")
				}
				return reject("malformed", "not authorized, invalid token")
			}

			// The role carried in the token decides which store is consulted.
			// Anything outside the closed enum is rejected here regardless of
			// what the data-entry layer permitted.
			var store IdentityStore
			switch claims.Role {
			case domain.RoleUser:
				store = users
			case domain.RoleAdmin:
				store = admins
			default:
				return reject("invalid_role", "not authorized, invalid token role")
			}

			// A stale token for a deleted identity must not grant access.
			identity, err := store.FindByID(c.Request().Context(), claims.ID)
			if err != nil {
				if errors.Is(err, domain.ErrIdentityNotFound) {
					return reject("not_found", "not authorized, user not found")
				}
				return err
			}

			c.Set(IdentityKey, identity.Sanitized())
			return next(c)
		}
	}
}

func reject(reason, message string) error {
	metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
	return echo.NewHTTPError(http.StatusUnauthorized, message)
}
