package ports

import (
	"context"

	"github.com/agrilink/farm-market/internal/core/domain"
)

// RegisterInput carries the fields needed to create an identity.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// ProfileUpdate carries a partial profile mutation. Nil fields are left
// untouched; Password non-nil is the explicit "password changed" signal that
// triggers rehashing.
type ProfileUpdate struct {
	Name     *string
	Email    *string
	Password *string
}

// AuthService implements registration, login, and self-service profile
// management for both identity stores. Register and Login return a freshly
// issued session token alongside the password-stripped identity.
type AuthService interface {
	RegisterUser(ctx context.Context, input RegisterInput) (string, *domain.Identity, error)
	LoginUser(ctx context.Context, email, password string) (string, *domain.Identity, error)
	RegisterAdmin(ctx context.Context, input RegisterInput) (string, *domain.Identity, error)
	LoginAdmin(ctx context.Context, email, password string) (string, *domain.Identity, error)
	Profile(ctx context.Context, actor *domain.Identity) (*domain.Identity, error)
	UpdateProfile(ctx context.Context, actor *domain.Identity, update ProfileUpdate) (*domain.Identity, error)
}
