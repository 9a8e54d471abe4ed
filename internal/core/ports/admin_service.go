package ports

import (
	"context"

	"github.com/agrilink/farm-market/internal/core/domain"
)

// UserOverview is the admin view of a regular user together with their
// owned records.
type UserOverview struct {
	User  *domain.Identity `json:"user"`
	Farms []*domain.Farm   `json:"farms"`
	Crops []*domain.Crop   `json:"crops"`
}

// UserUpdate carries a partial admin-side user mutation. Role changes are
// admin-only and must carry a recognised role value.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	Role     *domain.Role
}

// AdminService covers admin-side management of regular user accounts.
// Route-level role enforcement has already happened by the time these run.
type AdminService interface {
	ListUsers(ctx context.Context) ([]UserOverview, error)
	GetUser(ctx context.Context, id string) (*domain.Identity, error)
	UpdateUser(ctx context.Context, id string, update UserUpdate) (*domain.Identity, error)
	DeleteUser(ctx context.Context, id string) error
}
