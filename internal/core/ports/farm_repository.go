package ports

import (
	"context"

	"github.com/agrilink/farm-market/internal/core/domain"
)

// FarmRepository defines persistence operations for farms.
type FarmRepository interface {
	Create(ctx context.Context, farm *domain.Farm) (*domain.Farm, error)
	FindByID(ctx context.Context, id string) (*domain.Farm, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Farm, error)
	FindAll(ctx context.Context) ([]*domain.Farm, error)
	Update(ctx context.Context, farm *domain.Farm) (*domain.Farm, error)
	Delete(ctx context.Context, id string) error
}
