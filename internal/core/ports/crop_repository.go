package ports

import (
	"context"

	"github.com/agrilink/farm-market/internal/core/domain"
)

// CropRepository defines persistence operations for crop records.
type CropRepository interface {
	Create(ctx context.Context, crop *domain.Crop) (*domain.Crop, error)
	FindByID(ctx context.Context, id string) (*domain.Crop, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Crop, error)
	FindAll(ctx context.Context) ([]*domain.Crop, error)
	Update(ctx context.Context, crop *domain.Crop) (*domain.Crop, error)
	Delete(ctx context.Context, id string) error
}
