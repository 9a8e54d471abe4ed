package ports

import (
	"context"
	"time"

	"github.com/agrilink/farm-market/internal/core/domain"
)

// CropInput carries the fields for creating a crop record.
type CropInput struct {
	Name                 string
	Variety              string
	Quantity             float64
	PlantedDate          time.Time
	EstimatedHarvestDate time.Time
}

// CropUpdate carries a partial crop mutation. Nil fields are left untouched.
type CropUpdate struct {
	Name                 *string
	Variety              *string
	Quantity             *float64
	PlantedDate          *time.Time
	EstimatedHarvestDate *time.Time
}

// CropService defines use-case operations for crop records. All operations
// are ownership-scoped (owner or admin).
type CropService interface {
	Create(ctx context.Context, actor *domain.Identity, input CropInput) (*domain.Crop, error)
	ListByOwner(ctx context.Context, actor *domain.Identity, ownerID string) ([]*domain.Crop, error)
	Get(ctx context.Context, actor *domain.Identity, id string) (*domain.Crop, error)
	Update(ctx context.Context, actor *domain.Identity, id string, update CropUpdate) (*domain.Crop, error)
	Delete(ctx context.Context, actor *domain.Identity, id string) error
}
