package ports

import (
	"context"

	"github.com/agrilink/farm-market/internal/core/domain"
)

// FarmInput carries the fields for creating a farm. The owner always comes
// from the authenticated actor, never from the payload.
type FarmInput struct {
	Name     string
	Location string
	AreaSize float64
	CropType string
}

// FarmUpdate carries a partial farm mutation. Nil fields are left untouched.
type FarmUpdate struct {
	Name     *string
	Location *string
	AreaSize *float64
	CropType *string
}

// FarmService defines use-case operations for farms. ListAll is public;
// every other operation is ownership-scoped (owner or admin).
type FarmService interface {
	Create(ctx context.Context, actor *domain.Identity, input FarmInput) (*domain.Farm, error)
	ListAll(ctx context.Context) ([]*domain.Farm, error)
	ListByOwner(ctx context.Context, actor *domain.Identity, ownerID string) ([]*domain.Farm, error)
	Get(ctx context.Context, actor *domain.Identity, id string) (*domain.Farm, error)
	Update(ctx context.Context, actor *domain.Identity, id string, update FarmUpdate) (*domain.Farm, error)
	Delete(ctx context.Context, actor *domain.Identity, id string) error
}
