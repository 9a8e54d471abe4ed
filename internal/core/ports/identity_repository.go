package ports

import (
	"context"

	"github.com/agrilink/farm-market/internal/core/domain"
)

// IdentityRepository defines persistence for one identity collection.
// Two instances exist at runtime, one backed by the users collection and one
// by the admins collection; the authentication gate picks the store matching
// the role carried in the token.
type IdentityRepository interface {
	Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)
	FindByID(ctx context.Context, id string) (*domain.Identity, error)
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	// Update persists the full record as a single atomic replace on the one
	// matching document (last-write-wins).
	Update(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Identity, error)
}
