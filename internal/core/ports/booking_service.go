package ports

import (
	"context"

	"github.com/agrilink/farm-market/internal/core/domain"
)

// BookingInput carries the fields for placing a booking. The owner always
// comes from the authenticated actor, never from the payload.
type BookingInput struct {
	Name        string
	Email       string
	Phone       string
	Quantity    int
	TotalAmount float64
	ProductName string
	Category    string
	Description string
	ImgURL      string
}

// BookingService defines use-case operations for bookings. ListAll,
// UpdateStatus and Delete are admin operations (role-gated at the route);
// ListByOwner is self-scoped.
type BookingService interface {
	Create(ctx context.Context, actor *domain.Identity, input BookingInput) (*domain.Booking, error)
	// Get returns one booking without ownership scoping; the routes that use
	// it are admin-gated.
	Get(ctx context.Context, id string) (*domain.Booking, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	ListByOwner(ctx context.Context, actor *domain.Identity, ownerID string) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, actor *domain.Identity, id string, status domain.BookingStatus) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}
