package ports

import (
	"context"

	"github.com/agrilink/farm-market/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	// FindByOwner returns the owner's bookings, most recent order first.
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Booking, error)
	FindAll(ctx context.Context) ([]*domain.Booking, error)
	// UpdateStatus atomically sets the status on the one matching booking.
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}
