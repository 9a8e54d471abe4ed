package ports

import (
	"context"

	"github.com/agrilink/farm-market/internal/core/domain"
)

// BookingEventService processes booking lifecycle events off the request
// path, feeding the audit trail, and serves trail reads.
type BookingEventService interface {
	Process(ctx context.Context, event domain.BookingEvent) error
	// History returns the recorded events for one booking in
	// chronological order.
	History(ctx context.Context, bookingID string) ([]*domain.BookingEvent, error)
}

// BookingEventRepository persists booking events to the audit collection.
type BookingEventRepository interface {
	Insert(ctx context.Context, event *domain.BookingEvent) error
	FindByBookingID(ctx context.Context, bookingID string) ([]*domain.BookingEvent, error)
}
