package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
)

// EventSink receives booking lifecycle events for asynchronous processing
// (the sharded dispatcher in production).
type EventSink interface {
	Enqueue(event domain.BookingEvent)
}

// BookingService implements booking placement and admin-side management.
type BookingService struct {
	repo   ports.BookingRepository
	events EventSink
	logger zerolog.Logger
}

// NewBookingService returns a BookingService. events may be nil when no
// audit pipeline is wired (tests).
func NewBookingService(repo ports.BookingRepository, events EventSink, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, events: events, logger: logger}
}

// Create places a booking owned by the actor. The owner is always the
// authenticated identity; a caller-supplied owner id is never trusted.
func (s *BookingService) Create(ctx context.Context, actor *domain.Identity, input ports.BookingInput) (*domain.Booking, error) {
	now := time.Now().UTC()
	imgURL := input.ImgURL
	if imgURL == "" {
		imgURL = domain.DefaultProductImage
	}

	booking, err := s.repo.Create(ctx, &domain.Booking{
		Name:        input.Name,
		Email:       normalizeEmail(input.Email),
		Phone:       input.Phone,
		Quantity:    input.Quantity,
		TotalAmount: input.TotalAmount,
		ProductName: input.ProductName,
		Category:    input.Category,
		Description: input.Description,
		ImgURL:      imgURL,
		OwnerID:     actor.ID,
		OwnerName:   actor.Name,
		OrderedDate: now,
		Status:      domain.BookingPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.emit(booking.ID, booking.Status, actor.ID, now)
	s.logger.Info().Str("booking_id", booking.ID).Str("owner_id", actor.ID).Msg("booking created")
	return booking, nil
}

// Get returns one booking. The routes using this are admin-gated.
func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.repo.FindByID(ctx, id)
}

// ListAll returns every booking. The route restricts this to admins.
func (s *BookingService) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	return s.repo.FindAll(ctx)
}

// ListByOwner returns ownerID's bookings, self-scoped (owner or admin).
func (s *BookingService) ListByOwner(ctx context.Context, actor *domain.Identity, ownerID string) ([]*domain.Booking, error) {
	if !domain.CanAccess(actor, ownerID) {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByOwner(ctx, ownerID)
}

// UpdateStatus moves a booking through its lifecycle. Only transitions in
// the state machine are accepted; cancelled and delivered are terminal.
func (s *BookingService) UpdateStatus(ctx context.Context, actor *domain.Identity, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidTransition
	}
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransitionTo(status) {
		return nil, domain.ErrInvalidTransition
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.emit(updated.ID, updated.Status, actor.ID, time.Now().UTC())
	s.logger.Info().
		Str("booking_id", id).
		Str("status", string(status)).
		Str("actor_id", actor.ID).
		Msg("booking status updated")
	return updated, nil
}

// Delete removes a booking. The route restricts this to admins.
func (s *BookingService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("booking_id", id).Msg("booking deleted")
	return nil
}

func (s *BookingService) emit(bookingID string, status domain.BookingStatus, actorID string, ts time.Time) {
	if s.events == nil {
		return
	}
	s.events.Enqueue(domain.BookingEvent{
		BookingID: bookingID,
		Status:    status,
		Timestamp: ts,
		Actor:     actorID,
	})
}
