package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrilink/farm-market/internal/api/metrics"
	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, bookingID, status string, ts time.Time) (bool, error)
	Mark(ctx context.Context, bookingID, status string, ts time.Time) error
}

type bookingEventService struct {
	repo  ports.BookingEventRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewBookingEventService returns a BookingEventService that deduplicates and
// persists booking lifecycle events to the audit trail.
func NewBookingEventService(repo ports.BookingEventRepository, dedup DedupChecker, log zerolog.Logger) ports.BookingEventService {
	return &bookingEventService{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and records a single booking event.
func (s *bookingEventService) Process(ctx context.Context, event domain.BookingEvent) error {
	start := time.Now()

	isDup, err := s.dedup.IsDuplicate(ctx, event.BookingID, string(event.Status), event.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("booking_id", event.BookingID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.BookingEventsDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("booking_id", event.BookingID).Str("status", string(event.Status)).Msg("duplicate event skipped")
		return nil
	}
	metrics.BookingEventsDedupTotal.WithLabelValues("miss").Inc()

	// Mark before writing so a retried enqueue cannot double-record.
	if markErr := s.dedup.Mark(ctx, event.BookingID, string(event.Status), event.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("booking_id", event.BookingID).Msg("failed to set dedup key")
	}

	if err := s.repo.Insert(ctx, &event); err != nil {
		metrics.BookingEventsErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("process booking event: %w", err)
	}

	metrics.BookingEventsProcessedTotal.WithLabelValues(string(event.Status)).Inc()
	metrics.BookingEventProcessingDuration.WithLabelValues(string(event.Status)).Observe(time.Since(start).Seconds())

	s.log.Info().
		Str("booking_id", event.BookingID).
		Str("status", string(event.Status)).
		Str("actor", event.Actor).
		Msg("booking event recorded")
	return nil
}

// History returns the audit trail of one booking, oldest first.
func (s *bookingEventService) History(ctx context.Context, bookingID string) ([]*domain.BookingEvent, error) {
	return s.repo.FindByBookingID(ctx, bookingID)
}
