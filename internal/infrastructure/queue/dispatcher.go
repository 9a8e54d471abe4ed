package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes booking events to a fixed set of workers using consistent
// hashing on the booking id, guaranteeing per-booking event ordering in the
// audit trail.
type Dispatcher struct {
	workers []chan domain.BookingEvent
	service ports.BookingEventService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.BookingEventService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.BookingEvent, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.BookingEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its booking.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event domain.BookingEvent) {
	d.workers[d.shardIndex(event.BookingID)] <- event
}

// shardIndex maps a booking id deterministically to a worker index.
func (d *Dispatcher) shardIndex(bookingID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(bookingID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.BookingEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("booking_id", event.BookingID).
					Int("worker_id", id).
					Msg("booking event processing failed")
			}
		}
	}
}
