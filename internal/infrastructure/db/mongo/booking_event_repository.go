package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/agrilink/farm-market/internal/core/domain"
)

const bookingEventsCollection = "booking_events"

type bookingEventDoc struct {
	BookingID string    `bson:"booking_id"`
	Status    string    `bson:"status"`
	Timestamp time.Time `bson:"timestamp"`
	Actor     string    `bson:"actor"`
}

// BookingEventRepository persists the booking audit trail.
type BookingEventRepository struct {
	col *mongo.Collection
}

func NewBookingEventRepository(db *mongo.Database) *BookingEventRepository {
	return &BookingEventRepository{col: db.Collection(bookingEventsCollection)}
}

// Insert appends an event to the audit trail.
func (r *BookingEventRepository) Insert(ctx context.Context, event *domain.BookingEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bookingEventDoc{
		BookingID: event.BookingID,
		Status:    string(event.Status),
		Timestamp: event.Timestamp,
		Actor:     event.Actor,
	}
	_, err := r.col.InsertOne(ctx, doc)
	return err
}

// FindByBookingID returns the audit trail for one booking in chronological
// order.
func (r *BookingEventRepository) FindByBookingID(ctx context.Context, bookingID string) ([]*domain.BookingEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"booking_id": bookingID},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []*domain.BookingEvent
	for cursor.Next(ctx) {
		var doc bookingEventDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		events = append(events, &domain.BookingEvent{
			BookingID: doc.BookingID,
			Status:    domain.BookingStatus(doc.Status),
			Timestamp: doc.Timestamp,
			Actor:     doc.Actor,
		})
	}
	return events, cursor.Err()
}

func bookingEventIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "booking_id", Value: 1}, {Key: "timestamp", Value: 1}}},
	}
}
