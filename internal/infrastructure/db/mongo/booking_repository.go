package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/agrilink/farm-market/internal/core/domain"
)

const bookingsCollection = "bookings"

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(bookingsCollection)}
}

// Create inserts a new booking document.
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if booking.ID == "" {
		booking.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// FindByID retrieves a booking by id.
func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var booking domain.Booking
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// FindByOwner returns the owner's bookings, most recent order first.
func (r *BookingRepository) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Booking, error) {
	return r.find(ctx, bson.M{"owner_id": ownerID})
}

// FindAll returns every booking, most recent order first.
func (r *BookingRepository) FindAll(ctx context.Context) ([]*domain.Booking, error) {
	return r.find(ctx, bson.M{})
}

func (r *BookingRepository) find(ctx context.Context, filter bson.M) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "ordered_date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []*domain.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatus atomically sets the status on the one matching booking and
// returns the updated document.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking domain.Booking
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// Delete removes the booking with the given id.
func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}
