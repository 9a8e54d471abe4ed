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

const cropsCollection = "crops"

type CropRepository struct {
	col *mongo.Collection
}

func NewCropRepository(db *mongo.Database) *CropRepository {
	return &CropRepository{col: db.Collection(cropsCollection)}
}

// Create inserts a new crop document.
func (r *CropRepository) Create(ctx context.Context, crop *domain.Crop) (*domain.Crop, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if crop.ID == "" {
		crop.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now().UTC()
	crop.CreatedAt = now
	crop.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, crop); err != nil {
		return nil, err
	}
	return crop, nil
}

// FindByID retrieves a crop by id.
func (r *CropRepository) FindByID(ctx context.Context, id string) (*domain.Crop, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var crop domain.Crop
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&crop); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCropNotFound
		}
		return nil, err
	}
	return &crop, nil
}

// FindByOwner returns all crops owned by the given identity.
func (r *CropRepository) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Crop, error) {
	return r.find(ctx, bson.M{"owner_id": ownerID})
}

// FindAll returns every crop in the collection.
func (r *CropRepository) FindAll(ctx context.Context) ([]*domain.Crop, error) {
	return r.find(ctx, bson.M{})
}

func (r *CropRepository) find(ctx context.Context, filter bson.M) ([]*domain.Crop, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var crops []*domain.Crop
	if err := cursor.All(ctx, &crops); err != nil {
		return nil, err
	}
	return crops, nil
}

// Update replaces the full document matching the crop's id.
func (r *CropRepository) Update(ctx context.Context, crop *domain.Crop) (*domain.Crop, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	crop.UpdatedAt = time.Now().UTC()

	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": crop.ID}, crop)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, domain.ErrCropNotFound
	}
	return crop, nil
}

// Delete removes the crop with the given id.
func (r *CropRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrCropNotFound
	}
	return nil
}
