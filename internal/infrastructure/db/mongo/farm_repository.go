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

const farmsCollection = "farms"

type FarmRepository struct {
	col *mongo.Collection
}

func NewFarmRepository(db *mongo.Database) *FarmRepository {
	return &FarmRepository{col: db.Collection(farmsCollection)}
}

// Create inserts a new farm document.
func (r *FarmRepository) Create(ctx context.Context, farm *domain.Farm) (*domain.Farm, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if farm.ID == "" {
		farm.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now().UTC()
	farm.CreatedAt = now
	farm.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, farm); err != nil {
		return nil, err
	}
	return farm, nil
}

// FindByID retrieves a farm by id.
func (r *FarmRepository) FindByID(ctx context.Context, id string) (*domain.Farm, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var farm domain.Farm
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&farm); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFarmNotFound
		}
		return nil, err
	}
	return &farm, nil
}

// FindByOwner returns all farms owned by the given identity.
func (r *FarmRepository) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Farm, error) {
	return r.find(ctx, bson.M{"owner_id": ownerID})
}

// FindAll returns every farm in the collection.
func (r *FarmRepository) FindAll(ctx context.Context) ([]*domain.Farm, error) {
	return r.find(ctx, bson.M{})
}

func (r *FarmRepository) find(ctx context.Context, filter bson.M) ([]*domain.Farm, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var farms []*domain.Farm
	if err := cursor.All(ctx, &farms); err != nil {
		return nil, err
	}
	return farms, nil
}

// Update replaces the full document matching the farm's id.
func (r *FarmRepository) Update(ctx context.Context, farm *domain.Farm) (*domain.Farm, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	farm.UpdatedAt = time.Now().UTC()

	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": farm.ID}, farm)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, domain.ErrFarmNotFound
	}
	return farm, nil
}

// Delete removes the farm with the given id.
func (r *FarmRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrFarmNotFound
	}
	return nil
}

func ownerIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	}
}
