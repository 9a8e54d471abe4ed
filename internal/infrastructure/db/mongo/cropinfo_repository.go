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

const cropInfosCollection = "crop_infos"

type CropInfoRepository struct {
	col *mongo.Collection
}

func NewCropInfoRepository(db *mongo.Database) *CropInfoRepository {
	return &CropInfoRepository{col: db.Collection(cropInfosCollection)}
}

// Create inserts a new crop-info document. A duplicate name maps to
// domain.ErrCropInfoExists via the unique index on name.
func (r *CropInfoRepository) Create(ctx context.Context, info *domain.CropInfo) (*domain.CropInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if info.ID == "" {
		info.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now().UTC()
	info.CreatedAt = now
	info.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, info); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCropInfoExists
		}
		return nil, err
	}
	return info, nil
}

// FindByID retrieves a crop-info entry by id.
func (r *CropInfoRepository) FindByID(ctx context.Context, id string) (*domain.CropInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var info domain.CropInfo
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&info); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCropInfoNotFound
		}
		return nil, err
	}
	return &info, nil
}

// FindAll returns every crop-info entry, alphabetically by name.
func (r *CropInfoRepository) FindAll(ctx context.Context) ([]*domain.CropInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var infos []*domain.CropInfo
	if err := cursor.All(ctx, &infos); err != nil {
		return nil, err
	}
	return infos, nil
}

// Update replaces the full document matching the entry's id.
func (r *CropInfoRepository) Update(ctx context.Context, info *domain.CropInfo) (*domain.CropInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	info.UpdatedAt = time.Now().UTC()

	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": info.ID}, info)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCropInfoExists
		}
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, domain.ErrCropInfoNotFound
	}
	return info, nil
}

// Delete removes the crop-info entry with the given id.
func (r *CropInfoRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrCropInfoNotFound
	}
	return nil
}

func cropInfoIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
}
