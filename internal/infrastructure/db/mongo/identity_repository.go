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

const (
	usersCollection  = "users"
	adminsCollection = "admins"
)

// identityDoc is the persisted shape of an identity. The domain struct hides
// the password hash from JSON, so the document shape is kept separate.
type identityDoc struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Role         string    `bson:"role"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func (d *identityDoc) toDomain() *domain.Identity {
	return &domain.Identity{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         domain.Role(d.Role),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func toIdentityDoc(i *domain.Identity) *identityDoc {
	return &identityDoc{
		ID:           i.ID,
		Name:         i.Name,
		Email:        i.Email,
		PasswordHash: i.PasswordHash,
		Role:         string(i.Role),
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

// IdentityRepository persists identities in one collection. Two instances
// back the two disjoint stores: users and admins.
type IdentityRepository struct {
	col *mongo.Collection
}

// NewUserRepository returns the identity repository backed by the users
// collection.
func NewUserRepository(db *mongo.Database) *IdentityRepository {
	return &IdentityRepository{col: db.Collection(usersCollection)}
}

// NewAdminRepository returns the identity repository backed by the admins
// collection.
func NewAdminRepository(db *mongo.Database) *IdentityRepository {
	return &IdentityRepository{col: db.Collection(adminsCollection)}
}

// Create inserts a new identity. A duplicate email maps to
// domain.ErrIdentityExists via the unique index on email.
func (r *IdentityRepository) Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toIdentityDoc(identity)
	if doc.ID == "" {
		doc.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrIdentityExists
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// FindByID retrieves an identity by its id.
func (r *IdentityRepository) FindByID(ctx context.Context, id string) (*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc identityDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// FindByEmail retrieves an identity by email.
func (r *IdentityRepository) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc identityDoc
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Update replaces the full document matching the identity's id.
func (r *IdentityRepository) Update(ctx context.Context, identity *domain.Identity) (*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toIdentityDoc(identity)
	doc.UpdatedAt = time.Now().UTC()

	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrIdentityExists
		}
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, domain.ErrIdentityNotFound
	}
	return doc.toDomain(), nil
}

// Delete removes the identity with the given id.
func (r *IdentityRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrIdentityNotFound
	}
	return nil
}

// List returns every identity in the collection, newest first.
func (r *IdentityRepository) List(ctx context.Context) ([]*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var identities []*domain.Identity
	for cursor.Next(ctx) {
		var doc identityDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		identities = append(identities, doc.toDomain())
	}
	return identities, cursor.Err()
}

func identityIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
}
