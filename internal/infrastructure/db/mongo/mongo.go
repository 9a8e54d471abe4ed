package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes creates the indexes the repositories rely on: unique email on
// both identity collections, owner lookups on ownable collections, a unique
// name on crop reference entries, and booking-id lookups on the audit trail.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, spec := range []struct {
		collection string
		indexes    []mongo.IndexModel
	}{
		{usersCollection, identityIndexes()},
		{adminsCollection, identityIndexes()},
		{farmsCollection, ownerIndexes()},
		{cropsCollection, ownerIndexes()},
		{bookingsCollection, ownerIndexes()},
		{cropInfosCollection, cropInfoIndexes()},
		{bookingEventsCollection, bookingEventIndexes()},
	} {
		if _, err := db.Collection(spec.collection).Indexes().CreateMany(ctx, spec.indexes); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", spec.collection, err)
		}
	}
	return nil
}
