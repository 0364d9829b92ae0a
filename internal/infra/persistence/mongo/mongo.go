// Package mongo contains the concrete implementation of the persistence
// layer using the official MongoDB driver. Each aggregate lives in its own
// collection and is looked up by business key, never by the driver's
// internal object ids.
package mongo

import (
	"context"
	"log/slog"
	"time"

	"nosh/config"
	"nosh/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	connectTimeout = 10 * time.Second

	collUsers    = "users"
	collStores   = "stores"
	collProducts = "products"
	collOrders   = "orders"
	collReviews  = "reviews"
	collPartners = "deliverypartners"
)

// Params defines the dependencies for the database handle.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB, verifies the connection, ensures the unique
// indexes the domain relies on, and registers a disconnect hook.
func New(params Params) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(params.Config.Mongo.URI).
		SetConnectTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "connect to mongodb")
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "ping mongodb")
	}

	db := client.Database(params.Config.Mongo.Database)

	if err := ensureIndexes(ctx, db); err != nil {
		return nil, errors.Wrap(err, "ensure indexes")
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Disconnecting from MongoDB")

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	params.Logger.Info("Connected to MongoDB", slog.String("database", params.Config.Mongo.Database))

	return db, nil
}

// ensureIndexes creates the unique indexes backing the domain's uniqueness
// invariants (user email/phone, business keys, variant SKUs).
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		collUsers: {
			{Keys: bson.D{{Key: "userId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "phoneNumber", Value: 1}}, Options: unique},
		},
		collStores: {
			{Keys: bson.D{{Key: "storeId", Value: 1}}, Options: unique},
		},
		collProducts: {
			{Keys: bson.D{{Key: "productId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "storeId", Value: 1}}},
		},
		collOrders: {
			{Keys: bson.D{{Key: "orderId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "userId", Value: 1}}},
		},
		collReviews: {
			{Keys: bson.D{{Key: "reviewId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "storeId", Value: 1}}},
		},
		collPartners: {
			{Keys: bson.D{{Key: "deliveryPartnerId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "phoneNumber", Value: 1}}, Options: unique},
		},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "create indexes for %s", coll)
		}
	}

	return nil
}

// isDuplicateKey reports whether err is a unique index violation.
func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
