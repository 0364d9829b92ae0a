package mongo

import (
	"context"
	"time"

	"nosh/internal/domain/entity"
	"nosh/internal/domain/repository"
	"nosh/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	coll *mongo.Collection
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *mongo.Database) repository.StoreRepository {
	return &storeRepository{coll: db.Collection(collStores)}
}

// Create persists a new store document.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	now := time.Now()
	store.CreatedAt = now
	store.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, fromStoreDomain(store)); err != nil {
		if isDuplicateKey(err) {
			return repository.ErrStoreExists
		}

		return errors.Wrap(err, "insert store")
	}

	return nil
}

// FindByStoreID retrieves a store by business key.
func (repo *storeRepository) FindByStoreID(ctx context.Context, storeID string) (*entity.Store, error) {
	var storeM storeModel
	if err := repo.coll.FindOne(ctx, bson.M{"storeId": storeID}).Decode(&storeM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "find store")
	}

	return toStoreDomain(&storeM), nil
}

// ListActive returns all stores currently accepting orders.
func (repo *storeRepository) ListActive(ctx context.Context) ([]*entity.Store, error) {
	opts := options.Find().SetSort(bson.D{{Key: "storeName", Value: 1}})

	cursor, err := repo.coll.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "list stores")
	}
	defer cursor.Close(ctx)

	var models []storeModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "decode stores")
	}

	stores := make([]*entity.Store, 0, len(models))
	for i := range models {
		stores = append(stores, toStoreDomain(&models[i]))
	}

	return stores, nil
}
