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

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	coll *mongo.Collection
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{coll: db.Collection(collProducts)}
}

// Create persists a new product document with its embedded variants.
// Variant SKUs are checked for global uniqueness first; the embedded
// position of variants means a collection-level unique index cannot
// enforce it alone across inserts of different shapes.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	skus := make(bson.A, 0, len(product.Variants))
	for _, v := range product.Variants {
		skus = append(skus, v.SKU)
	}
	if len(skus) > 0 {
		count, err := repo.coll.CountDocuments(ctx, bson.M{"variants.sku": bson.M{"$in": skus}})
		if err != nil {
			return errors.Wrap(err, "check skus")
		}
		if count > 0 {
			return repository.ErrSKUExists
		}
	}

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, fromProductDomain(product)); err != nil {
		if isDuplicateKey(err) {
			return errors.Wrap(repository.ErrSKUExists, "duplicate product key")
		}

		return errors.Wrap(err, "insert product")
	}

	return nil
}

// FindByProductID retrieves a product by business key.
func (repo *productRepository) FindByProductID(ctx context.Context, productID string) (*entity.Product, error) {
	return repo.findOne(ctx, bson.M{"productId": productID})
}

// FindInStore retrieves a product by business key, constrained to a store.
func (repo *productRepository) FindInStore(ctx context.Context, productID, storeID string) (*entity.Product, error) {
	return repo.findOne(ctx, bson.M{"productId": productID, "storeId": storeID})
}

// ListByStore returns all products of a store.
func (repo *productRepository) ListByStore(ctx context.Context, storeID string) ([]*entity.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "productName", Value: 1}})

	cursor, err := repo.coll.Find(ctx, bson.M{"storeId": storeID}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	defer cursor.Close(ctx)

	var models []productModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "decode products")
	}

	products := make([]*entity.Product, 0, len(models))
	for i := range models {
		products = append(products, toProductDomain(&models[i]))
	}

	return products, nil
}

func (repo *productRepository) findOne(ctx context.Context, filter bson.M) (*entity.Product, error) {
	var productM productModel
	if err := repo.coll.FindOne(ctx, filter).Decode(&productM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "find product")
	}

	return toProductDomain(&productM), nil
}
