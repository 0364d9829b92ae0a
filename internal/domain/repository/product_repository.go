package repository

import (
	"context"

	"nosh/internal/domain/entity"
	"nosh/internal/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when no product matches the lookup.
	ErrProductNotFound = errors.New("product not found")
	// ErrSKUExists is returned when a variant SKU is already taken.
	ErrSKUExists = errors.New("sku already exists")
)

// ProductRepository manages product records and their embedded variants.
type ProductRepository interface {
	// Create persists a new product with its variants.
	Create(ctx context.Context, product *entity.Product) error

	// FindByProductID retrieves a product by business key.
	FindByProductID(ctx context.Context, productID string) (*entity.Product, error)

	// FindInStore retrieves a product by business key, constrained to a
	// store. Returns ErrProductNotFound when the product exists but belongs
	// to a different store.
	FindInStore(ctx context.Context, productID, storeID string) (*entity.Product, error)

	// ListByStore returns all products of a store.
	ListByStore(ctx context.Context, storeID string) ([]*entity.Product, error)
}
