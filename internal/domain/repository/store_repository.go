package repository

import (
	"context"

	"nosh/internal/domain/entity"
	"nosh/internal/errors"
)

// Domain-specific errors for store persistence.
var (
	// ErrStoreNotFound is returned when no store matches the lookup.
	ErrStoreNotFound = errors.New("store not found")
	// ErrStoreExists is returned when a store with the same business key
	// already exists.
	ErrStoreExists = errors.New("store already exists")
)

// StoreRepository manages storefront records. The order workflow only ever
// reads from it.
type StoreRepository interface {
	// Create persists a new store.
	Create(ctx context.Context, store *entity.Store) error

	// FindByStoreID retrieves a store by business key.
	FindByStoreID(ctx context.Context, storeID string) (*entity.Store, error)

	// ListActive returns all stores currently accepting orders.
	ListActive(ctx context.Context) ([]*entity.Store, error)
}
