package repository

import (
	"context"

	"nosh/internal/domain/entity"
)

// ReviewRepository manages review records.
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// ListByStore returns all reviews left against a store, most recent
	// first.
	ListByStore(ctx context.Context, storeID string) ([]*entity.Review, error)
}
