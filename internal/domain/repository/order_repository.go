package repository

import (
	"context"

	"nosh/internal/domain/entity"
	"nosh/internal/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when no order matches the lookup.
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository manages order snapshots. Orders are created exactly once
// and their pricing fields are never updated afterwards.
type OrderRepository interface {
	// Create persists a fully priced order document.
	Create(ctx context.Context, order *entity.Order) error

	// FindByOrderID retrieves an order by business key.
	FindByOrderID(ctx context.Context, orderID string) (*entity.Order, error)

	// ListByUser returns a user's orders, most recent first.
	ListByUser(ctx context.Context, userID string) ([]*entity.Order, error)
}
