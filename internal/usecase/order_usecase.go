package usecase

import (
	"context"

	"nosh/internal/domain/entity"
)

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	ProductID        string
	ProductVariantID string
	Quantity         int
	Notes            string
}

// PlaceOrderInput defines the data required to place an order. UserID comes
// from the authenticated context, never from the request body.
type PlaceOrderInput struct {
	UserID          string
	StoreID         string
	Items           []OrderItemInput
	DeliveryAddress *entity.Address
	PaymentMethod   string
	Notes           string
}

// PlaceOrderOutput returns the identifiers of the priced, persisted order.
type PlaceOrderOutput struct {
	OrderID     string
	FinalAmount float64
}

// OrderUsecase defines the interface for order placement and retrieval.
type OrderUsecase interface {
	// PlaceOrder validates, prices and persists a new order in one step.
	// Validation is fail-fast: the first broken rule aborts the request and
	// nothing is written.
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*PlaceOrderOutput, error)

	// ListOrders returns the caller's orders, newest first.
	ListOrders(ctx context.Context, userID string) ([]*entity.Order, error)

	// GetOrder returns one order; callers may only read their own.
	GetOrder(ctx context.Context, userID, orderID string) (*entity.Order, error)
}
