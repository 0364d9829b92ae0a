// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus tracks an order through its delivery lifecycle.
type OrderStatus string

// PaymentStatus tracks the payment attached to an order.
type PaymentStatus string

const (
	OrderStatusPending        OrderStatus = "Pending"
	OrderStatusConfirmed      OrderStatus = "Confirmed"
	OrderStatusPreparing      OrderStatus = "Preparing"
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
	OrderStatusCancelled      OrderStatus = "Cancelled"

	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusRefunded PaymentStatus = "Refunded"
	PaymentStatusFailed   PaymentStatus = "Failed"
)

// Order is an immutable pricing snapshot created exactly once by the order
// workflow. The delivery address is an embedded copy, not a reference, and
// later catalog price changes never retroactively affect a saved order.
type Order struct {
	OrderID           string  // The unique business identifier for the order (UUID string).
	UserID            string  // The user who placed the order.
	StoreID           string  // The store the order was placed against.
	DeliveryAddress   Address // Snapshot copy of the delivery address at placement time.
	OrderDate         time.Time
	TotalAmount       decimal.Decimal // Sum of all item subtotals.
	DeliveryFee       decimal.Decimal
	TaxAmount         decimal.Decimal
	DiscountAmount    decimal.Decimal
	FinalAmount       decimal.Decimal // total + fee + tax - discount.
	OrderStatus       OrderStatus
	PaymentMethod     string
	PaymentStatus     PaymentStatus
	DeliveryPartnerID string // Assigned delivery partner, if any.
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	Notes             string
	Items             []OrderItem // Embedded line items, owned by this order.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OrderItem is one line of an order, priced at placement time.
type OrderItem struct {
	ProductID        string
	ProductVariantID string          // Empty when the base product was ordered.
	Quantity         int             // Always >= 1.
	UnitPrice        decimal.Decimal // Effective unit price at placement time.
	Subtotal         decimal.Decimal // UnitPrice * Quantity.
	Notes            string
}
