// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Review is a 1-5 star rating left by a user against a store, product,
// order, or delivery partner. All target references are optional; at least
// one is expected to be set.
type Review struct {
	ReviewID          string
	UserID            string
	OrderID           string
	ProductID         string
	StoreID           string
	DeliveryPartnerID string
	Rating            int // 1 to 5 inclusive.
	Comment           string
	ReviewDate        time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
