// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Store is a merchant storefront that products belong to. It is read-only
// from the order workflow's perspective.
type Store struct {
	StoreID      string // The unique business identifier for the store (UUID string).
	StoreName    string
	Description  string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	PhoneNumber  string
	Email        string
	CuisineType  string  // Free-form cuisine label, e.g. "Groceries", "Italian".
	OpeningTime  string  // Daily opening time as an HH:MM string.
	ClosingTime  string  // Daily closing time as an HH:MM string.
	IsActive     bool    // Inactive stores are hidden from listings.
	Latitude     float64 // Geographic latitude of the storefront.
	Longitude    float64 // Geographic longitude of the storefront.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
