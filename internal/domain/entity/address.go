// Package entity contains the core business objects of the project.
package entity

// Address is a physical delivery location. It lives embedded in its owning
// User, and is copied verbatim into an Order at placement time so that later
// edits to the user's address book never rewrite order history.
type Address struct {
	AddressLine1 string // First street address line.
	AddressLine2 string // Second street address line. Optional.
	City         string
	State        string
	PostalCode   string
	Country      string
	IsDefault    bool // Marks the owner's preferred delivery address.
}
