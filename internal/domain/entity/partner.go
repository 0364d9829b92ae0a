// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// PartnerAvailability is a delivery partner's current duty state.
type PartnerAvailability string

const (
	PartnerAvailable  PartnerAvailability = "Available"
	PartnerOnDelivery PartnerAvailability = "On Delivery"
	PartnerOffline    PartnerAvailability = "Offline"
)

// DeliveryPartner is a courier who can be assigned to orders.
type DeliveryPartner struct {
	DeliveryPartnerID  string
	Name               string
	PhoneNumber        string // Unique contact number.
	Email              string
	VehicleType        string
	CurrentLatitude    float64
	CurrentLongitude   float64
	AvailabilityStatus PartnerAvailability
	Rating             float64 // 0 to 5.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
