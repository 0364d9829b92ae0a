package repository

import (
	"context"

	"nosh/internal/domain/entity"
	"nosh/internal/errors"
)

// Domain-specific errors for delivery partner persistence.
var (
	// ErrPartnerNotFound is returned when no partner matches the lookup.
	ErrPartnerNotFound = errors.New("delivery partner not found")
)

// DeliveryPartnerRepository manages courier records.
type DeliveryPartnerRepository interface {
	// Create persists a new delivery partner.
	Create(ctx context.Context, partner *entity.DeliveryPartner) error

	// List returns all delivery partners.
	List(ctx context.Context) ([]*entity.DeliveryPartner, error)

	// FindByPartnerID returns the partner with the given business ID, or
	// ErrPartnerNotFound.
	FindByPartnerID(ctx context.Context, partnerID string) (*entity.DeliveryPartner, error)

	// ExistsByPhone reports whether a partner already holds the given phone
	// number.
	ExistsByPhone(ctx context.Context, phoneNumber string) (bool, error)
}
