package usecase

import (
	"context"

	"nosh/internal/domain/entity"
)

// RegisterPartnerInput defines the data required to onboard a courier.
type RegisterPartnerInput struct {
	Name        string
	PhoneNumber string
	Email       string
	VehicleType string
}

// PartnerUsecase defines the interface for delivery partner operations.
type PartnerUsecase interface {
	RegisterPartner(ctx context.Context, input RegisterPartnerInput) (*entity.DeliveryPartner, error)
	ListPartners(ctx context.Context) ([]*entity.DeliveryPartner, error)
}
