package impl

import (
	"context"
	"log/slog"

	deliverycontext "nosh/internal/delivery/context"
	"nosh/internal/domain/entity"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/domain/repository"
	"nosh/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// partnerService implements the PartnerUsecase interface.
type partnerService struct {
	partnerRepo repository.DeliveryPartnerRepository
	logger      *slog.Logger
}

// PartnerServiceParams holds dependencies for partnerService, injected by Fx.
type PartnerServiceParams struct {
	fx.In

	PartnerRepo repository.DeliveryPartnerRepository
	Logger      *slog.Logger
}

// NewPartnerService is the constructor for partnerService.
func NewPartnerService(params PartnerServiceParams) usecase.PartnerUsecase {
	return &partnerService{
		partnerRepo: params.PartnerRepo,
		logger:      params.Logger,
	}
}

func (srv *partnerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterPartner onboards a courier. New partners start offline and
// unrated.
func (srv *partnerService) RegisterPartner(ctx context.Context, input usecase.RegisterPartnerInput) (*entity.DeliveryPartner, error) {
	if input.Name == "" || input.PhoneNumber == "" {
		return nil, domainerrors.ErrPartnerInvalid
	}

	exists, err := srv.partnerRepo.ExistsByPhone(ctx, input.PhoneNumber)
	if err != nil {
		srv.log(ctx).Error("Failed to check partner uniqueness", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("uniqueness check failed")
	}
	if exists {
		return nil, domainerrors.ErrPartnerAlreadyExists
	}

	partner := &entity.DeliveryPartner{
		DeliveryPartnerID:  uuid.New().String(),
		Name:               input.Name,
		PhoneNumber:        input.PhoneNumber,
		Email:              input.Email,
		VehicleType:        input.VehicleType,
		AvailabilityStatus: entity.PartnerOffline,
	}

	if err := srv.partnerRepo.Create(ctx, partner); err != nil {
		srv.log(ctx).Error("Failed to persist partner", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("persist partner failed")
	}

	srv.log(ctx).Info("Delivery partner registered", slog.String("partnerID", partner.DeliveryPartnerID))

	return partner, nil
}

// ListPartners returns all delivery partners.
func (srv *partnerService) ListPartners(ctx context.Context) ([]*entity.DeliveryPartner, error) {
	partners, err := srv.partnerRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list partners", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("list partners failed")
	}

	return partners, nil
}
