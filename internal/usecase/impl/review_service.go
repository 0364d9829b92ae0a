package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "nosh/internal/delivery/context"
	"nosh/internal/domain/entity"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/domain/repository"
	"nosh/internal/errors"
	"nosh/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo  repository.ReviewRepository
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	partnerRepo repository.DeliveryPartnerRepository
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo  repository.ReviewRepository
	StoreRepo   repository.StoreRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	PartnerRepo repository.DeliveryPartnerRepository
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  params.ReviewRepo,
		storeRepo:   params.StoreRepo,
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		partnerRepo: params.PartnerRepo,
		logger:      params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview validates the rating and each referenced target, then
// persists the review.
func (srv *reviewService) CreateReview(ctx context.Context, input usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrReviewInvalid
	}
	if input.StoreID == "" && input.ProductID == "" && input.OrderID == "" && input.DeliveryPartnerID == "" {
		return nil, domainerrors.ErrReviewInvalid
	}

	if err := srv.checkTargets(ctx, input); err != nil {
		return nil, err
	}

	review := &entity.Review{
		ReviewID:          uuid.New().String(),
		UserID:            input.UserID,
		OrderID:           input.OrderID,
		ProductID:         input.ProductID,
		StoreID:           input.StoreID,
		DeliveryPartnerID: input.DeliveryPartnerID,
		Rating:            input.Rating,
		Comment:           input.Comment,
		ReviewDate:        time.Now(),
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		srv.log(ctx).Error("Failed to persist review", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("persist review failed")
	}

	srv.log(ctx).Info("Review created",
		slog.String("reviewID", review.ReviewID),
		slog.Int("rating", review.Rating))

	return review, nil
}

// ListStoreReviews returns all reviews of a store, newest first.
func (srv *reviewService) ListStoreReviews(ctx context.Context, storeID string) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByStore(ctx, storeID)
	if err != nil {
		srv.log(ctx).Error("Failed to list reviews", slog.String("storeID", storeID), slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("list reviews failed")
	}

	return reviews, nil
}

func (srv *reviewService) checkTargets(ctx context.Context, input usecase.CreateReviewInput) error {
	if input.StoreID != "" {
		if _, err := srv.storeRepo.FindByStoreID(ctx, input.StoreID); err != nil {
			return srv.targetErr(ctx, err, repository.ErrStoreNotFound)
		}
	}
	if input.ProductID != "" {
		if _, err := srv.productRepo.FindByProductID(ctx, input.ProductID); err != nil {
			return srv.targetErr(ctx, err, repository.ErrProductNotFound)
		}
	}
	if input.OrderID != "" {
		if _, err := srv.orderRepo.FindByOrderID(ctx, input.OrderID); err != nil {
			return srv.targetErr(ctx, err, repository.ErrOrderNotFound)
		}
	}
	if input.DeliveryPartnerID != "" {
		if _, err := srv.partnerRepo.FindByPartnerID(ctx, input.DeliveryPartnerID); err != nil {
			return srv.targetErr(ctx, err, repository.ErrPartnerNotFound)
		}
	}

	return nil
}

func (srv *reviewService) targetErr(ctx context.Context, err, notFound error) error {
	if errors.Is(err, notFound) {
		return domainerrors.ErrReviewTargetNotFound
	}

	srv.log(ctx).Error("Failed to resolve review target", slog.Any("error", err))

	return domainerrors.ErrInternal.WrapMessage("review target lookup failed")
}
