package usecase

import (
	"context"

	"nosh/internal/domain/entity"
)

// CreateReviewInput defines the data required to leave a review. At least
// one target reference must be set; each set target must exist.
type CreateReviewInput struct {
	UserID            string
	OrderID           string
	ProductID         string
	StoreID           string
	DeliveryPartnerID string
	Rating            int
	Comment           string
}

// ReviewUsecase defines the interface for rating operations.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, input CreateReviewInput) (*entity.Review, error)
	ListStoreReviews(ctx context.Context, storeID string) ([]*entity.Review, error)
}
