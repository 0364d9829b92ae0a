package impl

import (
	"context"
	"testing"

	"nosh/internal/domain/entity"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewService(stores []*entity.Store, products []*entity.Product, partners ...*entity.DeliveryPartner) usecase.ReviewUsecase {
	return NewReviewService(ReviewServiceParams{
		ReviewRepo:  &fakeReviewRepo{},
		StoreRepo:   newFakeStoreRepo(stores...),
		ProductRepo: newFakeProductRepo(products...),
		OrderRepo:   newFakeOrderRepo(),
		PartnerRepo: &fakePartnerRepo{partners: partners},
		Logger:      discardLogger(),
	})
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	service := newReviewService([]*entity.Store{testStore()}, nil)

	review, err := service.CreateReview(context.Background(), usecase.CreateReviewInput{
		UserID:  "user-1",
		StoreID: "store-1",
		Rating:  4,
		Comment: "Fresh produce, quick delivery.",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, review.ReviewID)
	assert.False(t, review.ReviewDate.IsZero())

	reviews, err := service.ListStoreReviews(context.Background(), "store-1")
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}

func TestReviewService_CreateReview_RatingOutOfRange(t *testing.T) {
	service := newReviewService([]*entity.Store{testStore()}, nil)

	for _, rating := range []int{0, -1, 6} {
		_, err := service.CreateReview(context.Background(), usecase.CreateReviewInput{
			UserID:  "user-1",
			StoreID: "store-1",
			Rating:  rating,
		})

		require.ErrorIs(t, err, domainerrors.ErrReviewInvalid, "rating %d", rating)
	}
}

func TestReviewService_CreateReview_NoTarget(t *testing.T) {
	service := newReviewService(nil, nil)

	_, err := service.CreateReview(context.Background(), usecase.CreateReviewInput{
		UserID: "user-1",
		Rating: 5,
	})

	require.ErrorIs(t, err, domainerrors.ErrReviewInvalid)
}

func TestReviewService_CreateReview_UnknownTarget(t *testing.T) {
	service := newReviewService(nil, nil)

	_, err := service.CreateReview(context.Background(), usecase.CreateReviewInput{
		UserID:  "user-1",
		StoreID: "missing",
		Rating:  3,
	})

	require.ErrorIs(t, err, domainerrors.ErrReviewTargetNotFound)
}

func TestReviewService_CreateReview_UnknownPartnerTarget(t *testing.T) {
	service := newReviewService(nil, nil)

	_, err := service.CreateReview(context.Background(), usecase.CreateReviewInput{
		UserID:            "user-1",
		DeliveryPartnerID: "no-such-partner",
		Rating:            5,
	})

	require.ErrorIs(t, err, domainerrors.ErrReviewTargetNotFound)
}

func TestReviewService_CreateReview_PartnerTarget(t *testing.T) {
	service := newReviewService(nil, nil, &entity.DeliveryPartner{
		DeliveryPartnerID: "partner-1",
		Name:              "Ravi",
	})

	review, err := service.CreateReview(context.Background(), usecase.CreateReviewInput{
		UserID:            "user-1",
		DeliveryPartnerID: "partner-1",
		Rating:            5,
		Comment:           "On time, careful with the order.",
	})

	require.NoError(t, err)
	assert.Equal(t, "partner-1", review.DeliveryPartnerID)
}
