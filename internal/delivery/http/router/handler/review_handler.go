package handler

import (
	"net/http"

	deliverycontext "nosh/internal/delivery/context"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/errors"
	"nosh/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ReviewHandler holds dependencies for review handlers.
type ReviewHandler struct {
	uc usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

type createReviewRequest struct {
	OrderID           string `json:"orderId"`
	ProductID         string `json:"productId"`
	StoreID           string `json:"storeId"`
	DeliveryPartnerID string `json:"deliveryPartnerId"`
	Rating            int    `json:"rating"`
	Comment           string `json:"comment"`
}

// CreateReview records a rating against one or more targets.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrReviewInvalid)
	}

	review, err := h.uc.CreateReview(c.Request().Context(), usecase.CreateReviewInput{
		UserID:            deliverycontext.GetUserID(c),
		OrderID:           req.OrderID,
		ProductID:         req.ProductID,
		StoreID:           req.StoreID,
		DeliveryPartnerID: req.DeliveryPartnerID,
		Rating:            req.Rating,
		Comment:           req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Review submitted successfully.",
		"review":  reviewToDTO(review),
	})
}
