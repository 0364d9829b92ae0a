package handler

import (
	"net/http"

	deliverycontext "nosh/internal/delivery/context"
	"nosh/internal/domain/entity"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/errors"
	"nosh/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type placeOrderItem struct {
	ProductID        string `json:"productId"`
	ProductVariantID string `json:"productVariantId"`
	Quantity         int    `json:"quantity"`
	Notes            string `json:"notes"`
}

type placeOrderRequest struct {
	StoreID         string           `json:"storeId"`
	DeliveryAddress *addressDTO      `json:"deliveryAddress"`
	Items           []placeOrderItem `json:"items"`
	PaymentMethod   string           `json:"paymentMethod"`
	Notes           string           `json:"notes"`
}

// PlaceOrder handles order placement. The user identity comes from the
// access token, never from the body.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrOrderMissingFields)
	}

	var deliveryAddress *entity.Address
	if req.DeliveryAddress != nil {
		addr := req.DeliveryAddress.toEntity()
		deliveryAddress = &addr
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID:        item.ProductID,
			ProductVariantID: item.ProductVariantID,
			Quantity:         item.Quantity,
			Notes:            item.Notes,
		})
	}

	output, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		UserID:          deliverycontext.GetUserID(c),
		StoreID:         req.StoreID,
		Items:           items,
		DeliveryAddress: deliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message":     "Order placed successfully.",
		"orderId":     output.OrderID,
		"finalAmount": output.FinalAmount,
	})
}

// ListOrders returns the caller's orders, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context(), deliverycontext.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]orderDTO, 0, len(orders))
	for _, order := range orders {
		out = append(out, orderToDTO(order))
	}

	return c.JSON(http.StatusOK, map[string]any{"orders": out})
}

// GetOrder returns one of the caller's orders.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.uc.GetOrder(c.Request().Context(), deliverycontext.GetUserID(c), c.Param("orderId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, orderToDTO(order))
}
