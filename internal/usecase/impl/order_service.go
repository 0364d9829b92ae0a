package impl

import (
	"context"
	"log/slog"
	"time"

	"nosh/config"
	deliverycontext "nosh/internal/delivery/context"
	"nosh/internal/domain/entity"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/domain/repository"
	"nosh/internal/errors"
	"nosh/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface. Placement is
// all-or-nothing: validation and pricing happen in memory, and only a
// fully priced order is ever written.
type orderService struct {
	orderRepo   repository.OrderRepository
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	deliveryFee decimal.Decimal
	taxRate     decimal.Decimal
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	StoreRepo   repository.StoreRepository
	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:   params.OrderRepo,
		storeRepo:   params.StoreRepo,
		productRepo: params.ProductRepo,
		deliveryFee: decimal.NewFromInt(params.Config.Pricing.DeliveryFee),
		taxRate:     decimal.NewFromFloat(params.Config.Pricing.TaxRate),
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder validates the cart fail-fast in input order, prices it against
// the catalog, and persists the order as an immutable snapshot.
func (srv *orderService) PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	if input.StoreID == "" || input.DeliveryAddress == nil || len(input.Items) == 0 || input.PaymentMethod == "" {
		return nil, domainerrors.ErrOrderMissingFields
	}

	if _, err := srv.storeRepo.FindByStoreID(ctx, input.StoreID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrOrderStoreNotFound
		}

		return nil, srv.placementFailed(ctx, err, "store lookup failed")
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	total := decimal.Zero

	for _, item := range input.Items {
		product, err := srv.productRepo.FindInStore(ctx, item.ProductID, input.StoreID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, domainerrors.ErrOrderProductNotFound.WithMessage(
					"Product not found: " + item.ProductID)
			}

			return nil, srv.placementFailed(ctx, err, "product lookup failed")
		}

		var variant *entity.ProductVariant
		if item.ProductVariantID != "" {
			v, ok := product.Variant(item.ProductVariantID)
			if !ok {
				return nil, domainerrors.ErrOrderVariantNotFound.WithMessage(
					"Product variant not found: " + item.ProductVariantID)
			}
			variant = &v
		}

		if item.Quantity < 1 {
			return nil, domainerrors.ErrOrderInvalidQuantity
		}

		unitPrice := product.UnitPrice(variant)
		subtotal := unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(subtotal)

		items = append(items, entity.OrderItem{
			ProductID:        item.ProductID,
			ProductVariantID: item.ProductVariantID,
			Quantity:         item.Quantity,
			UnitPrice:        unitPrice,
			Subtotal:         subtotal,
			Notes:            item.Notes,
		})
	}

	tax := total.Mul(srv.taxRate)
	discount := decimal.Zero
	final := total.Add(srv.deliveryFee).Add(tax).Sub(discount)

	order := &entity.Order{
		OrderID:         uuid.New().String(),
		UserID:          input.UserID,
		StoreID:         input.StoreID,
		DeliveryAddress: *input.DeliveryAddress,
		OrderDate:       time.Now(),
		TotalAmount:     total,
		DeliveryFee:     srv.deliveryFee,
		TaxAmount:       tax,
		DiscountAmount:  discount,
		FinalAmount:     final,
		OrderStatus:     entity.OrderStatusPending,
		PaymentMethod:   input.PaymentMethod,
		PaymentStatus:   entity.PaymentStatusPending,
		Notes:           input.Notes,
		Items:           items,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, srv.placementFailed(ctx, err, "persist order failed")
	}

	srv.log(ctx).Info("Order placed",
		slog.String("orderID", order.OrderID),
		slog.String("userID", order.UserID),
		slog.String("finalAmount", final.String()))

	return &usecase.PlaceOrderOutput{
		OrderID:     order.OrderID,
		FinalAmount: final.InexactFloat64(),
	}, nil
}

// ListOrders returns the caller's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID string) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.String("userID", userID), slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("list orders failed")
	}

	return orders, nil
}

// GetOrder returns one order, enforcing that callers only read their own.
func (srv *orderService) GetOrder(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		srv.log(ctx).Error("Failed to load order", slog.String("orderID", orderID), slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("load order failed")
	}

	if order.UserID != userID {
		return nil, domainerrors.ErrOrderNotOwned
	}

	return order, nil
}

func (srv *orderService) placementFailed(ctx context.Context, err error, msg string) error {
	srv.log(ctx).Error("Order placement failed", slog.String("reason", msg), slog.Any("error", err))

	return domainerrors.ErrOrderPlacementFailed.WrapMessage(msg)
}
