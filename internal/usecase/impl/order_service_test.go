package impl

import (
	"context"
	"testing"

	"nosh/config"
	"nosh/internal/domain/entity"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	service   usecase.OrderUsecase
	orderRepo *fakeOrderRepo
}

func newOrderFixture(stores []*entity.Store, products []*entity.Product) *orderFixture {
	orderRepo := newFakeOrderRepo()

	service := NewOrderService(OrderServiceParams{
		OrderRepo:   orderRepo,
		StoreRepo:   newFakeStoreRepo(stores...),
		ProductRepo: newFakeProductRepo(products...),
		Config: &config.Config{
			Pricing: config.PricingConfig{DeliveryFee: 50, TaxRate: 0.05},
		},
		Logger: discardLogger(),
	})

	return &orderFixture{service: service, orderRepo: orderRepo}
}

func testStore() *entity.Store {
	return &entity.Store{StoreID: "store-1", StoreName: "Corner Grocer", IsActive: true}
}

func testProduct() *entity.Product {
	return &entity.Product{
		ProductID:   "prod-1",
		StoreID:     "store-1",
		ProductName: "Olive Oil",
		BasePrice:   decimal.NewFromInt(60),
		Variants: []entity.ProductVariant{
			{
				VariantID:     "var-1",
				VariantName:   "250ml",
				PriceModifier: decimal.NewFromInt(-25),
				SKU:           "OO-250",
			},
		},
	}
}

func placeOrderInput() usecase.PlaceOrderInput {
	return usecase.PlaceOrderInput{
		UserID:  "user-1",
		StoreID: "store-1",
		Items: []usecase.OrderItemInput{
			{ProductID: "prod-1", ProductVariantID: "var-1", Quantity: 2},
		},
		DeliveryAddress: &entity.Address{AddressLine1: "12 Main St", City: "Pune"},
		PaymentMethod:   "card",
	}
}

func TestOrderService_PlaceOrder_PricesVariantExactly(t *testing.T) {
	f := newOrderFixture([]*entity.Store{testStore()}, []*entity.Product{testProduct()})

	output, err := f.service.PlaceOrder(context.Background(), placeOrderInput())

	require.NoError(t, err)
	require.NotEmpty(t, output.OrderID)
	// unit 60-25=35, subtotal 70, fee 50, tax 3.5, final 123.5 exactly.
	assert.InDelta(t, 123.5, output.FinalAmount, 0)

	require.Equal(t, 1, f.orderRepo.created)
	order := f.orderRepo.orders[0]
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(70)), "total %s", order.TotalAmount)
	assert.True(t, order.DeliveryFee.Equal(decimal.NewFromInt(50)), "fee %s", order.DeliveryFee)
	assert.True(t, order.TaxAmount.Equal(decimal.RequireFromString("3.5")), "tax %s", order.TaxAmount)
	assert.True(t, order.DiscountAmount.IsZero())
	assert.True(t, order.FinalAmount.Equal(decimal.RequireFromString("123.5")), "final %s", order.FinalAmount)
	assert.Equal(t, entity.OrderStatusPending, order.OrderStatus)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].UnitPrice.Equal(decimal.NewFromInt(35)))
	assert.True(t, order.Items[0].Subtotal.Equal(decimal.NewFromInt(70)))
}

func TestOrderService_PlaceOrder_BaseProductWithoutVariant(t *testing.T) {
	f := newOrderFixture([]*entity.Store{testStore()}, []*entity.Product{testProduct()})

	input := placeOrderInput()
	input.Items = []usecase.OrderItemInput{{ProductID: "prod-1", Quantity: 1}}

	output, err := f.service.PlaceOrder(context.Background(), input)

	require.NoError(t, err)
	// base 60, fee 50, tax 3, final 113.
	assert.InDelta(t, 113, output.FinalAmount, 0)
}

func TestOrderService_PlaceOrder_MissingFields(t *testing.T) {
	f := newOrderFixture([]*entity.Store{testStore()}, []*entity.Product{testProduct()})

	cases := map[string]func(*usecase.PlaceOrderInput){
		"no store":          func(in *usecase.PlaceOrderInput) { in.StoreID = "" },
		"no address":        func(in *usecase.PlaceOrderInput) { in.DeliveryAddress = nil },
		"no items":          func(in *usecase.PlaceOrderInput) { in.Items = nil },
		"no payment method": func(in *usecase.PlaceOrderInput) { in.PaymentMethod = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			input := placeOrderInput()
			mutate(&input)

			_, err := f.service.PlaceOrder(context.Background(), input)

			require.ErrorIs(t, err, domainerrors.ErrOrderMissingFields)
		})
	}

	assert.Zero(t, f.orderRepo.created, "no order may be persisted on validation failure")
}

func TestOrderService_PlaceOrder_UnknownStore(t *testing.T) {
	f := newOrderFixture(nil, []*entity.Product{testProduct()})

	_, err := f.service.PlaceOrder(context.Background(), placeOrderInput())

	require.ErrorIs(t, err, domainerrors.ErrOrderStoreNotFound)
	assert.Zero(t, f.orderRepo.created)
}

func TestOrderService_PlaceOrder_UnknownProduct(t *testing.T) {
	f := newOrderFixture([]*entity.Store{testStore()}, nil)

	_, err := f.service.PlaceOrder(context.Background(), placeOrderInput())

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ORDER_003", appErr.ErrorCode())
	assert.Contains(t, appErr.Message(), "prod-1")
	assert.Zero(t, f.orderRepo.created)
}

func TestOrderService_PlaceOrder_ProductOfAnotherStore(t *testing.T) {
	other := testProduct()
	other.StoreID = "store-2"
	f := newOrderFixture([]*entity.Store{testStore()}, []*entity.Product{other})

	_, err := f.service.PlaceOrder(context.Background(), placeOrderInput())

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ORDER_003", appErr.ErrorCode())
}

func TestOrderService_PlaceOrder_UnknownVariant(t *testing.T) {
	f := newOrderFixture([]*entity.Store{testStore()}, []*entity.Product{testProduct()})

	input := placeOrderInput()
	input.Items[0].ProductVariantID = "var-404"

	_, err := f.service.PlaceOrder(context.Background(), input)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ORDER_004", appErr.ErrorCode())
	assert.Contains(t, appErr.Message(), "var-404")
	assert.Zero(t, f.orderRepo.created)
}

func TestOrderService_PlaceOrder_InvalidQuantity(t *testing.T) {
	f := newOrderFixture([]*entity.Store{testStore()}, []*entity.Product{testProduct()})

	input := placeOrderInput()
	input.Items[0].Quantity = 0

	_, err := f.service.PlaceOrder(context.Background(), input)

	require.ErrorIs(t, err, domainerrors.ErrOrderInvalidQuantity)
	assert.Zero(t, f.orderRepo.created)
}

func TestOrderService_PlaceOrder_PersistFailureLeavesNothing(t *testing.T) {
	f := newOrderFixture([]*entity.Store{testStore()}, []*entity.Product{testProduct()})
	f.orderRepo.err = assert.AnError

	_, err := f.service.PlaceOrder(context.Background(), placeOrderInput())

	require.ErrorIs(t, err, domainerrors.ErrOrderPlacementFailed)
	assert.Zero(t, f.orderRepo.created)
}

func TestOrderService_GetOrder_OwnershipEnforced(t *testing.T) {
	f := newOrderFixture([]*entity.Store{testStore()}, []*entity.Product{testProduct()})

	output, err := f.service.PlaceOrder(context.Background(), placeOrderInput())
	require.NoError(t, err)

	order, err := f.service.GetOrder(context.Background(), "user-1", output.OrderID)
	require.NoError(t, err)
	assert.Equal(t, output.OrderID, order.OrderID)

	_, err = f.service.GetOrder(context.Background(), "user-2", output.OrderID)
	require.ErrorIs(t, err, domainerrors.ErrOrderNotOwned)

	_, err = f.service.GetOrder(context.Background(), "user-1", "missing")
	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrders_FiltersByUser(t *testing.T) {
	f := newOrderFixture([]*entity.Store{testStore()}, []*entity.Product{testProduct()})

	_, err := f.service.PlaceOrder(context.Background(), placeOrderInput())
	require.NoError(t, err)

	mine, err := f.service.ListOrders(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := f.service.ListOrders(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Empty(t, theirs)
}
