package usecase

import (
	"context"

	"nosh/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CreateStoreInput defines the data required to register a storefront.
type CreateStoreInput struct {
	StoreName    string
	Description  string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	PhoneNumber  string
	Email        string
	CuisineType  string
	OpeningTime  string
	ClosingTime  string
	Latitude     float64
	Longitude    float64
}

// ProductVariantInput is one purchasable option of a new product.
type ProductVariantInput struct {
	VariantName   string
	PriceModifier decimal.Decimal
	StockQuantity int
	ImageURL      string
	SKU           string
}

// CreateProductInput defines the data required to add a product to a store.
type CreateProductInput struct {
	StoreID       string
	ProductName   string
	Description   string
	BasePrice     decimal.Decimal
	CategoryID    string
	ImageURL      string
	StockQuantity int
	Variants      []ProductVariantInput
}

// CatalogUsecase defines the interface for store and product management.
// The order workflow only ever reads from this catalog.
type CatalogUsecase interface {
	CreateStore(ctx context.Context, input CreateStoreInput) (*entity.Store, error)
	GetStore(ctx context.Context, storeID string) (*entity.Store, error)
	ListStores(ctx context.Context) ([]*entity.Store, error)

	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)
	ListStoreProducts(ctx context.Context, storeID string) ([]*entity.Product, error)
}
