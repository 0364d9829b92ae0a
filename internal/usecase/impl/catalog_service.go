package impl

import (
	"context"
	"log/slog"

	deliverycontext "nosh/internal/delivery/context"
	"nosh/internal/domain/entity"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/domain/repository"
	"nosh/internal/errors"
	"nosh/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	StoreRepo   repository.StoreRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		storeRepo:   params.StoreRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateStore registers a new storefront. New stores start active.
func (srv *catalogService) CreateStore(ctx context.Context, input usecase.CreateStoreInput) (*entity.Store, error) {
	if input.StoreName == "" || input.AddressLine1 == "" || input.City == "" || input.PhoneNumber == "" {
		return nil, domainerrors.ErrStoreInvalid
	}

	store := &entity.Store{
		StoreID:      uuid.New().String(),
		StoreName:    input.StoreName,
		Description:  input.Description,
		AddressLine1: input.AddressLine1,
		AddressLine2: input.AddressLine2,
		City:         input.City,
		State:        input.State,
		PostalCode:   input.PostalCode,
		PhoneNumber:  input.PhoneNumber,
		Email:        input.Email,
		CuisineType:  input.CuisineType,
		OpeningTime:  input.OpeningTime,
		ClosingTime:  input.ClosingTime,
		IsActive:     true,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
	}

	if err := srv.storeRepo.Create(ctx, store); err != nil {
		if errors.Is(err, repository.ErrStoreExists) {
			return nil, domainerrors.ErrStoreAlreadyExists
		}

		srv.log(ctx).Error("Failed to persist store", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("persist store failed")
	}

	srv.log(ctx).Info("Store created", slog.String("storeID", store.StoreID))

	return store, nil
}

// GetStore returns one store by business key.
func (srv *catalogService) GetStore(ctx context.Context, storeID string) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByStoreID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		srv.log(ctx).Error("Failed to load store", slog.String("storeID", storeID), slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("load store failed")
	}

	return store, nil
}

// ListStores returns all active stores.
func (srv *catalogService) ListStores(ctx context.Context) ([]*entity.Store, error) {
	stores, err := srv.storeRepo.ListActive(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list stores", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("list stores failed")
	}

	return stores, nil
}

// CreateProduct adds a product, with its embedded variants, to an existing
// store. Variant identifiers are assigned here; SKUs must be globally
// unique.
func (srv *catalogService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	if input.StoreID == "" || input.ProductName == "" || input.BasePrice.IsNegative() {
		return nil, domainerrors.ErrProductInvalid
	}
	for _, v := range input.Variants {
		if v.VariantName == "" || v.SKU == "" {
			return nil, domainerrors.ErrProductInvalid
		}
	}

	if _, err := srv.storeRepo.FindByStoreID(ctx, input.StoreID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrProductStoreNotFound
		}

		srv.log(ctx).Error("Failed to resolve store for product", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("store lookup failed")
	}

	variants := make([]entity.ProductVariant, 0, len(input.Variants))
	for _, v := range input.Variants {
		variants = append(variants, entity.ProductVariant{
			VariantID:     uuid.New().String(),
			VariantName:   v.VariantName,
			PriceModifier: v.PriceModifier,
			StockQuantity: v.StockQuantity,
			ImageURL:      v.ImageURL,
			SKU:           v.SKU,
		})
	}

	product := &entity.Product{
		ProductID:     uuid.New().String(),
		StoreID:       input.StoreID,
		ProductName:   input.ProductName,
		Description:   input.Description,
		BasePrice:     input.BasePrice,
		CategoryID:    input.CategoryID,
		ImageURL:      input.ImageURL,
		IsAvailable:   true,
		StockQuantity: input.StockQuantity,
		Variants:      variants,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrSKUExists) {
			return nil, domainerrors.ErrProductSKUExists
		}

		srv.log(ctx).Error("Failed to persist product", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("persist product failed")
	}

	srv.log(ctx).Info("Product created",
		slog.String("productID", product.ProductID),
		slog.String("storeID", product.StoreID))

	return product, nil
}

// GetProduct returns one product by business key.
func (srv *catalogService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		srv.log(ctx).Error("Failed to load product", slog.String("productID", productID), slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("load product failed")
	}

	return product, nil
}

// ListStoreProducts returns all products of a store.
func (srv *catalogService) ListStoreProducts(ctx context.Context, storeID string) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListByStore(ctx, storeID)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.String("storeID", storeID), slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("list products failed")
	}

	return products, nil
}
