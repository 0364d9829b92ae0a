package handler

import (
	"net/http"

	"nosh/internal/errors"
	"nosh/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ProductHandler holds dependencies for product handlers.
type ProductHandler struct {
	catalog usecase.CatalogUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(catalog usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

type createVariantRequest struct {
	VariantName   string  `json:"variantName"`
	PriceModifier float64 `json:"priceModifier"`
	StockQuantity int     `json:"stockQuantity"`
	ImageURL      string  `json:"imageUrl"`
	SKU           string  `json:"sku"`
}

type createProductRequest struct {
	StoreID       string                 `json:"storeId"`
	ProductName   string                 `json:"productName"`
	Description   string                 `json:"description"`
	BasePrice     float64                `json:"basePrice"`
	CategoryID    string                 `json:"categoryId"`
	ImageURL      string                 `json:"imageUrl"`
	StockQuantity int                    `json:"stockQuantity"`
	Variants      []createVariantRequest `json:"variants"`
}

// CreateProduct adds a product to a store.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload.")
	}

	variants := make([]usecase.ProductVariantInput, 0, len(req.Variants))
	for _, v := range req.Variants {
		variants = append(variants, usecase.ProductVariantInput{
			VariantName:   v.VariantName,
			PriceModifier: decimal.NewFromFloat(v.PriceModifier),
			StockQuantity: v.StockQuantity,
			ImageURL:      v.ImageURL,
			SKU:           v.SKU,
		})
	}

	product, err := h.catalog.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		StoreID:       req.StoreID,
		ProductName:   req.ProductName,
		Description:   req.Description,
		BasePrice:     decimal.NewFromFloat(req.BasePrice),
		CategoryID:    req.CategoryID,
		ImageURL:      req.ImageURL,
		StockQuantity: req.StockQuantity,
		Variants:      variants,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Product created successfully.",
		"product": productToDTO(product),
	})
}

// GetProduct returns one product by its identifier.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.catalog.GetProduct(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, productToDTO(product))
}
