package handler

import (
	"net/http"

	"nosh/internal/errors"
	"nosh/internal/usecase"

	"github.com/labstack/echo/v4"
)

// StoreHandler holds dependencies for storefront handlers.
type StoreHandler struct {
	catalog usecase.CatalogUsecase
	reviews usecase.ReviewUsecase
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(catalog usecase.CatalogUsecase, reviews usecase.ReviewUsecase) *StoreHandler {
	return &StoreHandler{catalog: catalog, reviews: reviews}
}

type createStoreRequest struct {
	StoreName    string  `json:"storeName"`
	Description  string  `json:"description"`
	AddressLine1 string  `json:"addressLine1"`
	AddressLine2 string  `json:"addressLine2"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	PostalCode   string  `json:"postalCode"`
	PhoneNumber  string  `json:"phoneNumber"`
	Email        string  `json:"email"`
	CuisineType  string  `json:"cuisineType"`
	OpeningTime  string  `json:"openingTime"`
	ClosingTime  string  `json:"closingTime"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

// CreateStore registers a new storefront.
func (h *StoreHandler) CreateStore(c echo.Context) error {
	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload.")
	}

	store, err := h.catalog.CreateStore(c.Request().Context(), usecase.CreateStoreInput{
		StoreName:    req.StoreName,
		Description:  req.Description,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		CuisineType:  req.CuisineType,
		OpeningTime:  req.OpeningTime,
		ClosingTime:  req.ClosingTime,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Store created successfully.",
		"store":   storeToDTO(store),
	})
}

// GetStore returns one store by its identifier.
func (h *StoreHandler) GetStore(c echo.Context) error {
	store, err := h.catalog.GetStore(c.Request().Context(), c.Param("storeId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, storeToDTO(store))
}

// ListStores returns all active stores.
func (h *StoreHandler) ListStores(c echo.Context) error {
	stores, err := h.catalog.ListStores(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]storeDTO, 0, len(stores))
	for _, store := range stores {
		out = append(out, storeToDTO(store))
	}

	return c.JSON(http.StatusOK, map[string]any{"stores": out})
}

// ListStoreProducts returns every product of a store.
func (h *StoreHandler) ListStoreProducts(c echo.Context) error {
	products, err := h.catalog.ListStoreProducts(c.Request().Context(), c.Param("storeId"))
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]productDTO, 0, len(products))
	for _, product := range products {
		out = append(out, productToDTO(product))
	}

	return c.JSON(http.StatusOK, map[string]any{"products": out})
}

// ListStoreReviews returns a store's reviews, newest first.
func (h *StoreHandler) ListStoreReviews(c echo.Context) error {
	reviews, err := h.reviews.ListStoreReviews(c.Request().Context(), c.Param("storeId"))
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]reviewDTO, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, reviewToDTO(review))
	}

	return c.JSON(http.StatusOK, map[string]any{"reviews": out})
}
