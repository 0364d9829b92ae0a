// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nosh/internal/delivery/http/middleware"
	"nosh/internal/delivery/http/router/handler"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	OrderHandler   *handler.OrderHandler
	StoreHandler   *handler.StoreHandler
	ProductHandler *handler.ProductHandler
	ReviewHandler  *handler.ReviewHandler
	PartnerHandler *handler.PartnerHandler
	MiscHandler    *handler.MiscHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Demo endpoints
	api.GET("/jokes", r.params.MiscHandler.Jokes)
	api.GET("/user", r.params.MiscHandler.DemoUser)

	// Diagnostics
	api.GET("/diagnostics/errors", r.params.MiscHandler.RecentErrors)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/refresh-token", r.params.AuthHandler.RefreshToken)
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
	}

	authenticate := r.params.AuthMiddleware.Authenticate

	// Catalog routes; writes require authentication
	api.GET("/stores", r.params.StoreHandler.ListStores)
	api.GET("/stores/:storeId", r.params.StoreHandler.GetStore)
	api.GET("/stores/:storeId/products", r.params.StoreHandler.ListStoreProducts)
	api.GET("/stores/:storeId/reviews", r.params.StoreHandler.ListStoreReviews)
	api.POST("/stores", r.params.StoreHandler.CreateStore, authenticate)
	api.GET("/products/:productId", r.params.ProductHandler.GetProduct)
	api.POST("/products", r.params.ProductHandler.CreateProduct, authenticate)

	// Order routes, all protected
	orderGroup := api.Group("/orders")
	orderGroup.Use(authenticate)
	{
		orderGroup.POST("", r.params.OrderHandler.PlaceOrder)
		orderGroup.GET("", r.params.OrderHandler.ListOrders)
		orderGroup.GET("/:orderId", r.params.OrderHandler.GetOrder)
	}

	// Reviews and delivery partners
	api.POST("/reviews", r.params.ReviewHandler.CreateReview, authenticate)
	api.GET("/partners", r.params.PartnerHandler.ListPartners)
	api.POST("/partners", r.params.PartnerHandler.RegisterPartner, authenticate)

	// Any unmatched /api path gets the canonical not-found body.
	api.Any("/*", func(c echo.Context) error {
		return errors.WithStack(domainerrors.ErrAPINotFound)
	})
}
