// Package errors defines the application error taxonomy. Every client-facing
// failure path carries a stable business code string alongside its HTTP
// status, so callers can handle failures programmatically.
package errors

import (
	"net/http"

	"nosh/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// WithMessage returns a copy of the error carrying a different user-facing
// message while keeping the status and code. Used where the message embeds
// an identifier, e.g. which product of a cart was not found.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
	}
}

// Predefined error types. Codes and messages are part of the public API
// contract and must stay stable.
var (
	// Registration
	ErrUserAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"REG_001",
		"User with this email or phone number already exists.",
	)
	ErrRegistrationFailed = NewBaseError(
		http.StatusInternalServerError,
		"REG_002",
		"Failed to register user. Please try again.",
	)

	// Login
	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"LOGIN_001",
		"Invalid credentials.",
	)
	ErrLoginFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOGIN_002",
		"Login failed. Please try again.",
	)

	// Token refresh
	ErrRefreshTokenNotRecognized = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_001",
		"Invalid refresh token. Please re-login.",
	)
	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusForbidden,
		"REFRESH_002",
		"Refresh token expired or invalid. Please re-login.",
	)

	// Auth gate
	ErrNoToken = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_001",
		"Authentication required. No token provided.",
	)
	ErrTokenInvalid = NewBaseError(
		http.StatusForbidden,
		"AUTH_002",
		"Invalid or expired token. Please log in again.",
	)

	// Order placement
	ErrOrderMissingFields = NewBaseError(
		http.StatusBadRequest,
		"ORDER_001",
		"Missing required order details.",
	)
	ErrOrderStoreNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_002",
		"Store not found.",
	)
	ErrOrderProductNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_003",
		"Product not found.",
	)
	ErrOrderVariantNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_004",
		"Product variant not found.",
	)
	ErrOrderInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"ORDER_005",
		"Item quantity must be positive.",
	)
	ErrOrderPlacementFailed = NewBaseError(
		http.StatusInternalServerError,
		"ORDER_006",
		"Failed to place order. Please check details and try again.",
	)
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_007",
		"Order not found.",
	)
	ErrOrderNotOwned = NewBaseError(
		http.StatusForbidden,
		"ORDER_008",
		"Order belongs to another user.",
	)

	// Catalog
	ErrStoreNotFound = NewBaseError(
		http.StatusNotFound,
		"STORE_001",
		"Store not found.",
	)
	ErrStoreInvalid = NewBaseError(
		http.StatusBadRequest,
		"STORE_002",
		"Missing required store details.",
	)
	ErrStoreAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"STORE_003",
		"Store with this identifier already exists.",
	)
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_001",
		"Product not found.",
	)
	ErrProductInvalid = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_002",
		"Missing required product details.",
	)
	ErrProductStoreNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_003",
		"Store not found for product.",
	)
	ErrProductSKUExists = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_004",
		"Product with this SKU already exists.",
	)

	// Reviews
	ErrReviewInvalid = NewBaseError(
		http.StatusBadRequest,
		"REVIEW_001",
		"Rating must be between 1 and 5.",
	)
	ErrReviewTargetNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_002",
		"Review target not found.",
	)

	// Delivery partners
	ErrPartnerInvalid = NewBaseError(
		http.StatusBadRequest,
		"PARTNER_001",
		"Missing required delivery partner details.",
	)
	ErrPartnerAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"PARTNER_002",
		"Delivery partner with this phone number already exists.",
	)

	// Fallback
	ErrAPINotFound = NewBaseError(
		http.StatusNotFound,
		"API_001",
		"API endpoint not found.",
	)

	// Generic internal failure for routes without a dedicated code.
	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
	)
)
