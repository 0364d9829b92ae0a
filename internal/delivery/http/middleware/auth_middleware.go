// Package middleware contains the HTTP middleware of the delivery layer.
package middleware

import (
	"strings"

	deliverycontext "nosh/internal/delivery/context"
	"nosh/internal/delivery/http/response"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/domain/service"
	"nosh/internal/infra/errlog"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards protected routes behind a bearer access token.
// A missing or malformed header is distinct from a token that fails
// verification; both rejections are recorded for diagnostics.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	sink     *errlog.Sink
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, sink *errlog.Sink) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, sink: sink}
}

// Authenticate validates the access token and attaches the caller's
// identity to the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return m.reject(c, domainerrors.ErrNoToken)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return m.reject(c, domainerrors.ErrNoToken)
		}

		claims, err := m.tokenSvc.VerifyAccessToken(tokenString)
		if err != nil {
			return m.reject(c, domainerrors.ErrTokenInvalid)
		}

		deliverycontext.SetUser(c, claims.UserID, claims.Email)

		return next(c)
	}
}

func (m *AuthMiddleware) reject(c echo.Context, appErr domainerrors.AppError) error {
	op := c.Request().Method + " " + c.Request().URL.Path
	m.sink.Record(op, appErr.Message(), appErr.HTTPCode())

	return response.Error(c, appErr)
}
