package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nosh/internal/delivery/http/middleware"
	"nosh/internal/delivery/http/validator"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/infra/errlog"
	"nosh/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase returns canned results so the test can focus on the
// handler's wire behavior.
type stubAuthUsecase struct {
	registerErr error
	refreshErr  error
}

func (s *stubAuthUsecase) Register(context.Context, usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}

	return &usecase.RegisterOutput{UserID: "user-1"}, nil
}

func (s *stubAuthUsecase) Login(context.Context, usecase.LoginInput) (*usecase.LoginOutput, error) {
	return &usecase.LoginOutput{AccessToken: "a", RefreshToken: "r", ExpiresIn: "15m"}, nil
}

func (s *stubAuthUsecase) Refresh(context.Context, string) (*usecase.RefreshOutput, error) {
	if s.refreshErr != nil {
		return nil, s.refreshErr
	}

	return &usecase.RefreshOutput{AccessToken: "a2", RefreshToken: "r2", ExpiresIn: "15m"}, nil
}

func (s *stubAuthUsecase) Logout(context.Context, string) error { return nil }

func newAuthTestServer(uc usecase.AuthUsecase) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sink := errlog.New(10, nil)
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger, sink).HandleHTTPError

	h := NewAuthHandler(uc)
	e.POST("/api/auth/register", h.Register)
	e.POST("/api/auth/login", h.Login)
	e.POST("/api/auth/refresh-token", h.RefreshToken)
	e.POST("/api/auth/logout", h.Logout)

	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthHandler_Register_Created(t *testing.T) {
	e := newAuthTestServer(&stubAuthUsecase{})

	rec := postJSON(e, "/api/auth/register", `{
		"firstName": "Asha",
		"email": "asha@example.com",
		"password": "secret123",
		"phoneNumber": "+911234567890"
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"User registered successfully.","userId":"user-1"}`, rec.Body.String())
}

func TestAuthHandler_Register_MissingRequiredFields(t *testing.T) {
	e := newAuthTestServer(&stubAuthUsecase{})

	rec := postJSON(e, "/api/auth/register", `{"email": "asha@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	e := newAuthTestServer(&stubAuthUsecase{registerErr: domainerrors.ErrUserAlreadyExists})

	rec := postJSON(e, "/api/auth/register", `{
		"firstName": "Asha",
		"email": "asha@example.com",
		"password": "secret123",
		"phoneNumber": "+911234567890"
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"message":"User with this email or phone number already exists.","code":"REG_001"}`,
		rec.Body.String())
}

func TestAuthHandler_Login_ReturnsTokenPair(t *testing.T) {
	e := newAuthTestServer(&stubAuthUsecase{})

	rec := postJSON(e, "/api/auth/login", `{"email":"asha@example.com","password":"secret123"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"message": "Login successful.",
		"accessToken": "a",
		"refreshToken": "r",
		"expiresIn": "15m"
	}`, rec.Body.String())
}

func TestAuthHandler_Refresh_NotRecognized(t *testing.T) {
	e := newAuthTestServer(&stubAuthUsecase{refreshErr: domainerrors.ErrRefreshTokenNotRecognized})

	rec := postJSON(e, "/api/auth/refresh-token", `{"refreshToken":"stale"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t,
		`{"message":"Invalid refresh token. Please re-login.","code":"REFRESH_001"}`,
		rec.Body.String())
}

func TestAuthHandler_Logout_AlwaysOK(t *testing.T) {
	e := newAuthTestServer(&stubAuthUsecase{})

	rec := postJSON(e, "/api/auth/logout", `{}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Logged out successfully."}`, rec.Body.String())
}
