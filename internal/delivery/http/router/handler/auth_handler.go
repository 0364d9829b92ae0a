package handler

import (
	"net/http"

	"nosh/internal/domain/entity"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/errors"
	"nosh/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler holds dependencies for identity and session handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type registerRequest struct {
	FirstName   string       `json:"firstName" validate:"required"`
	LastName    string       `json:"lastName"`
	Email       string       `json:"email" validate:"required,email"`
	Password    string       `json:"password" validate:"required,min=6"`
	PhoneNumber string       `json:"phoneNumber" validate:"required"`
	Addresses   []addressDTO `json:"addresses"`
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	addresses := make([]entity.Address, 0, len(req.Addresses))
	for _, a := range req.Addresses {
		addresses = append(addresses, a.toEntity())
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Addresses:   addresses,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "User registered successfully.",
		"userId":  output.UserID,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload.")
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":      "Login successful.",
		"accessToken":  output.AccessToken,
		"refreshToken": output.RefreshToken,
		"expiresIn":    output.ExpiresIn,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshToken handles the token rotation request.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrRefreshTokenNotRecognized)
	}

	output, err := h.uc.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":      "Token refreshed successfully.",
		"accessToken":  output.AccessToken,
		"refreshToken": output.RefreshToken,
		"expiresIn":    output.ExpiresIn,
	})
}

// Logout handles the logout request. It succeeds whether or not the
// presented refresh token was outstanding.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshRequest
	_ = c.Bind(&req)

	if err := h.uc.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Logged out successfully.",
	})
}
