package handler

import (
	"net/http"

	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/errors"
	"nosh/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PartnerHandler holds dependencies for delivery partner handlers.
type PartnerHandler struct {
	uc usecase.PartnerUsecase
}

// NewPartnerHandler is the constructor for PartnerHandler, injected by Fx.
func NewPartnerHandler(uc usecase.PartnerUsecase) *PartnerHandler {
	return &PartnerHandler{uc: uc}
}

type registerPartnerRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	VehicleType string `json:"vehicleType"`
}

// RegisterPartner onboards a courier.
func (h *PartnerHandler) RegisterPartner(c echo.Context) error {
	var req registerPartnerRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrPartnerInvalid)
	}

	partner, err := h.uc.RegisterPartner(c.Request().Context(), usecase.RegisterPartnerInput{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		VehicleType: req.VehicleType,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Delivery partner registered successfully.",
		"partner": partnerToDTO(partner),
	})
}

// ListPartners returns all delivery partners.
func (h *PartnerHandler) ListPartners(c echo.Context) error {
	partners, err := h.uc.ListPartners(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]partnerDTO, 0, len(partners))
	for _, partner := range partners {
		out = append(out, partnerToDTO(partner))
	}

	return c.JSON(http.StatusOK, map[string]any{"partners": out})
}
