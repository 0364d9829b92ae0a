// Package response holds the JSON shapes shared by every handler.
package response

import (
	domainerrors "nosh/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the wire shape of every failure. The message and code
// values are part of the public API contract and must stay stable.
type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error writes an application error as its canonical JSON body.
func Error(c echo.Context, appErr domainerrors.AppError) error {
	return c.JSON(appErr.HTTPCode(), ErrorBody{
		Message: appErr.Message(),
		Code:    appErr.ErrorCode(),
	})
}
