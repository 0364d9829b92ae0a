package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"nosh/internal/delivery/http/response"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/errors"
	"nosh/internal/infra/errlog"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware turns errors bubbling out of handlers into the canonical
// {message, code} body and records every failure in the diagnostics sink.
type ErrorMiddleware struct {
	logger *slog.Logger
	sink   *errlog.Sink
}

// NewErrorMiddleware creates the central error handler.
func NewErrorMiddleware(logger *slog.Logger, sink *errlog.Sink) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger, sink: sink}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	op := c.Request().Method + " " + c.Request().URL.Path

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("Request failed with internal error",
				slog.String("operation", op),
				slog.Any("error", err),
			)
		}
		m.sink.Record(op, appErr.Message(), appErr.HTTPCode())
		_ = response.Error(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprintf("%v", httpErr.Message)
		m.sink.Record(op, message, httpErr.Code)
		_ = c.JSON(httpErr.Code, response.ErrorBody{
			Message: message,
			Code:    "HTTP_ERROR",
		})

		return
	}

	// Anything else is an unclassified internal failure. The wrapped error
	// is logged with its stack; the client only sees the generic body.
	m.logger.Error("Unhandled error",
		slog.String("operation", op),
		slog.Any("error", err),
	)
	m.sink.Record(op, domainerrors.ErrInternal.Message(), domainerrors.ErrInternal.HTTPCode())
	_ = response.Error(c, domainerrors.ErrInternal)
}
