package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/errors"
	"nosh/internal/infra/errlog"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invokeErrorHandler(t *testing.T, err error) (*httptest.ResponseRecorder, *errlog.Sink) {
	t.Helper()

	sink := errlog.New(10, nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := NewErrorMiddleware(logger, sink)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw.HandleHTTPError(err, c)

	return rec, sink
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec, sink := invokeErrorHandler(t, domainerrors.ErrOrderStoreNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Store not found.","code":"ORDER_002"}`, rec.Body.String())

	entries := sink.Snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, "POST /api/orders", entries[0].SourceOperation)
	assert.Equal(t, http.StatusNotFound, entries[0].StatusCode)
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	err := errors.Wrap(domainerrors.ErrOrderPlacementFailed, "persist order failed")

	rec, _ := invokeErrorHandler(t, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t,
		`{"message":"Failed to place order. Please check details and try again.","code":"ORDER_006"}`,
		rec.Body.String())
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, sink := invokeErrorHandler(t, echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload."))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid request payload.","code":"HTTP_ERROR"}`, rec.Body.String())
	require.Len(t, sink.Snapshot(), 1)
}

func TestErrorMiddleware_UnknownErrorIsGeneric(t *testing.T) {
	rec, sink := invokeErrorHandler(t, errors.New("connection reset by peer"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Internal detail never leaks to the client.
	assert.JSONEq(t, `{"message":"Internal server error.","code":"INTERNAL_ERROR"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "connection reset")
	require.Len(t, sink.Snapshot(), 1)
}

func TestErrorMiddleware_APINotFound(t *testing.T) {
	rec, _ := invokeErrorHandler(t, domainerrors.ErrAPINotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"API endpoint not found.","code":"API_001"}`, rec.Body.String())
}
