package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nosh/internal/infra/errlog"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getJSON(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func newMiscTestServer() (*echo.Echo, *errlog.Sink) {
	e := echo.New()
	sink := errlog.New(10, nil)

	h := NewMiscHandler(sink)
	e.GET("/health", HealthCheck)
	e.GET("/api/jokes", h.Jokes)
	e.GET("/api/user", h.DemoUser)
	e.GET("/api/diagnostics/errors", h.RecentErrors)

	return e, sink
}

func TestMiscHandler_Jokes(t *testing.T) {
	e, _ := newMiscTestServer()

	rec := getJSON(e, "/api/jokes")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 5)
	assert.Equal(t, float64(1), got[0]["id"])
	assert.Equal(t, "The Mathematician's Parrot", got[0]["title"])
	assert.Equal(t, "Why was the math book sad? Because it had too many problems.", got[0]["content"])
	assert.Equal(t, "Parallel Lines", got[4]["title"])
}

func TestMiscHandler_DemoUser(t *testing.T) {
	e, _ := newMiscTestServer()

	rec := getJSON(e, "/api/user")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"username":"aditya.sahu"}`, rec.Body.String())
}

func TestMiscHandler_RecentErrors(t *testing.T) {
	e, sink := newMiscTestServer()
	sink.Record("POST /api/orders", "Store not found.", http.StatusNotFound)

	rec := getJSON(e, "/api/diagnostics/errors")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Store not found.")
}
