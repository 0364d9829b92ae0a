package handler

import (
	"net/http"

	"nosh/internal/infra/errlog"

	"github.com/labstack/echo/v4"
)

// MiscHandler serves the demo and diagnostics endpoints.
type MiscHandler struct {
	sink *errlog.Sink
}

// NewMiscHandler is the constructor for MiscHandler, injected by Fx.
func NewMiscHandler(sink *errlog.Sink) *MiscHandler {
	return &MiscHandler{sink: sink}
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type joke struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

var jokes = []joke{
	{
		ID:      1,
		Title:   "The Mathematician's Parrot",
		Content: "Why was the math book sad? Because it had too many problems.",
	},
	{
		ID:      2,
		Title:   "Invisible Man's Doctor",
		Content: `What did the invisible man say to the doctor? "I can't see myself getting better."`,
	},
	{
		ID:      3,
		Title:   "Cheesy Joke",
		Content: "What do you call cheese that isn't yours? Nacho cheese!",
	},
	{
		ID:      4,
		Title:   "Why did the scarecrow win an award?",
		Content: "Because he was outstanding in his field!",
	},
	{
		ID:      5,
		Title:   "Parallel Lines",
		Content: "Parallel lines have so much in common. It’s a shame they’ll never meet.",
	},
}

// Jokes returns the fixed demo joke list.
func (h *MiscHandler) Jokes(c echo.Context) error {
	return c.JSON(http.StatusOK, jokes)
}

// DemoUser returns the fixed demo user object.
func (h *MiscHandler) DemoUser(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"username": "aditya.sahu"})
}

// RecentErrors exposes the diagnostics ring, newest failures first.
func (h *MiscHandler) RecentErrors(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"errors": h.sink.Snapshot()})
}
