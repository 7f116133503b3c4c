package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chanwatch/core/internal/store"
)

// SignalsHandler serves the signal store's read and acknowledge routes.
type SignalsHandler struct {
	store *store.Store
}

// NewSignalsHandler builds a SignalsHandler around a shared store.
func NewSignalsHandler(s *store.Store) *SignalsHandler {
	return &SignalsHandler{store: s}
}

// List serves GET /api/v1/signals with the current newest-first snapshot.
func (h *SignalsHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Snapshot())
}

// Acknowledge serves POST /api/v1/signals/:id/ack. Acknowledging flips the
// signal's Acknowledged flag in the store buffer and dismisses its toast,
// if it still has one showing.
func (h *SignalsHandler) Acknowledge(c echo.Context) error {
	id := c.Param("id")
	if !h.store.Acknowledge(id) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no signal with that id"})
	}
	return c.NoContent(http.StatusOK)
}
