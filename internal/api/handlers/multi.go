package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chanwatch/core/internal/bar"
	"github.com/chanwatch/core/internal/market"
	"github.com/chanwatch/core/internal/multirun"
)

// MultiHandler serves POST /api/v1/analyze/multi.
type MultiHandler struct {
	coordinator *multirun.Coordinator
}

// NewMultiHandler builds a MultiHandler around a shared Coordinator.
func NewMultiHandler(c *multirun.Coordinator) *MultiHandler {
	return &MultiHandler{coordinator: c}
}

type multiAnalyzeRequest struct {
	Symbol string                         `json:"symbol"`
	Market market.Market                  `json:"market"`
	Bars   map[market.Timeframe][]bar.Bar `json:"bars"`
}

type multiAnalyzeResponse struct {
	Outcomes  map[market.Timeframe]any `json:"outcomes"`
	Resonance any                      `json:"resonance,omitempty"`
}

// Analyze runs the orchestrator once per timeframe present in the request
// body and returns every outcome plus any synthesized resonance signal.
func (h *MultiHandler) Analyze(c echo.Context) error {
	var req multiAnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if req.Symbol == "" || !req.Market.Valid() || len(req.Bars) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "symbol, market, and at least one timeframe's bars are required"})
	}

	outcomes, resonance, err := h.coordinator.Run(c.Request().Context(), multirun.TimeframeBars(req.Bars), req.Symbol, req.Market)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	resp := multiAnalyzeResponse{Outcomes: map[market.Timeframe]any{}}
	for tf, outcome := range outcomes {
		resp.Outcomes[tf] = outcome
	}
	if resonance != nil {
		resp.Resonance = resonance
	}
	return c.JSON(http.StatusOK, resp)
}
