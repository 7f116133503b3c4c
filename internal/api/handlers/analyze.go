// Package handlers implements the thin demonstration HTTP surface over the
// orchestrator and store: one struct per resource, each constructed with
// the shared orchestrator.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chanwatch/core/internal/bar"
	"github.com/chanwatch/core/internal/market"
	"github.com/chanwatch/core/internal/orchestrator"
)

// AnalyzeHandler serves POST /api/v1/analyze.
type AnalyzeHandler struct {
	orchestrator *orchestrator.Orchestrator
}

// NewAnalyzeHandler builds an AnalyzeHandler around a shared orchestrator.
func NewAnalyzeHandler(o *orchestrator.Orchestrator) *AnalyzeHandler {
	return &AnalyzeHandler{orchestrator: o}
}

type analyzeRequest struct {
	Symbol    string        `json:"symbol"`
	Market    market.Market `json:"market"`
	Timeframe market.Timeframe `json:"timeframe"`
	Bars      []bar.Bar     `json:"bars"`
}

// Analyze runs a single orchestrator pass over the posted bars and returns
// the resulting Chanlun structure plus any newly accepted signals.
func (h *AnalyzeHandler) Analyze(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if req.Symbol == "" || !req.Market.Valid() || !req.Timeframe.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "symbol, market, and timeframe are required"})
	}

	outcome, err := h.orchestrator.Run(c.Request().Context(), req.Bars, req.Symbol, req.Market, req.Timeframe)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, outcome)
}
