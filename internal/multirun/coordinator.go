// Package multirun runs the Analysis Orchestrator once per timeframe for a
// single symbol and synthesizes a multi_timeframe_resonance signal when
// enough timeframes agree on direction within the same pass.
package multirun

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/chanwatch/core/internal/bar"
	"github.com/chanwatch/core/internal/market"
	"github.com/chanwatch/core/internal/orchestrator"
	"github.com/chanwatch/core/internal/signal"
)

// resonanceThreshold is the minimum number of distinct timeframes that must
// agree on direction to synthesize a resonance signal.
const resonanceThreshold = 3

// Coordinator runs one Orchestrator across every timeframe it is given for
// the same symbol, then layers multi-timeframe resonance detection on top.
type Coordinator struct {
	Orchestrator *orchestrator.Orchestrator
}

// New builds a Coordinator around an existing Orchestrator — the deduper and
// store are shared with any other caller of that Orchestrator.
func New(o *orchestrator.Orchestrator) *Coordinator {
	return &Coordinator{Orchestrator: o}
}

// TimeframeBars maps each timeframe to the bar sequence a caller has fetched
// for it.
type TimeframeBars map[market.Timeframe][]bar.Bar

// Run executes the orchestrator once per timeframe present in bars, then
// posts a multi_timeframe_resonance signal to the store if enough
// timeframes agree on direction. Returns the per-timeframe outcomes plus
// any resonance signal synthesized.
func (c *Coordinator) Run(ctx context.Context, bars TimeframeBars, symbol string, mkt market.Market) (map[market.Timeframe]orchestrator.RunOutcome, *signal.Signal, error) {
	outcomes := make(map[market.Timeframe]orchestrator.RunOutcome, len(bars))
	for tf, b := range bars {
		outcome, err := c.Orchestrator.Run(ctx, b, symbol, mkt, tf)
		if err != nil {
			return nil, nil, fmt.Errorf("timeframe %s: %w", tf, err)
		}
		outcomes[tf] = outcome
	}

	res := synthesizeResonance(outcomes, symbol, mkt)
	if res != nil {
		c.Orchestrator.Store.AddBatch([]signal.Signal{*res})
	}
	return outcomes, res, nil
}

// synthesizeResonance derives each timeframe's direction from the sign of
// its latest MACD histogram and fires when at least resonanceThreshold
// timeframes agree.
func synthesizeResonance(outcomes map[market.Timeframe]orchestrator.RunOutcome, symbol string, mkt market.Market) *signal.Signal {
	bullishTFs := make(map[market.Timeframe]bool)
	bearishTFs := make(map[market.Timeframe]bool)

	for tf, outcome := range outcomes {
		h := outcome.LatestMACDHistogram
		if math.IsNaN(h) || h == 0 {
			continue
		}
		if h > 0 {
			bullishTFs[tf] = true
		} else {
			bearishTFs[tf] = true
		}
	}

	switch {
	case len(bullishTFs) >= resonanceThreshold && len(bullishTFs) >= len(bearishTFs):
		return resonanceSignal(symbol, mkt, bullishTFs, "bullish")
	case len(bearishTFs) >= resonanceThreshold:
		return resonanceSignal(symbol, mkt, bearishTFs, "bearish")
	}
	return nil
}

func resonanceSignal(symbol string, mkt market.Market, tfs map[market.Timeframe]bool, direction string) *signal.Signal {
	strength := 50 + 10*float64(len(tfs)-2)
	if strength > 100 {
		strength = 100
	}

	// Resonance has no single owning timeframe; report the highest-weight
	// one present for display purposes.
	var repTF market.Timeframe
	var repWeight float64
	for tf := range tfs {
		if tf.Weight() > repWeight {
			repWeight = tf.Weight()
			repTF = tf
		}
	}

	return &signal.Signal{
		ID:          uuid.New().String(),
		Symbol:      symbol,
		Market:      mkt,
		Timeframe:   repTF,
		Kind:        signal.KindMultiTimeframeResonance,
		Strength:    strength,
		Time:        time.Now().UnixMilli(),
		Description: fmt.Sprintf("%d timeframes agree %s", len(tfs), direction),
	}
}
