// Package orchestrator wires the indicator kernels, the Chanlun pipeline,
// and the signal detectors into the single analytical entry point, owning
// the long-lived state (the deduper and the store) across otherwise
// stateless runs.
package orchestrator

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/chanwatch/core/internal/bar"
	"github.com/chanwatch/core/internal/chanlun"
	"github.com/chanwatch/core/internal/dedupe"
	"github.com/chanwatch/core/internal/market"
	"github.com/chanwatch/core/internal/signal"
	"github.com/chanwatch/core/internal/store"
)

// Orchestrator runs the full analysis pipeline for one (symbol, market,
// timeframe) at a time. It is stateless between runs except for the
// deduper and the store, which are safe for concurrent use across
// simultaneous invocations.
type Orchestrator struct {
	Deduper *dedupe.Deduper
	Store   *store.Store
	Params  *market.Table
}

// New builds an Orchestrator with a fresh deduper and store of the given
// configuration. A nil params table falls back to market.DefaultTable().
func New(cooldown time.Duration, storeCapacity int, params *market.Table) *Orchestrator {
	if params == nil {
		params = market.DefaultTable()
	}
	return &Orchestrator{
		Deduper: dedupe.New(cooldown),
		Store:   store.New(storeCapacity),
		Params:  params,
	}
}

// RunOutcome is the full result of one orchestrator invocation: the
// structural Chanlun result, the signals posted to the store, and the
// latest MACD histogram value (NaN if the run produced no defined MACD
// sample), which callers comparing multiple timeframes use as that
// timeframe's directional reading.
type RunOutcome struct {
	Chanlun             chanlun.Result
	Signals             []signal.Signal
	LatestMACDHistogram float64
}

// Run executes the five-step pipeline: (1) compute indicators, (2) run the
// Chanlun pipeline, (3) run all detectors, (4) convert third-buys to
// signals, (5) post the union to the store.
// Cancellation is only honored between steps; if ctx is cancelled mid-run,
// no partial state reaches the store.
func (o *Orchestrator) Run(ctx context.Context, bars []bar.Bar, symbol string, mkt market.Market, tf market.Timeframe) (RunOutcome, error) {
	if err := bar.ValidateSequence(bars); err != nil {
		return RunOutcome{}, err
	}

	if err := ctx.Err(); err != nil {
		return RunOutcome{}, err
	}
	input := signal.BuildInput(bars)

	if err := ctx.Err(); err != nil {
		return RunOutcome{}, err
	}
	params := o.Params.Params(mkt)
	chanlunResult := chanlun.Run(bars, symbol, mkt, tf, params)

	if err := ctx.Err(); err != nil {
		return RunOutcome{}, err
	}
	detected := signal.Detect(input, symbol, mkt, tf)
	detected = append(detected, signal.ThirdBuySignals(chanlunResult.ThirdBuys, chanlunResult.Zhongshus)...)

	if err := ctx.Err(); err != nil {
		return RunOutcome{}, err
	}
	now := time.Now()
	accepted := o.Deduper.Filter(detected, now)

	if err := ctx.Err(); err != nil {
		return RunOutcome{}, err
	}
	o.Store.AddBatch(accepted)

	macdHistogram := math.NaN()
	if n := len(input.MACD); n > 0 {
		macdHistogram = input.MACD[n-1].Histogram
	}

	log.Debug().
		Str("symbol", symbol).
		Str("market", string(mkt)).
		Str("timeframe", string(tf)).
		Int("bars", len(bars)).
		Int("fractals", len(chanlunResult.Fractals)).
		Int("bis", len(chanlunResult.Bis)).
		Int("zhongshus", len(chanlunResult.Zhongshus)).
		Int("thirdBuys", len(chanlunResult.ThirdBuys)).
		Int("signalsDetected", len(detected)).
		Int("signalsAccepted", len(accepted)).
		Msg("analysis run complete")

	return RunOutcome{Chanlun: chanlunResult, Signals: accepted, LatestMACDHistogram: macdHistogram}, nil
}
