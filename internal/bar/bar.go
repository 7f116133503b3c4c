// Package bar defines the raw OHLC bar type shared by every stage of the
// analytical pipeline, and the containment-reduced ProcessedBar it produces.
package bar

import (
	"fmt"
	"math"

	"github.com/chanwatch/core/internal/coreerr"
)

// Bar is one OHLC candle, oldest-first ordering is the caller's responsibility.
type Bar struct {
	Time   int64    `json:"time"` // unix seconds
	Open   float64  `json:"open"`
	High   float64  `json:"high"`
	Low    float64  `json:"low"`
	Close  float64  `json:"close"`
	Volume *float64 `json:"volume,omitempty"` // optional
}

// Validate checks the OHLC invariants from the data model: all values finite
// and low <= min(open,close) <= max(open,close) <= high.
func (b Bar) Validate() error {
	for name, v := range map[string]float64{"open": b.Open, "high": b.High, "low": b.Low, "close": b.Close} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", coreerr.ErrMalformedBar, name)
		}
	}
	lo := math.Min(b.Open, b.Close)
	hi := math.Max(b.Open, b.Close)
	if b.Low > lo {
		return fmt.Errorf("%w: low %.8f exceeds min(open,close) %.8f", coreerr.ErrMalformedBar, b.Low, lo)
	}
	if hi > b.High {
		return fmt.Errorf("%w: max(open,close) %.8f exceeds high %.8f", coreerr.ErrMalformedBar, hi, b.High)
	}
	return nil
}

// ValidateSequence checks per-bar invariants plus strictly ascending time.
func ValidateSequence(bars []Bar) error {
	for i, b := range bars {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("bar %d: %w", i, err)
		}
		if i > 0 && bars[i-1].Time >= b.Time {
			return fmt.Errorf("%w: bar %d time %d does not strictly follow bar %d time %d",
				coreerr.ErrMalformedBar, i, b.Time, i-1, bars[i-1].Time)
		}
	}
	return nil
}

// Closes extracts the close series.
func Closes(bars []Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}

// Highs extracts the high series.
func Highs(bars []Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.High
	}
	return out
}

// Lows extracts the low series.
func Lows(bars []Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Low
	}
	return out
}

// ProcessedBar is a bar after containment reduction. It carries the index of
// the last raw bar it absorbed plus the merged OHLC-equivalent fields.
type ProcessedBar struct {
	OrigIndex int     `json:"orig_index"`
	Time      int64   `json:"time"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
}

// Contains reports whether a's [low, high] fully spans b's, or vice versa.
func Contains(aHigh, aLow, bHigh, bLow float64) bool {
	return (aHigh >= bHigh && aLow <= bLow) || (bHigh >= aHigh && bLow <= aLow)
}
