// Package signal defines the closed Signal kind enumeration, the detectors
// that consume bars and indicator output to produce them, and the strength
// formulas from the component design.
package signal

import (
	"github.com/chanwatch/core/internal/market"
)

// Kind is the closed enumeration of signal kinds. The three Extended kinds
// are additions over the base set, fed by the indicators package's extended
// kernels (ADX, Stochastic, VolumeRatio).
type Kind string

const (
	KindBollingerBreakoutUp   Kind = "bollinger_breakout_up"
	KindBollingerBreakoutDown Kind = "bollinger_breakout_down"
	KindMACDGoldenCross       Kind = "macd_golden_cross"
	KindMACDDeathCross        Kind = "macd_death_cross"
	KindRSIOversoldReversal   Kind = "rsi_oversold_reversal"
	KindRSIOverboughtReversal Kind = "rsi_overbought_reversal"
	KindVolatilitySurge       Kind = "volatility_surge"
	KindLargeBodyCandle       Kind = "large_body_candle"
	KindKeyLevelBreakout      Kind = "key_level_breakout"
	KindMultiTimeframeResonance Kind = "multi_timeframe_resonance"
	KindThirdBuyCandidate     Kind = "third_buy_candidate"
	KindThirdBuyConfirmed     Kind = "third_buy_confirmed"

	// Extended kinds, fed by the bonus indicator kernels.
	KindADXTrendStrength    Kind = "adx_trend_strength"
	KindStochasticReversal  Kind = "stochastic_reversal"
	KindVolumeSpike         Kind = "volume_spike"
)

// Valid reports whether k is one of the closed set of kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindBollingerBreakoutUp, KindBollingerBreakoutDown, KindMACDGoldenCross, KindMACDDeathCross,
		KindRSIOversoldReversal, KindRSIOverboughtReversal, KindVolatilitySurge, KindLargeBodyCandle,
		KindKeyLevelBreakout, KindMultiTimeframeResonance, KindThirdBuyCandidate, KindThirdBuyConfirmed,
		KindADXTrendStrength, KindStochasticReversal, KindVolumeSpike:
		return true
	}
	return false
}

// KeyLevels carries the optional structural reference prices a signal may
// be anchored to.
type KeyLevels struct {
	ZhongshuHigh *float64 `json:"zhongshu_high,omitempty"`
	ZhongshuLow  *float64 `json:"zhongshu_low,omitempty"`
	PullbackLow  *float64 `json:"pullback_low,omitempty"`
	ConfirmPrice *float64 `json:"confirm_price,omitempty"`
}

// Signal is one emitted detection, clamped to [0,100] strength.
type Signal struct {
	ID           string             `json:"id"`
	Symbol       string             `json:"symbol"`
	Market       market.Market      `json:"market"`
	Timeframe    market.Timeframe   `json:"timeframe"`
	Kind         Kind               `json:"kind"`
	Strength     float64            `json:"strength"`
	Price        float64            `json:"price"`
	Time         int64              `json:"time"` // wall-clock ms since epoch
	Description  string             `json:"description"`
	KeyLevels    *KeyLevels         `json:"key_levels,omitempty"`
	Acknowledged bool               `json:"acknowledged"`
}

// clampStrength enforces the [0,100] bound every strength formula is
// clamped to.
func clampStrength(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
