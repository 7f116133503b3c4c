// Package market defines the closed Market/Timeframe enumerations and the
// per-market Chanlun parameter table, following a config-with-defaults
// convention with per-market overrides.
package market

import (
	"fmt"

	"github.com/chanwatch/core/internal/coreerr"
)

// Market is a closed enumeration of the venues the monitor covers.
type Market string

const (
	MarketFX         Market = "fx"
	MarketCN         Market = "cn"
	MarketHK         Market = "hk"
	MarketUS         Market = "us"
	MarketCrypto     Market = "crypto"
	MarketCommodities Market = "commodities"
)

// Valid reports whether m is one of the closed set of markets.
func (m Market) Valid() bool {
	switch m {
	case MarketFX, MarketCN, MarketHK, MarketUS, MarketCrypto, MarketCommodities:
		return true
	}
	return false
}

// Timeframe is a closed enumeration of supported bar intervals.
type Timeframe string

const (
	Timeframe1D  Timeframe = "1D"
	Timeframe4H  Timeframe = "4H"
	Timeframe1H  Timeframe = "1H"
	Timeframe15m Timeframe = "15m"
	Timeframe5m  Timeframe = "5m"
)

// Valid reports whether tf is one of the closed set of timeframes.
func (tf Timeframe) Valid() bool {
	switch tf {
	case Timeframe1D, Timeframe4H, Timeframe1H, Timeframe15m, Timeframe5m:
		return true
	}
	return false
}

// Weight returns the strength-formula weight w(tf) used to scale signal
// strength by timeframe. Unknown timeframes fall back to the 15m weight.
func (tf Timeframe) Weight() float64 {
	switch tf {
	case Timeframe1D:
		return 3.0
	case Timeframe4H:
		return 2.0
	case Timeframe1H:
		return 1.5
	case Timeframe5m:
		return 0.7
	default:
		return 1.0
	}
}

// ConfirmRule selects how a third-buy candidate is confirmed.
type ConfirmRule string

const (
	ConfirmNewHigh           ConfirmRule = "new_high"
	ConfirmBreakPullbackHigh ConfirmRule = "break_pullback_high"
)

// ChanlunParams are the five tunables of the bi/zhongshu/third-buy stages,
// overridable per market.
type ChanlunParams struct {
	MinBiKbars            int
	MinBiMoveATR           float64
	BreakoutATR            float64
	PullbackToleranceATR   float64
	ConfirmRule            ConfirmRule
}

// Validate rejects a ConfigError for nonsensical parameters (§7 ConfigError).
func (p ChanlunParams) Validate() error {
	if p.MinBiKbars < 2 {
		return fmt.Errorf("%w: min_bi_kbars must be >= 2, got %d", coreerr.ErrConfigError, p.MinBiKbars)
	}
	if p.MinBiMoveATR < 0 || p.BreakoutATR < 0 || p.PullbackToleranceATR < 0 {
		return fmt.Errorf("%w: ATR multipliers must be non-negative", coreerr.ErrConfigError)
	}
	switch p.ConfirmRule {
	case ConfirmNewHigh, ConfirmBreakPullbackHigh:
	default:
		return fmt.Errorf("%w: unknown confirm rule %q", coreerr.ErrConfigError, p.ConfirmRule)
	}
	return nil
}

// DefaultParams is the base row used by fx, cn, hk, us, and commodities.
func DefaultParams() ChanlunParams {
	return ChanlunParams{
		MinBiKbars:           5,
		MinBiMoveATR:         1.0,
		BreakoutATR:          0.5,
		PullbackToleranceATR: 0.3,
		ConfirmRule:          ConfirmBreakPullbackHigh,
	}
}

// CryptoParams is the crypto override row: shorter bi spans and tighter
// ATR multipliers than the default row.
func CryptoParams() ChanlunParams {
	return ChanlunParams{
		MinBiKbars:           4,
		MinBiMoveATR:         0.8,
		BreakoutATR:          0.4,
		PullbackToleranceATR: 0.4,
		ConfirmRule:          ConfirmBreakPullbackHigh,
	}
}

// Table maps each market to its ChanlunParams, overridable at init time.
type Table struct {
	byMarket map[Market]ChanlunParams
}

// DefaultTable builds the standard per-market params table: every market
// uses DefaultParams except crypto, which uses CryptoParams.
func DefaultTable() *Table {
	t := &Table{byMarket: make(map[Market]ChanlunParams, 6)}
	base := DefaultParams()
	for _, m := range []Market{MarketFX, MarketCN, MarketHK, MarketUS, MarketCommodities} {
		t.byMarket[m] = base
	}
	t.byMarket[MarketCrypto] = CryptoParams()
	return t
}

// Set overrides the params for one market, validating them first.
func (t *Table) Set(m Market, p ChanlunParams) error {
	if !m.Valid() {
		return fmt.Errorf("%w: unknown market %q", coreerr.ErrConfigError, m)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	t.byMarket[m] = p
	return nil
}

// Params looks up the params for m, falling back to DefaultParams if m has
// no explicit row (should not happen for a DefaultTable, but keeps Params total).
func (t *Table) Params(m Market) ChanlunParams {
	if p, ok := t.byMarket[m]; ok {
		return p
	}
	return DefaultParams()
}
