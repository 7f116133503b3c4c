package market

import (
	"errors"
	"testing"

	"github.com/chanwatch/core/internal/coreerr"
)

func TestMarketValid(t *testing.T) {
	for _, m := range []Market{MarketFX, MarketCN, MarketHK, MarketUS, MarketCrypto, MarketCommodities} {
		if !m.Valid() {
			t.Errorf("%q should be valid", m)
		}
	}
	if Market("moon").Valid() {
		t.Error("unknown market should be invalid")
	}
}

func TestTimeframeValid(t *testing.T) {
	for _, tf := range []Timeframe{Timeframe1D, Timeframe4H, Timeframe1H, Timeframe15m, Timeframe5m} {
		if !tf.Valid() {
			t.Errorf("%q should be valid", tf)
		}
	}
	if Timeframe("1Y").Valid() {
		t.Error("unknown timeframe should be invalid")
	}
}

func TestTimeframeWeightOrdering(t *testing.T) {
	if !(Timeframe1D.Weight() > Timeframe4H.Weight() &&
		Timeframe4H.Weight() > Timeframe1H.Weight() &&
		Timeframe1H.Weight() > Timeframe5m.Weight()) {
		t.Fatal("weights should strictly decrease from daily down to 5m")
	}
}

func TestTimeframeWeightUnknownFallsBackTo1(t *testing.T) {
	if got := Timeframe("bogus").Weight(); got != 1.0 {
		t.Fatalf("Weight() for an unknown timeframe = %v, want 1.0", got)
	}
}

func TestChanlunParamsValidateRejectsSmallMinBiKbars(t *testing.T) {
	p := DefaultParams()
	p.MinBiKbars = 1
	if err := p.Validate(); !errors.Is(err, coreerr.ErrConfigError) {
		t.Fatalf("Validate() error = %v, want wrapping ErrConfigError", err)
	}
}

func TestChanlunParamsValidateRejectsNegativeATRMultiplier(t *testing.T) {
	p := DefaultParams()
	p.BreakoutATR = -0.1
	if err := p.Validate(); !errors.Is(err, coreerr.ErrConfigError) {
		t.Fatalf("Validate() error = %v, want wrapping ErrConfigError", err)
	}
}

func TestChanlunParamsValidateRejectsUnknownConfirmRule(t *testing.T) {
	p := DefaultParams()
	p.ConfirmRule = ConfirmRule("unknown")
	if err := p.Validate(); !errors.Is(err, coreerr.ErrConfigError) {
		t.Fatalf("Validate() error = %v, want wrapping ErrConfigError", err)
	}
}

func TestDefaultTableAppliesCryptoOverride(t *testing.T) {
	table := DefaultTable()
	if table.Params(MarketCrypto) != CryptoParams() {
		t.Error("crypto row should use CryptoParams")
	}
	if table.Params(MarketFX) != DefaultParams() {
		t.Error("fx row should use DefaultParams")
	}
}

func TestTableSetRejectsInvalidMarket(t *testing.T) {
	table := DefaultTable()
	if err := table.Set(Market("moon"), DefaultParams()); !errors.Is(err, coreerr.ErrConfigError) {
		t.Fatalf("Set() error = %v, want wrapping ErrConfigError", err)
	}
}

func TestTableSetRejectsInvalidParams(t *testing.T) {
	table := DefaultTable()
	bad := DefaultParams()
	bad.MinBiKbars = 0
	if err := table.Set(MarketFX, bad); !errors.Is(err, coreerr.ErrConfigError) {
		t.Fatalf("Set() error = %v, want wrapping ErrConfigError for invalid params", err)
	}
}

func TestTableSetOverridesLookup(t *testing.T) {
	table := DefaultTable()
	custom := DefaultParams()
	custom.MinBiKbars = 7
	if err := table.Set(MarketUS, custom); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := table.Params(MarketUS).MinBiKbars; got != 7 {
		t.Fatalf("Params(MarketUS).MinBiKbars = %d, want 7", got)
	}
}
