package chanlun

import (
	"github.com/chanwatch/core/internal/bar"
	"github.com/chanwatch/core/internal/indicators"
	"github.com/chanwatch/core/internal/market"
)

// atrPeriod is the Wilder window used internally to scale bi/third-buy
// thresholds. It is independent of any ATR series a caller separately
// requests from the indicators package for display purposes.
const atrPeriod = 14

// Run executes the five structural stages in order — containment reduction,
// fractal detection, bi formation, zhongshu detection, third-buy detection —
// and tolerates short or empty input at every stage.
func Run(bars []bar.Bar, symbol string, mkt market.Market, tf market.Timeframe, params market.ChanlunParams) Result {
	processed := Reduce(bars)
	fractals := DetectFractals(processed)

	highs := make([]float64, len(bars))
	lows := make([]float64, len(bars))
	closes := make([]float64, len(bars))
	for i, b := range bars {
		highs[i] = b.High
		lows[i] = b.Low
		closes[i] = b.Close
	}
	atr := indicators.ATR(highs, lows, closes, atrPeriod)

	bis := FormBis(fractals, processed, atr, params)
	zhongshus := DetectZhongshus(bis)
	thirdBuys := DetectThirdBuys(zhongshus, bis, processed, atr, symbol, mkt, tf, params)

	return Result{
		Processed: processed,
		Fractals:  fractals,
		Bis:       bis,
		Zhongshus: zhongshus,
		ThirdBuys: thirdBuys,
	}
}
