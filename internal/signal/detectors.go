package signal

import (
	"fmt"

	"github.com/chanwatch/core/internal/indicators"
	"github.com/chanwatch/core/internal/market"
)

// Detect runs every closed-enum single-timeframe detector against in and
// returns whatever triggered. Third-buy conversion and multi-timeframe
// resonance are handled separately, since they consume chanlun output and
// cross-timeframe results respectively rather than a bare Input.
func Detect(in Input, symbol string, mkt market.Market, tf market.Timeframe) []Signal {
	detectorFns := []func(Input, string, market.Market, market.Timeframe) *Signal{
		detectBollingerBreakout,
		detectMACDCross,
		detectRSIReversal,
		detectVolatilitySurge,
		detectLargeBodyCandle,
		detectKeyLevelBreakout,
		detectADXTrendStrength,
		detectStochasticReversal,
		detectVolumeSpike,
	}

	out := make([]Signal, 0, len(detectorFns))
	for _, fn := range detectorFns {
		if s := fn(in, symbol, mkt, tf); s != nil {
			out = append(out, *s)
		}
	}
	return out
}

func lastTwo(n int) (prev, last int, ok bool) {
	if n < 2 {
		return 0, 0, false
	}
	return n - 2, n - 1, true
}

func detectBollingerBreakout(in Input, symbol string, mkt market.Market, tf market.Timeframe) *Signal {
	n := len(in.Closes)
	prevIdx, lastIdx, ok := lastTwo(n)
	if !ok {
		return nil
	}
	if !defined(in.BollUpper[prevIdx]) || !defined(in.BollUpper[lastIdx]) ||
		!defined(in.BollLower[prevIdx]) || !defined(in.BollLower[lastIdx]) {
		return nil
	}

	prevClose, lastClose := in.Closes[prevIdx], in.Closes[lastIdx]
	strength := clampStrength(40 + 15*tf.Weight())

	switch {
	case prevClose <= in.BollUpper[prevIdx] && lastClose > in.BollUpper[lastIdx]:
		return newSignal(symbol, mkt, tf, KindBollingerBreakoutUp, strength, lastClose,
			fmt.Sprintf("close %.4f broke above the upper Bollinger band %.4f", lastClose, in.BollUpper[lastIdx]), nil)
	case prevClose >= in.BollLower[prevIdx] && lastClose < in.BollLower[lastIdx]:
		return newSignal(symbol, mkt, tf, KindBollingerBreakoutDown, strength, lastClose,
			fmt.Sprintf("close %.4f broke below the lower Bollinger band %.4f", lastClose, in.BollLower[lastIdx]), nil)
	}
	return nil
}

func detectMACDCross(in Input, symbol string, mkt market.Market, tf market.Timeframe) *Signal {
	prevIdx, lastIdx, ok := lastTwo(len(in.MACD))
	if !ok {
		return nil
	}
	prev := in.MACD[prevIdx]
	last := in.MACD[lastIdx]
	prevDiff := prev.DIF - prev.DEA
	lastDiff := last.DIF - last.DEA
	strength := clampStrength(30 + 12*tf.Weight())

	switch {
	case prevDiff <= 0 && lastDiff > 0:
		return newSignal(symbol, mkt, tf, KindMACDGoldenCross, strength, last.DIF,
			"MACD DIF crossed above DEA", nil)
	case prevDiff >= 0 && lastDiff < 0:
		return newSignal(symbol, mkt, tf, KindMACDDeathCross, strength, last.DIF,
			"MACD DIF crossed below DEA", nil)
	}
	return nil
}

func detectRSIReversal(in Input, symbol string, mkt market.Market, tf market.Timeframe) *Signal {
	prevIdx, lastIdx, ok := lastTwo(len(in.RSI))
	if !ok {
		return nil
	}
	prevRSI, lastRSI := in.RSI[prevIdx], in.RSI[lastIdx]
	if !defined(prevRSI) || !defined(lastRSI) {
		return nil
	}
	strength := clampStrength(35 + 15*tf.Weight())

	switch {
	case prevRSI <= 30 && lastRSI > 30:
		return newSignal(symbol, mkt, tf, KindRSIOversoldReversal, strength, in.Closes[lastIdx],
			fmt.Sprintf("RSI crossed up through 30 (%.1f -> %.1f)", prevRSI, lastRSI), nil)
	case prevRSI >= 70 && lastRSI < 70:
		return newSignal(symbol, mkt, tf, KindRSIOverboughtReversal, strength, in.Closes[lastIdx],
			fmt.Sprintf("RSI crossed down through 70 (%.1f -> %.1f)", prevRSI, lastRSI), nil)
	}
	return nil
}

func detectVolatilitySurge(in Input, symbol string, mkt market.Market, tf market.Timeframe) *Signal {
	n := len(in.ATR)
	if n < 20 {
		return nil
	}
	last := in.ATR[n-1]
	baseline := in.ATR[n-1-5]
	if !defined(last) || !defined(baseline) || baseline == 0 {
		return nil
	}
	deltaATR := (last - baseline) / baseline
	if deltaATR <= 0.3 {
		return nil
	}
	strength := clampStrength(25 + 50*deltaATR)
	return newSignal(symbol, mkt, tf, KindVolatilitySurge, strength, in.Closes[n-1],
		fmt.Sprintf("ATR expanded %.1f%% over 5 bars", deltaATR*100), nil)
}

func detectLargeBodyCandle(in Input, symbol string, mkt market.Market, tf market.Timeframe) *Signal {
	n := len(in.Closes)
	if n < 21 {
		return nil
	}
	window := n - 20
	var sum float64
	for i := window; i < n; i++ {
		sum += indicators.Abs(in.Closes[i] - in.Opens[i])
	}
	mean := sum / 20
	lastBody := indicators.Abs(in.Closes[n-1] - in.Opens[n-1])
	if mean == 0 || lastBody <= 2.5*mean {
		return nil
	}
	strength := clampStrength(20 + 10*tf.Weight())
	return newSignal(symbol, mkt, tf, KindLargeBodyCandle, strength, in.Closes[n-1],
		fmt.Sprintf("candle body %.4f is %.1fx the 20-bar mean", lastBody, lastBody/mean), nil)
}

func detectKeyLevelBreakout(in Input, symbol string, mkt market.Market, tf market.Timeframe) *Signal {
	n := len(in.Closes)
	if n < 2 {
		return nil
	}
	lookback := 20
	if n-1 < lookback {
		lookback = n - 1
	}
	if lookback <= 0 {
		return nil
	}
	prevHigh := in.Highs[n-2]
	for i := n - 1 - lookback; i < n-1; i++ {
		if in.Highs[i] > prevHigh {
			prevHigh = in.Highs[i]
		}
	}
	priorClose := in.Closes[n-2]
	lastClose := in.Closes[n-1]
	if !(priorClose <= prevHigh && lastClose > prevHigh) {
		return nil
	}
	strength := clampStrength(45 + 15*tf.Weight())
	return newSignal(symbol, mkt, tf, KindKeyLevelBreakout, strength, lastClose,
		fmt.Sprintf("close %.4f broke the %d-bar prior high %.4f", lastClose, lookback, prevHigh), nil)
}

func detectADXTrendStrength(in Input, symbol string, mkt market.Market, tf market.Timeframe) *Signal {
	prevIdx, lastIdx, ok := lastTwo(len(in.ADX))
	if !ok {
		return nil
	}
	prevADX, lastADX := in.ADX[prevIdx], in.ADX[lastIdx]
	if !defined(prevADX) || !defined(lastADX) {
		return nil
	}
	if !(prevADX <= 25 && lastADX > 25) {
		return nil
	}
	scale := lastADX / 50
	if scale > 1.5 {
		scale = 1.5
	}
	strength := clampStrength((30 + 10*tf.Weight()) * scale)
	return newSignal(symbol, mkt, tf, KindADXTrendStrength, strength, in.Closes[lastIdx],
		fmt.Sprintf("ADX crossed above 25 (%.1f -> %.1f)", prevADX, lastADX), nil)
}

func detectStochasticReversal(in Input, symbol string, mkt market.Market, tf market.Timeframe) *Signal {
	prevIdx, lastIdx, ok := lastTwo(len(in.StochK))
	if !ok {
		return nil
	}
	prevK, lastK := in.StochK[prevIdx], in.StochK[lastIdx]
	prevD, lastD := in.StochD[prevIdx], in.StochD[lastIdx]
	if !defined(prevK) || !defined(lastK) || !defined(prevD) || !defined(lastD) {
		return nil
	}
	strength := clampStrength(30 + 12*tf.Weight())

	switch {
	case prevK <= prevD && lastK > lastD && lastK < 20:
		return newSignal(symbol, mkt, tf, KindStochasticReversal, strength, in.Closes[lastIdx],
			"stochastic %K crossed above %D from oversold territory", nil)
	case prevK >= prevD && lastK < lastD && lastK > 80:
		return newSignal(symbol, mkt, tf, KindStochasticReversal, strength, in.Closes[lastIdx],
			"stochastic %K crossed below %D from overbought territory", nil)
	}
	return nil
}

func detectVolumeSpike(in Input, symbol string, mkt market.Market, tf market.Timeframe) *Signal {
	if in.VolumeRatio == nil {
		return nil
	}
	n := len(in.VolumeRatio)
	if n == 0 {
		return nil
	}
	ratio := in.VolumeRatio[n-1]
	if !defined(ratio) || ratio <= 2.0 {
		return nil
	}
	strength := clampStrength((25 + 10*tf.Weight()) * ratio)
	return newSignal(symbol, mkt, tf, KindVolumeSpike, strength, in.Closes[n-1],
		fmt.Sprintf("volume %.1fx the 20-bar average", ratio), nil)
}
