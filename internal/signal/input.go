package signal

import (
	"math"

	"github.com/chanwatch/core/internal/bar"
	"github.com/chanwatch/core/internal/indicators"
)

// Input bundles one run's bars with every indicator series a detector might
// need, computed once by the orchestrator and shared across all detectors.
type Input struct {
	Bars   []bar.Bar
	Closes []float64
	Opens  []float64
	Highs  []float64
	Lows   []float64

	BollUpper, BollMiddle, BollLower []float64
	MACD                             []indicators.MACDPoint
	RSI                              []float64
	ATR                              []float64
	ADX                              []float64
	StochK, StochD                   []float64
	VolumeRatio                      []float64
	MASet                            map[int][]indicators.Point
}

const (
	bollingerPeriod   = 20
	bollingerStdDev   = 2.0
	macdFast          = 12
	macdSlow          = 26
	macdSignal        = 9
	rsiPeriod         = 14
	atrPeriod         = 14
	adxPeriod         = 14
	stochKPeriod      = 14
	stochDPeriod      = 3
	volumeRatioPeriod = 20
)

// BuildInput computes the full indicator set over bars. Volume-derived
// series (VolumeRatio) are left nil when bars carry no volume.
func BuildInput(bars []bar.Bar) Input {
	n := len(bars)
	closes := make([]float64, n)
	opens := make([]float64, n)
	highs := make([]float64, n)
	lows := make([]float64, n)
	times := make([]int64, n)
	hasVolume := n > 0
	volumes := make([]float64, n)
	for i, b := range bars {
		closes[i] = b.Close
		opens[i] = b.Open
		highs[i] = b.High
		lows[i] = b.Low
		times[i] = b.Time
		if b.Volume == nil {
			hasVolume = false
			continue
		}
		volumes[i] = *b.Volume
	}

	in := Input{
		Bars:   bars,
		Closes: closes,
		Opens:  opens,
		Highs:  highs,
		Lows:   lows,
		RSI:    indicators.RSI(closes, rsiPeriod),
		ATR:    indicators.ATR(highs, lows, closes, atrPeriod),
		ADX:    indicators.ADX(highs, lows, closes, adxPeriod),
		MACD:   indicators.MACD(times, closes, macdFast, macdSlow, macdSignal),
		MASet:  indicators.MASet(times, closes),
	}
	in.BollUpper, in.BollMiddle, in.BollLower = indicators.Bollinger(closes, bollingerPeriod, bollingerStdDev)
	in.StochK, in.StochD = indicators.Stochastic(highs, lows, closes, stochKPeriod, stochDPeriod)
	if hasVolume {
		in.VolumeRatio = indicators.VolumeRatio(volumes, volumeRatioPeriod)
	}
	return in
}

func defined(v float64) bool {
	return !math.IsNaN(v)
}
