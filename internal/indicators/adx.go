package indicators

// ADX computes the Average Directional Index with Wilder smoothing, aligned
// to bar index (NaN before the series has two full warm-up periods). One of
// the extended kernels feeding adx_trend_strength in the signal package.
func ADX(highs, lows, closes []float64, period int) []float64 {
	out := make([]float64, len(highs))
	for i := range out {
		out[i] = undefined
	}
	if period <= 0 || len(highs) < 2*period+1 {
		return out
	}

	n := len(highs)
	plusDM := make([]float64, n-1)
	minusDM := make([]float64, n-1)
	tr := make([]float64, n-1)
	for i := 1; i < n; i++ {
		upMove := highs[i] - highs[i-1]
		downMove := lows[i-1] - lows[i]
		if upMove > downMove && upMove > 0 {
			plusDM[i-1] = upMove
		}
		if downMove > upMove && downMove > 0 {
			minusDM[i-1] = downMove
		}
		tr[i-1] = TrueRange(highs[i], lows[i], closes[i-1])
	}

	smoothedPlusDM := wilderSmooth(plusDM, period)
	smoothedMinusDM := wilderSmooth(minusDM, period)
	smoothedTR := wilderSmooth(tr, period)

	dx := make([]float64, len(smoothedTR))
	for i := range dx {
		if !isDefined(smoothedTR[i]) || smoothedTR[i] == 0 {
			dx[i] = undefined
			continue
		}
		plusDI := 100 * smoothedPlusDM[i] / smoothedTR[i]
		minusDI := 100 * smoothedMinusDM[i] / smoothedTR[i]
		sum := plusDI + minusDI
		if sum == 0 {
			dx[i] = 0
			continue
		}
		dx[i] = 100 * Abs(plusDI-minusDI) / sum
	}

	dxValid := make([]float64, 0, len(dx))
	origIndex := make([]int, 0, len(dx))
	for i, v := range dx {
		if isDefined(v) {
			dxValid = append(dxValid, v)
			origIndex = append(origIndex, i+1) // +1: dx index i corresponds to bar i+1
		}
	}
	if len(dxValid) < period {
		return out
	}

	adxValid := Mean(dxValid[:period])
	out[origIndex[period-1]] = adxValid
	for i := period; i < len(dxValid); i++ {
		adxValid = (adxValid*float64(period-1) + dxValid[i]) / float64(period)
		out[origIndex[i]] = adxValid
	}
	return out
}

// wilderSmooth applies the Wilder smoothing recurrence to values, indexed
// the same way ATR's TR smoothing is: the first output (at index period-1)
// is the mean of the first period inputs.
func wilderSmooth(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	for i := range out {
		out[i] = undefined
	}
	if len(values) < period {
		return out
	}
	out[period-1] = Mean(values[:period])
	for i := period; i < len(values); i++ {
		out[i] = (out[i-1]*float64(period-1) + values[i]) / float64(period)
	}
	return out
}
