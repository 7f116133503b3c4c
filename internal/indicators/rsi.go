package indicators

// RSI computes Wilder's RSI, aligned to the input index (NaN before the
// first defined value at index period). Reuses the Diff/GainsLosses helpers
// from math.go for the gain/loss split.
func RSI(closes []float64, period int) []float64 {
	out := make([]float64, len(closes))
	for i := range out {
		out[i] = undefined
	}
	if period <= 0 || len(closes) < period+1 {
		return out
	}

	changes := Diff(closes)
	gains, losses := GainsLosses(changes)

	avgGain := Mean(gains[:period])
	avgLoss := Mean(losses[:period])
	out[period] = rsiFromAverages(avgGain, avgLoss)

	for i := period + 1; i < len(closes); i++ {
		idx := i - 1 // index into changes/gains/losses
		avgGain = (avgGain*float64(period-1) + gains[idx]) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + losses[idx]) / float64(period)
		out[i] = rsiFromAverages(avgGain, avgLoss)
	}
	return out
}

func rsiFromAverages(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
