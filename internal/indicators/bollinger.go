package indicators

// Bollinger computes middle/upper/lower bands over a trailing window of
// period closes, using the *population* standard deviation (divide by
// period, not period-1). NaN-padded to align with the input index.
func Bollinger(closes []float64, period int, stdDevMult float64) (upper, middle, lower []float64) {
	n := len(closes)
	upper = make([]float64, n)
	middle = make([]float64, n)
	lower = make([]float64, n)
	for i := 0; i < n; i++ {
		upper[i], middle[i], lower[i] = undefined, undefined, undefined
	}
	if period <= 0 || n < period {
		return
	}

	for i := period - 1; i < n; i++ {
		window := closes[i-period+1 : i+1]
		mid := Mean(window)
		sd := StdDev(window)
		middle[i] = mid
		upper[i] = mid + stdDevMult*sd
		lower[i] = mid - stdDevMult*sd
	}
	return
}
