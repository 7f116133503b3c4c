package indicators

// Stochastic computes the raw %K (price position within its trailing
// high/low range) and a %D signal line as an SMA of %K over dPeriod.
// Exercised by stochastic_reversal.
func Stochastic(highs, lows, closes []float64, kPeriod, dPeriod int) (k, d []float64) {
	n := len(closes)
	k = make([]float64, n)
	for i := range k {
		k[i] = undefined
	}
	if kPeriod <= 0 || n < kPeriod {
		d = make([]float64, n)
		for i := range d {
			d[i] = undefined
		}
		return
	}

	for i := kPeriod - 1; i < n; i++ {
		hi := Max(highs[i-kPeriod+1 : i+1])
		lo := Min(lows[i-kPeriod+1 : i+1])
		if hi == lo {
			k[i] = 50
			continue
		}
		k[i] = 100 * (closes[i] - lo) / (hi - lo)
	}

	// %D is an SMA of %K; compute it over the defined suffix of %K only, then
	// pad back, since SMASeries can't skip a leading run of NaNs mid-window.
	d = make([]float64, n)
	for i := range d {
		d[i] = undefined
	}
	start := kPeriod - 1
	if n-start >= dPeriod {
		dSub := SMASeries(k[start:], dPeriod)
		for i, v := range dSub {
			d[start+i] = v
		}
	}
	return
}
