package indicators

// MACD computes DIF/DEA/histogram. DIF is the difference of the fast and
// slow EMAs wherever both are defined; DEA is the signal-period
// EMA of the *compacted* valid-DIF series (not the full, NaN-padded one —
// seeding the signal EMA against a run of leading NaNs would shift its
// warm-up by the gap between the fast and slow EMA start points). Histogram
// is (DIF-DEA)*2. Only positions where all three are defined are returned.
func MACD(times []int64, closes []float64, fast, slow, signal int) []MACDPoint {
	if len(closes) < slow+signal {
		return nil
	}

	emaFast := EMASeries(closes, fast)
	emaSlow := EMASeries(closes, slow)

	difValid := make([]float64, 0, len(closes))
	origIndex := make([]int, 0, len(closes))
	for i := range closes {
		if isDefined(emaFast[i]) && isDefined(emaSlow[i]) {
			difValid = append(difValid, emaFast[i]-emaSlow[i])
			origIndex = append(origIndex, i)
		}
	}

	deaValid := EMASeries(difValid, signal)

	out := make([]MACDPoint, 0, len(difValid))
	for j, dea := range deaValid {
		if !isDefined(dea) {
			continue
		}
		dif := difValid[j]
		out = append(out, MACDPoint{
			Time:      times[origIndex[j]],
			DIF:       dif,
			DEA:       dea,
			Histogram: (dif - dea) * 2,
		})
	}
	return out
}
