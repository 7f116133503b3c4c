package indicators

// EMASeries computes the Exponential Moving Average over the full length of
// values, seeding index period-1 with the SMA of the first period values and
// smoothing thereafter with k = 2/(period+1). Positions before period-1 are
// NaN, preserving index alignment with the input instead of slicing the
// warm-up off.
func EMASeries(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	for i := range out {
		out[i] = undefined
	}
	if period <= 0 || len(values) < period {
		return out
	}

	k := 2.0 / float64(period+1)
	out[period-1] = Mean(values[:period])
	for i := period; i < len(values); i++ {
		out[i] = values[i]*k + out[i-1]*(1-k)
	}
	return out
}

// SMASeries computes a trailing rolling mean, NaN before the window fills.
func SMASeries(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	for i := range out {
		out[i] = undefined
	}
	if period <= 0 || len(values) < period {
		return out
	}

	sum := Sum(values[:period])
	out[period-1] = sum / float64(period)
	for i := period; i < len(values); i++ {
		sum += values[i] - values[i-period]
		out[i] = sum / float64(period)
	}
	return out
}

// MAPeriods is the fixed set of moving-average windows the MA set exposes.
var MAPeriods = []int{5, 10, 20, 30, 60, 120, 250}

// MASet computes SMA(close) for every period in MAPeriods, returning only the
// defined samples as a lazy (time, value) sequence per period.
func MASet(times []int64, closes []float64) map[int][]Point {
	result := make(map[int][]Point, len(MAPeriods))
	for _, period := range MAPeriods {
		sma := SMASeries(closes, period)
		points := make([]Point, 0, len(sma))
		for i, v := range sma {
			if isDefined(v) {
				points = append(points, Point{Time: times[i], Value: v})
			}
		}
		result[period] = points
	}
	return result
}
