package indicators

// VolumeRatio computes, for each bar with a full trailing window available,
// the ratio of that bar's volume to the mean volume of the preceding period
// bars (excluding the current one). NaN where undefined. Exercised by
// volume_spike.
func VolumeRatio(volumes []float64, period int) []float64 {
	out := make([]float64, len(volumes))
	for i := range out {
		out[i] = undefined
	}
	if period <= 0 || len(volumes) <= period {
		return out
	}

	for i := period; i < len(volumes); i++ {
		avg := Mean(volumes[i-period : i])
		if avg == 0 {
			continue
		}
		out[i] = volumes[i] / avg
	}
	return out
}
