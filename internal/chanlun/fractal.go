package chanlun

import "github.com/chanwatch/core/internal/bar"

// DetectFractals scans the containment-reduced sequence for interior local
// extrema: processed[i] is a top when its high exceeds both neighbors'
// highs, a bottom when its low is below both neighbors' lows.
// Endpoints (i==0, i==len-1) can never be fractals since they lack one
// neighbor on at least one side. Top is checked before bottom, so on the
// (in practice vanishingly rare, post-reduction) bar that qualifies as both,
// it is recorded only as a top.
func DetectFractals(processed []bar.ProcessedBar) []Fractal {
	if len(processed) < 3 {
		return nil
	}

	fractals := make([]Fractal, 0)
	for i := 1; i < len(processed)-1; i++ {
		prev := processed[i-1]
		cur := processed[i]
		next := processed[i+1]

		switch {
		case cur.High > prev.High && cur.High > next.High:
			fractals = append(fractals, Fractal{
				Index: i,
				Time:  cur.Time,
				Price: cur.High,
				Kind:  Top,
			})
		case cur.Low < prev.Low && cur.Low < next.Low:
			fractals = append(fractals, Fractal{
				Index: i,
				Time:  cur.Time,
				Price: cur.Low,
				Kind:  Bottom,
			})
		}
	}
	return fractals
}
