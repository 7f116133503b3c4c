package chanlun

import (
	"github.com/chanwatch/core/internal/bar"
	"github.com/chanwatch/core/internal/indicators"
	"github.com/chanwatch/core/internal/market"
)

// FormBis filters fractals to a strictly alternating top/bottom sequence and
// emits a bi for each adjacent retained pair that clears the minimum k-bar
// span and minimum ATR-scaled move. atr is the full ATR series aligned to
// original bar index; processed maps a fractal's sequence index back to the
// original bar it was detected at.
func FormBis(fractals []Fractal, processed []bar.ProcessedBar, atr []float64, params market.ChanlunParams) []Bi {
	retained := alternate(fractals)
	if len(retained) < 2 {
		return nil
	}

	bis := make([]Bi, 0, len(retained)-1)
	for i := 0; i+1 < len(retained); i++ {
		start := retained[i]
		end := retained[i+1]

		kbarCount := end.Index - start.Index
		if kbarCount < params.MinBiKbars {
			continue
		}

		fromOrig := processed[start.Index].OrigIndex
		toOrig := processed[end.Index].OrigIndex
		avgATR := indicators.AvgATR(atr, fromOrig, toOrig)

		move := end.Price - start.Price
		if move < 0 {
			move = -move
		}
		if avgATR > 0 && move < params.MinBiMoveATR*avgATR {
			continue
		}

		direction := Down
		if start.Kind == Bottom {
			direction = Up
		}

		bis = append(bis, Bi{
			ID:        len(bis),
			Direction: direction,
			Start:     start,
			End:       end,
			KbarCount: kbarCount,
		})
	}
	return bis
}

// alternate filters fractals to a strictly alternating top/bottom sequence,
// replacing a same-kind run with its single most extreme member (higher high
// for tops, lower low for bottoms).
func alternate(fractals []Fractal) []Fractal {
	if len(fractals) == 0 {
		return nil
	}

	out := make([]Fractal, 0, len(fractals))
	out = append(out, fractals[0])

	for _, f := range fractals[1:] {
		last := &out[len(out)-1]
		if f.Kind != last.Kind {
			out = append(out, f)
			continue
		}
		if f.Kind == Top && f.Price > last.Price {
			*last = f
		} else if f.Kind == Bottom && f.Price < last.Price {
			*last = f
		}
	}
	return out
}
