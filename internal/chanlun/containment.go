package chanlun

import (
	"math"

	"github.com/chanwatch/core/internal/bar"
)

// Reduce performs containment reduction: traverses bars left to right,
// merging any bar whose [low, high] is contained by (or
// contains) the current compacted tail, and otherwise appending it as a new
// processed bar. Trend direction for a merge is derived from the tail versus
// the bar before it in the compacted list; a single-element list defaults to
// uptrend. The merge assigns close/time from the incoming raw bar
// unconditionally, regardless of trend — preserved from the source even
// though some canonical Chanlun write-ups differ here.
func Reduce(bars []bar.Bar) []bar.ProcessedBar {
	if len(bars) == 0 {
		return nil
	}

	out := make([]bar.ProcessedBar, 0, len(bars))
	out = append(out, bar.ProcessedBar{
		OrigIndex: 0,
		Time:      bars[0].Time,
		High:      bars[0].High,
		Low:       bars[0].Low,
		Close:     bars[0].Close,
	})

	for i := 1; i < len(bars); i++ {
		cur := bars[i]
		prev := &out[len(out)-1]

		if bar.Contains(prev.High, prev.Low, cur.High, cur.Low) {
			uptrend := true
			if len(out) >= 2 {
				prevPrev := out[len(out)-2]
				uptrend = prev.High > prevPrev.High
			}
			if uptrend {
				prev.High = math.Max(prev.High, cur.High)
				prev.Low = math.Max(prev.Low, cur.Low)
			} else {
				prev.High = math.Min(prev.High, cur.High)
				prev.Low = math.Min(prev.Low, cur.Low)
			}
			prev.Close = cur.Close
			prev.Time = cur.Time
			prev.OrigIndex = i
			continue
		}

		out = append(out, bar.ProcessedBar{
			OrigIndex: i,
			Time:      cur.Time,
			High:      cur.High,
			Low:       cur.Low,
			Close:     cur.Close,
		})
	}

	return out
}
