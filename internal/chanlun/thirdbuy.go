package chanlun

import (
	"github.com/chanwatch/core/internal/bar"
	"github.com/chanwatch/core/internal/indicators"
	"github.com/chanwatch/core/internal/market"
)

// DetectThirdBuys runs the breakout/pullback/confirmation state machine for
// each zhongshu against the bis that follow its last contributing bi.
// processed maps a fractal's sequence index to the original bar index, used
// to average ATR over a bi's span.
func DetectThirdBuys(zhongshus []Zhongshu, bis []Bi, processed []bar.ProcessedBar, atr []float64, symbol string, mkt market.Market, tf market.Timeframe, params market.ChanlunParams) []ThirdBuy {
	results := make([]ThirdBuy, 0)
	nextID := 0
	newID := func() int {
		id := nextID
		nextID++
		return id
	}

	for _, z := range zhongshus {
		lastBiID := z.BiIDs[len(z.BiIDs)-1]
		tail := bisAfter(bis, lastBiID)

		bOutIdx := -1
		for i, b := range tail {
			if b.Direction != Up {
				continue
			}
			if b.End.Price <= z.High {
				continue
			}
			avgATR := biAvgATR(b, processed, atr)
			if b.End.Price-z.High >= params.BreakoutATR*avgATR {
				bOutIdx = i
				break
			}
		}
		if bOutIdx == -1 {
			continue
		}
		bOut := tail[bOutIdx]

		if bOutIdx+1 >= len(tail) {
			results = append(results, ThirdBuy{
				ID:            newID(),
				ZhongshuID:    z.ID,
				Status:        Candidate,
				BreakoutTime:  bOut.End.Time,
				BreakoutPrice: bOut.End.Price,
				Symbol:        symbol,
				Market:        mkt,
				Timeframe:     tf,
			})
			continue
		}

		bBack := tail[bOutIdx+1]
		if bBack.Direction != Down {
			results = append(results, ThirdBuy{
				ID:            newID(),
				ZhongshuID:    z.ID,
				Status:        Candidate,
				BreakoutTime:  bOut.End.Time,
				BreakoutPrice: bOut.End.Price,
				Symbol:        symbol,
				Market:        mkt,
				Timeframe:     tf,
			})
			continue
		}

		backATR := biAvgATR(bBack, processed, atr)
		tolerance := params.PullbackToleranceATR * backATR
		pullbackLow := bBack.End.Price
		if pullbackLow < z.High-tolerance {
			continue
		}

		pullbackTime := bBack.End.Time
		candidate := ThirdBuy{
			ID:            newID(),
			ZhongshuID:    z.ID,
			Status:        Candidate,
			BreakoutTime:  bOut.End.Time,
			BreakoutPrice: bOut.End.Price,
			PullbackTime:  &pullbackTime,
			PullbackLow:   &pullbackLow,
			Symbol:        symbol,
			Market:        mkt,
			Timeframe:     tf,
		}

		if bOutIdx+2 >= len(tail) {
			results = append(results, candidate)
			continue
		}
		bConf := tail[bOutIdx+2]
		if bConf.Direction != Up {
			results = append(results, candidate)
			continue
		}

		confirmed := false
		switch params.ConfirmRule {
		case market.ConfirmNewHigh:
			confirmed = bConf.End.Price > bOut.End.Price
		case market.ConfirmBreakPullbackHigh:
			confirmed = bConf.End.Price > bBack.Start.Price
		}

		if !confirmed {
			results = append(results, candidate)
			continue
		}

		confirmTime := bConf.End.Time
		confirmPrice := bConf.End.Price
		results = append(results, candidate, ThirdBuy{
			ID:            newID(),
			ZhongshuID:    z.ID,
			Status:        Confirmed,
			BreakoutTime:  bOut.End.Time,
			BreakoutPrice: bOut.End.Price,
			PullbackTime:  &pullbackTime,
			PullbackLow:   &pullbackLow,
			ConfirmTime:   &confirmTime,
			ConfirmPrice:  &confirmPrice,
			Symbol:        symbol,
			Market:        mkt,
			Timeframe:     tf,
		})
	}

	return results
}

func bisAfter(bis []Bi, lastBiID int) []Bi {
	out := make([]Bi, 0)
	for _, b := range bis {
		if b.ID > lastBiID {
			out = append(out, b)
		}
	}
	return out
}

func biAvgATR(b Bi, processed []bar.ProcessedBar, atr []float64) float64 {
	from, to := processed[b.Start.Index].OrigIndex, processed[b.End.Index].OrigIndex
	if to < from {
		from, to = to, from
	}
	return indicators.AvgATR(atr, from, to)
}
