package signal

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/chanwatch/core/internal/chanlun"
	"github.com/chanwatch/core/internal/market"
)

// newSignal stamps the common fields shared by every detector: a fresh id
// and the wall-clock emission time in milliseconds.
func newSignal(symbol string, mkt market.Market, tf market.Timeframe, kind Kind, strength, price float64, description string, levels *KeyLevels) *Signal {
	return &Signal{
		ID:          uuid.New().String(),
		Symbol:      symbol,
		Market:      mkt,
		Timeframe:   tf,
		Kind:        kind,
		Strength:    clampStrength(strength),
		Price:       price,
		Time:        time.Now().UnixMilli(),
		Description: description,
		KeyLevels:   levels,
	}
}

// ThirdBuySignals converts chanlun third-buy detections into Signals:
// confirmed gets strength 85, candidate gets strength 55.
func ThirdBuySignals(thirdBuys []chanlun.ThirdBuy, zhongshus []chanlun.Zhongshu) []Signal {
	zhongshuByID := make(map[int]chanlun.Zhongshu, len(zhongshus))
	for _, z := range zhongshus {
		zhongshuByID[z.ID] = z
	}

	out := make([]Signal, 0, len(thirdBuys))
	for _, tb := range thirdBuys {
		kind := KindThirdBuyCandidate
		strength := 55.0
		price := tb.BreakoutPrice
		description := fmt.Sprintf("third-buy candidate above zhongshu %d, breakout %.4f", tb.ZhongshuID, tb.BreakoutPrice)
		if tb.Status == chanlun.Confirmed {
			kind = KindThirdBuyConfirmed
			strength = 85.0
			if tb.ConfirmPrice != nil {
				price = *tb.ConfirmPrice
			}
			description = fmt.Sprintf("third-buy confirmed above zhongshu %d, confirm %.4f", tb.ZhongshuID, price)
		}

		levels := &KeyLevels{PullbackLow: tb.PullbackLow, ConfirmPrice: tb.ConfirmPrice}
		if z, ok := zhongshuByID[tb.ZhongshuID]; ok {
			high, low := z.High, z.Low
			levels.ZhongshuHigh = &high
			levels.ZhongshuLow = &low
		}

		out = append(out, Signal{
			ID:          uuid.New().String(),
			Symbol:      tb.Symbol,
			Market:      tb.Market,
			Timeframe:   tb.Timeframe,
			Kind:        kind,
			Strength:    strength,
			Price:       price,
			Time:        time.Now().UnixMilli(),
			Description: description,
			KeyLevels:   levels,
		})
	}
	return out
}
