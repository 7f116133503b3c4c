// Package chanlun implements the five-stage structural pipeline: containment
// reduction, fractal detection, bi formation, zhongshu detection, and
// third-buy detection. Each stage consumes the previous stage's output and
// tolerates short input by returning an empty result.
package chanlun

import (
	"encoding/json"
	"math"

	"github.com/chanwatch/core/internal/bar"
	"github.com/chanwatch/core/internal/market"
)

// FractalKind distinguishes a local high from a local low.
type FractalKind int

const (
	Top FractalKind = iota
	Bottom
)

func (k FractalKind) String() string {
	if k == Top {
		return "top"
	}
	return "bottom"
}

// MarshalJSON renders a FractalKind as its string form rather than the
// underlying int.
func (k FractalKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Fractal is a local extremum within the containment-reduced sequence.
type Fractal struct {
	Index int         `json:"index"` // position within the processed (containment-reduced) sequence
	Time  int64       `json:"time"`
	Price float64     `json:"price"`
	Kind  FractalKind `json:"kind"`
}

// Direction is the bi's orientation.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// MarshalJSON renders a Direction as its string form rather than the
// underlying int.
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Bi is a directed segment joining two alternating fractals.
type Bi struct {
	ID        int       `json:"id"`
	Direction Direction `json:"direction"`
	Start     Fractal   `json:"start"`
	End       Fractal   `json:"end"`
	KbarCount int       `json:"kbar_count"`
}

// RangeHighLow returns the [low, high] span of the bi's two endpoint prices.
func (b Bi) RangeHighLow() (high, low float64) {
	return math.Max(b.Start.Price, b.End.Price), math.Min(b.Start.Price, b.End.Price)
}

// Zhongshu is the three-bi overlap region, extensible by later intersecting
// bis.
type Zhongshu struct {
	ID        int     `json:"id"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	StartTime int64   `json:"start_time"`
	EndTime   int64   `json:"end_time"`
	BiIDs     []int   `json:"bi_ids"`
	Active    bool    `json:"active"`
}

// ThirdBuyStatus is the lifecycle stage of a ThirdBuy.
type ThirdBuyStatus int

const (
	Candidate ThirdBuyStatus = iota
	Confirmed
)

func (s ThirdBuyStatus) String() string {
	if s == Confirmed {
		return "confirmed"
	}
	return "candidate"
}

// MarshalJSON renders a ThirdBuyStatus as its string form rather than the
// underlying int.
func (s ThirdBuyStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// ThirdBuy is a post-breakout-pullback-confirmation pattern anchored to a
// zhongshu.
type ThirdBuy struct {
	ID            int               `json:"id"`
	ZhongshuID    int               `json:"zhongshu_id"`
	Status        ThirdBuyStatus    `json:"status"`
	BreakoutTime  int64             `json:"breakout_time"`
	BreakoutPrice float64           `json:"breakout_price"`
	PullbackTime  *int64            `json:"pullback_time,omitempty"`
	PullbackLow   *float64          `json:"pullback_low,omitempty"`
	ConfirmTime   *int64            `json:"confirm_time,omitempty"`
	ConfirmPrice  *float64          `json:"confirm_price,omitempty"`
	Symbol        string           `json:"symbol"`
	Market        market.Market    `json:"market"`
	Timeframe     market.Timeframe `json:"timeframe"`
}

// Result is the full structural output of one pipeline run.
type Result struct {
	Processed []bar.ProcessedBar `json:"processed"`
	Fractals  []Fractal          `json:"fractals"`
	Bis       []Bi               `json:"bis"`
	Zhongshus []Zhongshu         `json:"zhongshus"`
	ThirdBuys []ThirdBuy         `json:"third_buys"`
}

func rangesIntersect(aLow, aHigh, bLow, bHigh float64) bool {
	return aLow <= bHigh && bLow <= aHigh
}
