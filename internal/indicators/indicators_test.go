package indicators

import (
	"math"
	"testing"
)

func TestMeanSumStdDev(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if got := Sum(values); got != 40 {
		t.Errorf("Sum() = %v, want 40", got)
	}
	if got := Mean(values); got != 5 {
		t.Errorf("Mean() = %v, want 5", got)
	}
	if got := StdDev(values); math.Abs(got-2) > 1e-9 {
		t.Errorf("StdDev() = %v, want 2", got)
	}
}

func TestMaxMinAbs(t *testing.T) {
	if got := Max([]float64{1, 5, 3}); got != 5 {
		t.Errorf("Max() = %v, want 5", got)
	}
	if got := Min([]float64{1, 5, 3}); got != 1 {
		t.Errorf("Min() = %v, want 1", got)
	}
	if got := Abs(-3.5); got != 3.5 {
		t.Errorf("Abs(-3.5) = %v, want 3.5", got)
	}
}

func TestTrueRange(t *testing.T) {
	// gap-up case: prevClose far below the current range
	if got := TrueRange(10, 9, 5); got != 5 {
		t.Errorf("TrueRange() = %v, want 5 (|high-prevClose|)", got)
	}
	// normal case: high-low is the largest component
	if got := TrueRange(10, 9, 9.5); got != 1 {
		t.Errorf("TrueRange() = %v, want 1 (high-low)", got)
	}
}

func TestGainsLossesSplit(t *testing.T) {
	changes := []float64{1, -2, 0, 3}
	gains, losses := GainsLosses(changes)
	wantGains := []float64{1, 0, 0, 3}
	wantLosses := []float64{0, 2, 0, 0}
	for i := range changes {
		if gains[i] != wantGains[i] || losses[i] != wantLosses[i] {
			t.Fatalf("GainsLosses()[%d] = (%v, %v), want (%v, %v)", i, gains[i], losses[i], wantGains[i], wantLosses[i])
		}
	}
}

func TestEMASeriesPadsWarmupWithNaN(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	out := EMASeries(values, 3)
	for i := 0; i < 2; i++ {
		if !math.IsNaN(out[i]) {
			t.Errorf("EMASeries()[%d] = %v, want NaN before warm-up", i, out[i])
		}
	}
	if math.IsNaN(out[2]) {
		t.Error("EMASeries()[2] should be the seed SMA, not NaN")
	}
}

func TestEMASeriesShortInputAllNaN(t *testing.T) {
	out := EMASeries([]float64{1, 2}, 5)
	for i, v := range out {
		if !math.IsNaN(v) {
			t.Errorf("EMASeries()[%d] = %v, want NaN for input shorter than period", i, v)
		}
	}
}

func TestSMASeriesRollingMean(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6}
	out := SMASeries(values, 3)
	if math.Abs(out[2]-2) > 1e-9 {
		t.Errorf("SMASeries()[2] = %v, want 2", out[2])
	}
	if math.Abs(out[5]-5) > 1e-9 {
		t.Errorf("SMASeries()[5] = %v, want 5", out[5])
	}
}

func TestMASetReturnsOnlyDefinedSamples(t *testing.T) {
	times := make([]int64, 10)
	closes := make([]float64, 10)
	for i := range times {
		times[i] = int64(i)
		closes[i] = float64(i + 1)
	}
	set := MASet(times, closes)
	points, ok := set[5]
	if !ok {
		t.Fatal("expected a period-5 entry")
	}
	if len(points) != 6 { // indices 4..9 defined
		t.Fatalf("len(points) = %d, want 6", len(points))
	}
	if points[0].Time != 4 {
		t.Errorf("points[0].Time = %d, want 4 (first defined index)", points[0].Time)
	}
}

func TestMACDRequiresSlowPlusSignalBars(t *testing.T) {
	times := []int64{1, 2, 3}
	closes := []float64{1, 2, 3}
	if got := MACD(times, closes, 12, 26, 9); got != nil {
		t.Errorf("MACD() with too few bars = %v, want nil", got)
	}
}

func TestMACDProducesDefinedPointsOnLongSeries(t *testing.T) {
	n := 60
	times := make([]int64, n)
	closes := make([]float64, n)
	for i := 0; i < n; i++ {
		times[i] = int64(i)
		closes[i] = 100 + float64(i%5)
	}
	got := MACD(times, closes, 12, 26, 9)
	if len(got) == 0 {
		t.Fatal("expected at least one MACD point on a 60-bar series")
	}
	for _, p := range got {
		if math.IsNaN(p.DIF) || math.IsNaN(p.DEA) || math.IsNaN(p.Histogram) {
			t.Fatalf("MACDPoint %+v has an undefined field", p)
		}
	}
}

func TestRSIBoundedAndPaddedBeforeWindow(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	out := RSI(closes, 14)
	for i := 0; i < 14; i++ {
		if !math.IsNaN(out[i]) {
			t.Errorf("RSI()[%d] = %v, want NaN before the window fills", i, out[i])
		}
	}
	if out[14] <= 50 {
		t.Errorf("RSI()[14] = %v, want > 50 for a strictly rising series", out[14])
	}
	for _, v := range out[14:] {
		if v < 0 || v > 100 {
			t.Fatalf("RSI value %v out of [0,100]", v)
		}
	}
}

func TestRSIAllGainsSaturatesAt100(t *testing.T) {
	closes := make([]float64, 16)
	for i := range closes {
		closes[i] = float64(i)
	}
	out := RSI(closes, 14)
	if out[14] != 100 {
		t.Errorf("RSI()[14] = %v, want 100 for an all-gains run (zero average loss)", out[14])
	}
}

func TestBollingerBandOrdering(t *testing.T) {
	closes := make([]float64, 25)
	for i := range closes {
		closes[i] = 100 + float64(i%3)
	}
	upper, middle, lower := Bollinger(closes, 20, 2)
	for i := 19; i < len(closes); i++ {
		if !(lower[i] <= middle[i] && middle[i] <= upper[i]) {
			t.Fatalf("bands out of order at %d: lower=%v middle=%v upper=%v", i, lower[i], middle[i], upper[i])
		}
	}
	for i := 0; i < 19; i++ {
		if !math.IsNaN(middle[i]) {
			t.Errorf("middle[%d] = %v, want NaN before the window fills", i, middle[i])
		}
	}
}

func TestATRPaddingAndPositivity(t *testing.T) {
	n := 20
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	for i := 0; i < n; i++ {
		highs[i] = 105 + float64(i)
		lows[i] = 95 + float64(i)
		closes[i] = 100 + float64(i)
	}
	out := ATR(highs, lows, closes, 14)
	for i := 0; i <= 13; i++ {
		if !math.IsNaN(out[i]) {
			t.Errorf("ATR()[%d] = %v, want NaN before index period", i, out[i])
		}
	}
	if out[14] <= 0 {
		t.Errorf("ATR()[14] = %v, want > 0", out[14])
	}
}

func TestAvgATRSkipsUndefinedAndClampsRange(t *testing.T) {
	atr := []float64{undefined, undefined, 2, 4, 6}
	if got := AvgATR(atr, 0, 4); got != 4 {
		t.Errorf("AvgATR() = %v, want 4 (mean of 2,4,6)", got)
	}
	if got := AvgATR(atr, 10, 20); got != 0 {
		t.Errorf("AvgATR() out-of-range = %v, want 0", got)
	}
}
