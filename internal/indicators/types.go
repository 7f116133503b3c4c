package indicators

import "math"

// Point is a single (time, value) sample of a lazy indicator sequence.
type Point struct {
	Time  int64
	Value float64
}

// MACDPoint is one fully-defined MACD sample.
type MACDPoint struct {
	Time      int64
	DIF       float64
	DEA       float64
	Histogram float64
}

// BollingerPoint is one fully-defined Bollinger Bands sample.
type BollingerPoint struct {
	Time   int64
	Upper  float64
	Middle float64
	Lower  float64
}

// undefined is the NaN sentinel used to pad series before a kernel has
// enough data to produce a value.
var undefined = math.NaN()

func isDefined(v float64) bool {
	return !math.IsNaN(v)
}
