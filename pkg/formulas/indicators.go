package formulas

import (
	"github.com/markcheno/go-talib"
)

// BollingerBands holds the three Bollinger band values for the latest bar.
type BollingerBands struct {
	Upper  float64 `json:"upper"`
	Middle float64 `json:"middle"`
	Lower  float64 `json:"lower"`
}

// MACDResult holds the latest MACD line, signal line and histogram values.
type MACDResult struct {
	MACD      float64 `json:"macd"`
	Signal    float64 `json:"signal"`
	Histogram float64 `json:"histogram"`
}

// CalculateRSI calculates the Relative Strength Index over the given period.
//
// RSI Formula:
//
//	RSI = 100 - (100 / (1 + RS))
//	where RS = Average Gain / Average Loss over N periods
//
// Returns the latest RSI value (0-100) or nil if there is not enough data.
func CalculateRSI(closes []float64, length int) *float64 {
	if len(closes) < length+1 {
		return nil
	}

	rsi := talib.Rsi(closes, length)
	return lastValid(rsi)
}

// CalculateSMA calculates the Simple Moving Average over the given period.
// Returns the latest value or nil if there is not enough data.
func CalculateSMA(closes []float64, length int) *float64 {
	if len(closes) < length {
		return nil
	}

	sma := talib.Sma(closes, length)
	return lastValid(sma)
}

// CalculateEMA calculates the Exponential Moving Average over the given period.
// Returns the latest value or nil if there is not enough data.
func CalculateEMA(closes []float64, length int) *float64 {
	if len(closes) < length {
		return nil
	}

	ema := talib.Ema(closes, length)
	return lastValid(ema)
}

// CalculateMACD calculates MACD(fast, slow, signal).
// Returns the latest MACD, signal and histogram values, or nil when the
// series is shorter than the slow period plus the signal period.
func CalculateMACD(closes []float64, fast, slow, signal int) *MACDResult {
	if len(closes) < slow+signal {
		return nil
	}

	macd, sig, hist := talib.Macd(closes, fast, slow, signal)
	m, s, h := lastValid(macd), lastValid(sig), lastValid(hist)
	if m == nil || s == nil || h == nil {
		return nil
	}

	return &MACDResult{MACD: *m, Signal: *s, Histogram: *h}
}

// CalculateBollinger calculates Bollinger Bands over the given period
// with the given standard-deviation multiplier.
func CalculateBollinger(closes []float64, length int, stdDevs float64) *BollingerBands {
	if len(closes) < length {
		return nil
	}

	upper, middle, lower := talib.BBands(closes, length, stdDevs, stdDevs, talib.SMA)
	u, m, l := lastValid(upper), lastValid(middle), lastValid(lower)
	if u == nil || m == nil || l == nil {
		return nil
	}

	return &BollingerBands{Upper: *u, Middle: *m, Lower: *l}
}

// CalculateATR calculates the Average True Range over the given period.
// Requires aligned high/low/close series.
func CalculateATR(highs, lows, closes []float64, length int) *float64 {
	if len(closes) < length+1 || len(highs) != len(closes) || len(lows) != len(closes) {
		return nil
	}

	atr := talib.Atr(highs, lows, closes, length)
	return lastValid(atr)
}

// lastValid returns a pointer to the last non-NaN value of a series, or nil.
func lastValid(series []float64) *float64 {
	for i := len(series) - 1; i >= 0; i-- {
		if !isNaN(series[i]) {
			v := series[i]
			return &v
		}
	}
	return nil
}

// isNaN checks if a float64 is NaN
func isNaN(f float64) bool {
	return f != f
}
