package market

import "github.com/nivesh/planner-go/pkg/formulas"

// PriceBar is a single daily OHLCV bar for a symbol.
type PriceBar struct {
	ID     int64   `json:"id"`
	Symbol string  `json:"symbol"`
	Date   string  `json:"date"` // YYYY-MM-DD
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// IndicatorSnapshot bundles the latest technical indicator values for
// a symbol. Pointer fields are nil when the stored history is too
// short for the indicator's lookback.
type IndicatorSnapshot struct {
	Symbol      string                   `json:"symbol"`
	BarCount    int                      `json:"bar_count"`
	LastClose   float64                  `json:"last_close"`
	RSI         *float64                 `json:"rsi"`
	SMA20       *float64                 `json:"sma_20"`
	SMA50       *float64                 `json:"sma_50"`
	EMA20       *float64                 `json:"ema_20"`
	MACD        *formulas.MACDResult     `json:"macd"`
	Bollinger   *formulas.BollingerBands `json:"bollinger"`
	ATR         *float64                 `json:"atr"`
	Volatility  float64                  `json:"annualized_volatility"`
	VolumeRatio float64                  `json:"volume_ratio"`
}

// IndexQuote is a summary row for a tracked market index.
type IndexQuote struct {
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	Value         float64 `json:"value"`
	ChangePercent float64 `json:"change_percent"`
}
