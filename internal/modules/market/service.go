package market

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/nivesh/planner-go/pkg/formulas"
)

// ErrNoData is returned when a symbol has no stored price history.
var ErrNoData = errors.New("no price data for symbol")

// Indicator lookbacks.
const (
	rsiLength       = 14
	smaShortLength  = 20
	smaLongLength   = 50
	emaLength       = 20
	macdFast        = 12
	macdSlow        = 26
	macdSignal      = 9
	bollingerLength = 20
	bollingerStdDev = 2.0
	atrLength       = 14

	// historyLimit bounds how many bars feed the snapshot. 252
	// trading days covers the longest lookback with margin.
	historyLimit = 252

	volumeRatioLookback = 20
)

// trackedIndices are the benchmark indices exposed on the indices
// endpoint, resolved against stored bars.
var trackedIndices = []struct {
	Name   string
	Symbol string
}{
	{"NIFTY 50", "NIFTY50"},
	{"SENSEX", "SENSEX"},
	{"NIFTY Bank", "BANKNIFTY"},
}

// Service computes indicator snapshots and index quotes from stored
// price history.
type Service struct {
	repo *Repository
	log  zerolog.Logger
}

// NewService creates a new market data service
func NewService(repo *Repository, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With().Str("service", "market").Logger(),
	}
}

// Ingest stores a batch of price bars.
func (s *Service) Ingest(bars []PriceBar) error {
	if err := s.repo.UpsertBars(bars); err != nil {
		return err
	}
	s.log.Info().Int("bars", len(bars)).Msg("Price bars ingested")
	return nil
}

// Snapshot computes the indicator snapshot for a symbol from its
// stored history. Indicators whose lookback exceeds the available
// history come back nil rather than failing the whole snapshot.
func (s *Service) Snapshot(symbol string) (IndicatorSnapshot, error) {
	bars, err := s.repo.GetBars(symbol, historyLimit)
	if err != nil {
		return IndicatorSnapshot{}, err
	}
	if len(bars) == 0 {
		return IndicatorSnapshot{}, ErrNoData
	}

	closes := make([]float64, len(bars))
	highs := make([]float64, len(bars))
	lows := make([]float64, len(bars))
	volumes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
		highs[i] = b.High
		lows[i] = b.Low
		volumes[i] = b.Volume
	}

	returns := formulas.CalculateReturns(closes)

	return IndicatorSnapshot{
		Symbol:      symbol,
		BarCount:    len(bars),
		LastClose:   closes[len(closes)-1],
		RSI:         formulas.CalculateRSI(closes, rsiLength),
		SMA20:       formulas.CalculateSMA(closes, smaShortLength),
		SMA50:       formulas.CalculateSMA(closes, smaLongLength),
		EMA20:       formulas.CalculateEMA(closes, emaLength),
		MACD:        formulas.CalculateMACD(closes, macdFast, macdSlow, macdSignal),
		Bollinger:   formulas.CalculateBollinger(closes, bollingerLength, bollingerStdDev),
		ATR:         formulas.CalculateATR(highs, lows, closes, atrLength),
		Volatility:  formulas.AnnualizedVolatility(returns),
		VolumeRatio: VolumeRatio(volumes, volumeRatioLookback),
	}, nil
}

// Indices returns quotes for the tracked benchmark indices. Indices
// without stored history are skipped.
func (s *Service) Indices() ([]IndexQuote, error) {
	quotes := []IndexQuote{}
	for _, idx := range trackedIndices {
		bars, err := s.repo.GetBars(idx.Symbol, 2)
		if err != nil {
			return nil, err
		}
		if len(bars) == 0 {
			continue
		}

		last := bars[len(bars)-1]
		quote := IndexQuote{
			Name:   idx.Name,
			Symbol: idx.Symbol,
			Value:  last.Close,
		}
		if len(bars) == 2 && bars[0].Close != 0 {
			quote.ChangePercent = formulas.Round2((last.Close - bars[0].Close) / bars[0].Close * 100)
		}
		quotes = append(quotes, quote)
	}
	return quotes, nil
}

// VolumeRatio compares the latest volume to the trailing average over
// the lookback window, excluding the latest bar. A flat or empty
// series ratios to 1.0.
func VolumeRatio(volumes []float64, lookback int) float64 {
	if len(volumes) < 2 {
		return 1.0
	}

	latest := volumes[len(volumes)-1]
	window := volumes[:len(volumes)-1]
	if len(window) > lookback {
		window = window[len(window)-lookback:]
	}

	avg := formulas.Mean(window)
	if avg == 0 {
		return 1.0
	}
	return latest / avg
}
