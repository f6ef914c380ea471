package market

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
)

// Repository handles price bar persistence
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new market data repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "market").Logger(),
	}
}

// UpsertBars inserts bars, replacing any existing bar for the same
// symbol and date.
func (r *Repository) UpsertBars(bars []PriceBar) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO price_bars (symbol, date, open, high, low, close, volume)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(symbol, date) DO UPDATE SET
		     open = excluded.open, high = excluded.high, low = excluded.low,
		     close = excluded.close, volume = excluded.volume`,
	)
	if err != nil {
		return fmt.Errorf("failed to prepare bar insert: %w", err)
	}
	defer stmt.Close()

	for _, bar := range bars {
		if _, err := stmt.Exec(bar.Symbol, bar.Date, bar.Open, bar.High, bar.Low, bar.Close, bar.Volume); err != nil {
			return fmt.Errorf("failed to insert bar %s/%s: %w", bar.Symbol, bar.Date, err)
		}
	}

	return tx.Commit()
}

// GetBars returns up to limit bars for a symbol in ascending date
// order, oldest first.
func (r *Repository) GetBars(symbol string, limit int) ([]PriceBar, error) {
	rows, err := r.db.Query(
		`SELECT id, symbol, date, open, high, low, close, volume
		 FROM (SELECT * FROM price_bars WHERE symbol = ? ORDER BY date DESC LIMIT ?)
		 ORDER BY date ASC`,
		symbol, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query price bars: %w", err)
	}
	defer rows.Close()

	var bars []PriceBar
	for rows.Next() {
		var b PriceBar
		if err := rows.Scan(&b.ID, &b.Symbol, &b.Date, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume); err != nil {
			return nil, fmt.Errorf("failed to scan price bar: %w", err)
		}
		bars = append(bars, b)
	}
	return bars, rows.Err()
}

// ListSymbols returns the distinct symbols with stored bars.
func (r *Repository) ListSymbols() ([]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT symbol FROM price_bars ORDER BY symbol`)
	if err != nil {
		return nil, fmt.Errorf("failed to list symbols: %w", err)
	}
	defer rows.Close()

	var symbols []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan symbol: %w", err)
		}
		symbols = append(symbols, s)
	}
	return symbols, rows.Err()
}
