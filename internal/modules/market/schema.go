package market

import "database/sql"

// Schema defines the price_bars table.
const Schema = `
CREATE TABLE IF NOT EXISTS price_bars (
    id INTEGER PRIMARY KEY,
    symbol TEXT NOT NULL,
    date TEXT NOT NULL,
    open REAL NOT NULL,
    high REAL NOT NULL,
    low REAL NOT NULL,
    close REAL NOT NULL,
    volume REAL NOT NULL DEFAULT 0,
    UNIQUE(symbol, date)
);

CREATE INDEX IF NOT EXISTS idx_price_bars_symbol_date ON price_bars(symbol, date);
`

// InitSchema ensures the price_bars table exists.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(Schema)
	return err
}
