package behavioral

import "database/sql"

// MetricsSchema defines the behavioral_metrics table.
const MetricsSchema = `
CREATE TABLE IF NOT EXISTS behavioral_metrics (
    id INTEGER PRIMARY KEY,
    user_id INTEGER NOT NULL,
    portfolio_check_frequency INTEGER NOT NULL DEFAULT 0,
    portfolio_turnover_rate REAL NOT NULL DEFAULT 0,
    trade_volume_last_week REAL NOT NULL DEFAULT 0,
    major_life_event_occurred INTEGER NOT NULL DEFAULT 0,
    sentiment_avg REAL,
    sentiment_variance REAL,
    email_tone_positive_ratio REAL,
    calendar_stress_events_count INTEGER NOT NULL DEFAULT 0,
    nudge_acceptance_rate REAL,
    reaction_to_market_volatility TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_behavioral_metrics_user ON behavioral_metrics(user_id);
`

// InitSchema ensures the behavioral_metrics table exists.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(MetricsSchema)
	return err
}
