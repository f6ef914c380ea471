package behavioral

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Repository handles behavioral metrics persistence
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new behavioral metrics repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "behavioral").Logger(),
	}
}

// GetLatestByUser returns the newest metrics snapshot for a user, or nil.
func (r *Repository) GetLatestByUser(userID int64) (*Metrics, error) {
	row := r.db.QueryRow(
		`SELECT id, user_id, portfolio_check_frequency, portfolio_turnover_rate, trade_volume_last_week,
		        major_life_event_occurred, sentiment_avg, sentiment_variance, email_tone_positive_ratio,
		        calendar_stress_events_count, nudge_acceptance_rate, reaction_to_market_volatility,
		        created_at, updated_at
		 FROM behavioral_metrics WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		userID,
	)

	m, err := scanMetrics(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan behavioral metrics: %w", err)
	}
	return m, nil
}

// Create inserts a new metrics row and sets its generated ID.
func (r *Repository) Create(m *Metrics) error {
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	result, err := r.db.Exec(
		`INSERT INTO behavioral_metrics (user_id, portfolio_check_frequency, portfolio_turnover_rate,
		        trade_volume_last_week, major_life_event_occurred, sentiment_avg, sentiment_variance,
		        email_tone_positive_ratio, calendar_stress_events_count, nudge_acceptance_rate,
		        reaction_to_market_volatility, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.UserID, m.PortfolioCheckFrequency, m.PortfolioTurnoverRate, m.TradeVolumeLastWeek,
		boolToInt(m.MajorLifeEventOccurred), m.SentimentAvg, m.SentimentVariance,
		m.EmailTonePositiveRatio, m.CalendarStressEventsCount, m.NudgeAcceptanceRate,
		nullIfEmpty(m.ReactionToMarketVolatility),
		now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert behavioral metrics: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get metrics id: %w", err)
	}
	m.ID = id

	return nil
}

// Update persists all mutable fields of a metrics snapshot.
func (r *Repository) Update(m *Metrics) error {
	m.UpdatedAt = time.Now().UTC()

	_, err := r.db.Exec(
		`UPDATE behavioral_metrics SET portfolio_check_frequency = ?, portfolio_turnover_rate = ?,
		        trade_volume_last_week = ?, major_life_event_occurred = ?, sentiment_avg = ?,
		        sentiment_variance = ?, email_tone_positive_ratio = ?, calendar_stress_events_count = ?,
		        nudge_acceptance_rate = ?, reaction_to_market_volatility = ?, updated_at = ?
		 WHERE id = ?`,
		m.PortfolioCheckFrequency, m.PortfolioTurnoverRate, m.TradeVolumeLastWeek,
		boolToInt(m.MajorLifeEventOccurred), m.SentimentAvg, m.SentimentVariance,
		m.EmailTonePositiveRatio, m.CalendarStressEventsCount, m.NudgeAcceptanceRate,
		nullIfEmpty(m.ReactionToMarketVolatility),
		m.UpdatedAt.Format(time.RFC3339), m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update behavioral metrics: %w", err)
	}
	return nil
}

func scanMetrics(row *sql.Row) (*Metrics, error) {
	var m Metrics
	var lifeEvent int
	var reaction sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(
		&m.ID, &m.UserID, &m.PortfolioCheckFrequency, &m.PortfolioTurnoverRate,
		&m.TradeVolumeLastWeek, &lifeEvent, &m.SentimentAvg, &m.SentimentVariance,
		&m.EmailTonePositiveRatio, &m.CalendarStressEventsCount, &m.NudgeAcceptanceRate,
		&reaction, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.MajorLifeEventOccurred = lifeEvent != 0
	if reaction.Valid {
		m.ReactionToMarketVolatility = reaction.String
	}
	m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	m.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	return &m, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
