package risk

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Repository handles risk profile persistence
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new risk profile repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "risk").Logger(),
	}
}

// GetByUser returns a user's risk profile, or nil when none exists.
func (r *Repository) GetByUser(userID int64) (*Profile, error) {
	row := r.db.QueryRow(
		`SELECT id, user_id, q_score, g_score, b_score, regional_factor, demographic_factor,
		        tradition_factor, cultural_modifier, risk_score, risk_category, confidence,
		        created_at, updated_at
		 FROM risk_profiles WHERE user_id = ?`,
		userID,
	)

	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan risk profile: %w", err)
	}
	return p, nil
}

// ListUserIDs returns the IDs of all users with a stored profile.
func (r *Repository) ListUserIDs() ([]int64, error) {
	rows, err := r.db.Query(`SELECT user_id FROM risk_profiles ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list risk profile users: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Create inserts a new profile row and sets its generated ID.
func (r *Repository) Create(p *Profile) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	result, err := r.db.Exec(
		`INSERT INTO risk_profiles (user_id, q_score, g_score, b_score, regional_factor,
		        demographic_factor, tradition_factor, cultural_modifier, risk_score,
		        risk_category, confidence, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.UserID, p.QScore, p.GScore, p.BScore, p.RegionalFactor,
		p.DemographicFactor, p.TraditionFactor, p.CulturalModifier, p.RiskScore,
		p.RiskCategory, p.Confidence,
		now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert risk profile: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get risk profile id: %w", err)
	}
	p.ID = id

	return nil
}

// Update persists all mutable fields of a profile.
func (r *Repository) Update(p *Profile) error {
	p.UpdatedAt = time.Now().UTC()

	_, err := r.db.Exec(
		`UPDATE risk_profiles SET q_score = ?, g_score = ?, b_score = ?, regional_factor = ?,
		        demographic_factor = ?, tradition_factor = ?, cultural_modifier = ?,
		        risk_score = ?, risk_category = ?, confidence = ?, updated_at = ?
		 WHERE id = ?`,
		p.QScore, p.GScore, p.BScore, p.RegionalFactor,
		p.DemographicFactor, p.TraditionFactor, p.CulturalModifier,
		p.RiskScore, p.RiskCategory, p.Confidence,
		p.UpdatedAt.Format(time.RFC3339), p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update risk profile: %w", err)
	}
	return nil
}

func scanProfile(row *sql.Row) (*Profile, error) {
	var p Profile
	var createdAt, updatedAt string

	err := row.Scan(
		&p.ID, &p.UserID, &p.QScore, &p.GScore, &p.BScore, &p.RegionalFactor,
		&p.DemographicFactor, &p.TraditionFactor, &p.CulturalModifier,
		&p.RiskScore, &p.RiskCategory, &p.Confidence, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	return &p, nil
}
