package portfolio

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Repository handles portfolio and holding persistence
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new portfolio repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "portfolio").Logger(),
	}
}

// GetByUser returns a user's portfolio, or nil when none exists.
func (r *Repository) GetByUser(userID int64) (*Portfolio, error) {
	row := r.db.QueryRow(
		`SELECT id, user_id, total_value, total_gain_loss, total_gain_loss_percent, created_at, updated_at
		 FROM portfolios WHERE user_id = ?`,
		userID,
	)

	var p Portfolio
	var createdAt, updatedAt string
	err := row.Scan(&p.ID, &p.UserID, &p.TotalValue, &p.TotalGainLoss, &p.TotalGainLossPercent, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan portfolio: %w", err)
	}

	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &p, nil
}

// GetByID returns a portfolio by its ID, or nil when none exists.
func (r *Repository) GetByID(id int64) (*Portfolio, error) {
	row := r.db.QueryRow(
		`SELECT id, user_id, total_value, total_gain_loss, total_gain_loss_percent, created_at, updated_at
		 FROM portfolios WHERE id = ?`,
		id,
	)

	var p Portfolio
	var createdAt, updatedAt string
	err := row.Scan(&p.ID, &p.UserID, &p.TotalValue, &p.TotalGainLoss, &p.TotalGainLossPercent, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan portfolio: %w", err)
	}

	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &p, nil
}

// Create inserts an empty portfolio for a user.
func (r *Repository) Create(p *Portfolio) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	result, err := r.db.Exec(
		`INSERT INTO portfolios (user_id, total_value, total_gain_loss, total_gain_loss_percent, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.UserID, p.TotalValue, p.TotalGainLoss, p.TotalGainLossPercent,
		now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert portfolio: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get portfolio id: %w", err)
	}
	p.ID = id

	return nil
}

// UpdateTotals persists the computed value rollup.
func (r *Repository) UpdateTotals(p *Portfolio) error {
	p.UpdatedAt = time.Now().UTC()

	_, err := r.db.Exec(
		`UPDATE portfolios SET total_value = ?, total_gain_loss = ?, total_gain_loss_percent = ?, updated_at = ?
		 WHERE id = ?`,
		p.TotalValue, p.TotalGainLoss, p.TotalGainLossPercent,
		p.UpdatedAt.Format(time.RFC3339), p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update portfolio totals: %w", err)
	}
	return nil
}

// GetHoldings returns all holdings in a portfolio.
func (r *Repository) GetHoldings(portfolioID int64) ([]Holding, error) {
	rows, err := r.db.Query(
		`SELECT id, portfolio_id, asset_type, asset_name, quantity, current_price, purchase_price,
		        allocation, created_at, updated_at
		 FROM holdings WHERE portfolio_id = ? ORDER BY asset_name`,
		portfolioID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query holdings: %w", err)
	}
	defer rows.Close()

	var holdings []Holding
	for rows.Next() {
		var h Holding
		var createdAt, updatedAt string
		if err := rows.Scan(
			&h.ID, &h.PortfolioID, &h.AssetType, &h.AssetName, &h.Quantity,
			&h.CurrentPrice, &h.PurchasePrice, &h.Allocation, &createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan holding: %w", err)
		}
		h.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		h.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

// GetHolding returns a holding by ID, or nil when none exists.
func (r *Repository) GetHolding(id int64) (*Holding, error) {
	row := r.db.QueryRow(
		`SELECT id, portfolio_id, asset_type, asset_name, quantity, current_price, purchase_price,
		        allocation, created_at, updated_at
		 FROM holdings WHERE id = ?`,
		id,
	)

	var h Holding
	var createdAt, updatedAt string
	err := row.Scan(
		&h.ID, &h.PortfolioID, &h.AssetType, &h.AssetName, &h.Quantity,
		&h.CurrentPrice, &h.PurchasePrice, &h.Allocation, &createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan holding: %w", err)
	}

	h.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	h.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &h, nil
}

// FindHolding returns the holding with the given asset name inside a
// portfolio, or nil.
func (r *Repository) FindHolding(portfolioID int64, assetName string) (*Holding, error) {
	row := r.db.QueryRow(
		`SELECT id, portfolio_id, asset_type, asset_name, quantity, current_price, purchase_price,
		        allocation, created_at, updated_at
		 FROM holdings WHERE portfolio_id = ? AND asset_name = ?`,
		portfolioID, assetName,
	)

	var h Holding
	var createdAt, updatedAt string
	err := row.Scan(
		&h.ID, &h.PortfolioID, &h.AssetType, &h.AssetName, &h.Quantity,
		&h.CurrentPrice, &h.PurchasePrice, &h.Allocation, &createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan holding: %w", err)
	}

	h.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	h.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &h, nil
}

// CreateHolding inserts a new holding and sets its generated ID.
func (r *Repository) CreateHolding(h *Holding) error {
	now := time.Now().UTC()
	h.CreatedAt = now
	h.UpdatedAt = now

	result, err := r.db.Exec(
		`INSERT INTO holdings (portfolio_id, asset_type, asset_name, quantity, current_price,
		        purchase_price, allocation, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.PortfolioID, h.AssetType, h.AssetName, h.Quantity, h.CurrentPrice,
		h.PurchasePrice, h.Allocation,
		now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert holding: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get holding id: %w", err)
	}
	h.ID = id

	return nil
}

// UpdateHolding persists all mutable fields of a holding.
func (r *Repository) UpdateHolding(h *Holding) error {
	h.UpdatedAt = time.Now().UTC()

	_, err := r.db.Exec(
		`UPDATE holdings SET asset_type = ?, quantity = ?, current_price = ?, purchase_price = ?,
		        allocation = ?, updated_at = ?
		 WHERE id = ?`,
		h.AssetType, h.Quantity, h.CurrentPrice, h.PurchasePrice, h.Allocation,
		h.UpdatedAt.Format(time.RFC3339), h.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update holding: %w", err)
	}
	return nil
}

// DeleteHolding removes a holding.
func (r *Repository) DeleteHolding(id int64) error {
	_, err := r.db.Exec(`DELETE FROM holdings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}
	return nil
}
