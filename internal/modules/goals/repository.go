package goals

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

// Repository handles goal persistence
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new goals repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "goals").Logger(),
	}
}

// Create inserts a new goal and sets its generated ID.
func (r *Repository) Create(g *Goal) error {
	now := time.Now().UTC()
	g.CreatedAt = now
	g.UpdatedAt = now

	result, err := r.db.Exec(
		`INSERT INTO goals (user_id, goal_name, goal_type, target_amount, current_amount, target_date, priority, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.UserID, g.GoalName, g.GoalType, g.TargetAmount, g.CurrentAmount,
		g.TargetDate.Format(dateLayout), g.Priority,
		now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert goal: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get goal id: %w", err)
	}
	g.ID = id

	r.log.Debug().Int64("goal_id", id).Int64("user_id", g.UserID).Msg("Goal created")
	return nil
}

// GetByUser returns all goals for a user, newest first.
func (r *Repository) GetByUser(userID int64) ([]Goal, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, goal_name, goal_type, target_amount, current_amount, target_date, priority, created_at, updated_at
		 FROM goals WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	var result []Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goals: %w", err)
	}

	return result, nil
}

// GetByID returns a single goal, or nil if it does not exist.
func (r *Repository) GetByID(id int64) (*Goal, error) {
	row := r.db.QueryRow(
		`SELECT id, user_id, goal_name, goal_type, target_amount, current_amount, target_date, priority, created_at, updated_at
		 FROM goals WHERE id = ?`,
		id,
	)

	g, err := scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Update persists all mutable fields of a goal.
func (r *Repository) Update(g *Goal) error {
	g.UpdatedAt = time.Now().UTC()

	_, err := r.db.Exec(
		`UPDATE goals SET goal_name = ?, goal_type = ?, target_amount = ?, current_amount = ?, target_date = ?, priority = ?, updated_at = ?
		 WHERE id = ?`,
		g.GoalName, g.GoalType, g.TargetAmount, g.CurrentAmount,
		g.TargetDate.Format(dateLayout), g.Priority,
		g.UpdatedAt.Format(time.RFC3339), g.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	return nil
}

// Delete removes a goal.
func (r *Repository) Delete(id int64) error {
	_, err := r.db.Exec("DELETE FROM goals WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGoal(row rowScanner) (Goal, error) {
	var g Goal
	var targetDate, createdAt, updatedAt string

	err := row.Scan(
		&g.ID, &g.UserID, &g.GoalName, &g.GoalType,
		&g.TargetAmount, &g.CurrentAmount, &targetDate, &g.Priority,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return Goal{}, err
	}

	if g.TargetDate, err = time.Parse(dateLayout, targetDate); err != nil {
		return Goal{}, fmt.Errorf("failed to parse target date: %w", err)
	}
	g.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	g.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	return g, nil
}
