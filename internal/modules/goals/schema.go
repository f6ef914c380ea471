package goals

import "database/sql"

// GoalsSchema defines the goals table.
const GoalsSchema = `
CREATE TABLE IF NOT EXISTS goals (
    id INTEGER PRIMARY KEY,
    user_id INTEGER NOT NULL,
    goal_name TEXT NOT NULL,
    goal_type TEXT NOT NULL,
    target_amount REAL NOT NULL,
    current_amount REAL NOT NULL DEFAULT 0,
    target_date TEXT NOT NULL,
    priority TEXT NOT NULL DEFAULT 'medium',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_goals_user ON goals(user_id);
`

// InitSchema ensures the goals table exists.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(GoalsSchema)
	return err
}
