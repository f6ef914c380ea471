package risk

import "database/sql"

// ProfileSchema defines the risk_profiles table. One logical current
// profile per user.
const ProfileSchema = `
CREATE TABLE IF NOT EXISTS risk_profiles (
    id INTEGER PRIMARY KEY,
    user_id INTEGER NOT NULL UNIQUE,
    q_score REAL,
    g_score REAL,
    b_score REAL,
    regional_factor REAL,
    demographic_factor REAL,
    tradition_factor REAL,
    cultural_modifier REAL,
    risk_score REAL NOT NULL DEFAULT 0,
    risk_category TEXT NOT NULL DEFAULT 'moderate',
    confidence REAL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`

// InitSchema ensures the risk_profiles table exists.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(ProfileSchema)
	return err
}
