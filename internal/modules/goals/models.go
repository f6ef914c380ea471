package goals

import "time"

// Goal represents a financial goal a user is saving towards.
type Goal struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	GoalName      string    `json:"goal_name"`
	GoalType      string    `json:"goal_type"` // retirement, education, house, emergency, other
	TargetAmount  float64   `json:"target_amount"`
	CurrentAmount float64   `json:"current_amount"`
	TargetDate    time.Time `json:"target_date"`
	Priority      string    `json:"priority"` // low, medium, high
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GoalProgress is a goal annotated with its achievement probability.
type GoalProgress struct {
	Goal
	AchievementProbability float64 `json:"achievement_probability"`
}

// ProgressReport summarizes achievement probability across all goals.
type ProgressReport struct {
	Goals                  []GoalProgress     `json:"goals"`
	AchievementProbability float64            `json:"achievement_probability"`
	RecommendedAllocations map[string]float64 `json:"recommended_allocations"`
}
