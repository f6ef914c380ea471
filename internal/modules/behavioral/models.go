package behavioral

import "time"

// Metrics is a per-user behavioral telemetry snapshot. Sentiment and tone
// fields are pointers because they are unknown until the first signals
// arrive; the analyzer substitutes neutral defaults for nil.
type Metrics struct {
	ID                         int64     `json:"id"`
	UserID                     int64     `json:"user_id"`
	PortfolioCheckFrequency    int       `json:"portfolio_check_frequency"` // times per day
	PortfolioTurnoverRate      float64   `json:"portfolio_turnover_rate"`
	TradeVolumeLastWeek        float64   `json:"trade_volume_last_week"`
	MajorLifeEventOccurred     bool      `json:"major_life_event_occurred"`
	SentimentAvg               *float64  `json:"sentiment_avg"`
	SentimentVariance          *float64  `json:"sentiment_variance"`
	EmailTonePositiveRatio     *float64  `json:"email_tone_positive_ratio"`
	CalendarStressEventsCount  int       `json:"calendar_stress_events_count"`
	NudgeAcceptanceRate        *float64  `json:"nudge_acceptance_rate"`
	ReactionToMarketVolatility string    `json:"reaction_to_market_volatility"` // conservative, moderate, aggressive
	CreatedAt                  time.Time `json:"created_at"`
	UpdatedAt                  time.Time `json:"updated_at"`
}

// Insight is a single advisory finding derived from behavioral telemetry.
type Insight struct {
	Type     string `json:"type"`     // warning, info
	Message  string `json:"message"`
	Severity string `json:"severity"` // low, medium, high
}

// Recommendation is a suggested action with a priority.
type Recommendation struct {
	Action   string `json:"action"`
	Reason   string `json:"reason"`
	Priority string `json:"priority"` // low, medium, high
}

// Analysis is the full advisory output of the analyzer. RiskAdjustments is
// a map of named deltas that callers may apply to risk tolerance; the
// analyzer itself never mutates any stored score.
type Analysis struct {
	Insights        []Insight          `json:"insights"`
	Recommendations []Recommendation   `json:"recommendations"`
	RiskAdjustments map[string]float64 `json:"risk_adjustments"`
}
