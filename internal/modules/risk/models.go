package risk

import "time"

// Risk categories. The ladder in Categorize is the single source of
// truth for mapping a score to one of these.
const (
	CategoryConservative = "conservative"
	CategoryModerate     = "moderate"
	CategoryAggressive   = "aggressive"
)

// Profile is the persisted per-user risk profile. Sub-scores and
// cultural factors are pointers: nil means the corresponding signal has
// not been collected yet, which is distinct from a literal zero.
type Profile struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	QScore            *float64  `json:"q_score"`
	GScore            *float64  `json:"g_score"`
	BScore            *float64  `json:"b_score"`
	RegionalFactor    *float64  `json:"regional_factor"`
	DemographicFactor *float64  `json:"demographic_factor"`
	TraditionFactor   *float64  `json:"tradition_factor"`
	CulturalModifier  *float64  `json:"cultural_modifier"`
	RiskScore         float64   `json:"risk_score"`
	RiskCategory      string    `json:"risk_category"`
	Confidence        *float64  `json:"confidence"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Factors breaks down how an assessment was composed.
type Factors struct {
	QScore           float64 `json:"q_score"`
	GScore           float64 `json:"g_score"`
	BScore           float64 `json:"b_score"`
	CulturalModifier float64 `json:"cultural_modifier"`
	BaseScore        float64 `json:"base_score"`
}

// Assessment is the output of the comprehensive aggregation.
type Assessment struct {
	RiskScore    float64 `json:"risk_score"`
	RiskCategory string  `json:"risk_category"`
	Confidence   float64 `json:"confidence"`
	Factors      Factors `json:"factors"`
}

// CulturalModifiers is the output of the demographics calculation. All
// factors are multiplicative adjustments centered near 1.0.
type CulturalModifiers struct {
	BaseModifier      float64 `json:"base_modifier"`
	RegionalFactor    float64 `json:"regional_factor"`
	DemographicFactor float64 `json:"demographic_factor"`
	TraditionFactor   float64 `json:"tradition_factor"`
	CulturalModifier  float64 `json:"cultural_modifier"`
}

// Demographics is the free-form demographic record submitted by the
// user. Pointer fields fall back to typical-household defaults when
// absent.
type Demographics struct {
	Region               string   `json:"region"`
	Age                  *int     `json:"age"`
	Income               *float64 `json:"income"`
	JointFamilyStatus    bool     `json:"joint_family_status"`
	GoldInvestmentRatio  *float64 `json:"gold_investment_ratio"`
	RealEstateAllocation *float64 `json:"real_estate_allocation"`
}

// LifeEvent is a single reported life event. Only events whose Impact
// is "high" reduce risk tolerance.
type LifeEvent struct {
	EventType string `json:"event_type"`
	Impact    string `json:"impact"` // low, medium, high
}

// BehavioralInput feeds the B-score calculation. Nil pointer fields
// take the assessment defaults (check frequency 1/day, turnover 0).
type BehavioralInput struct {
	PortfolioCheckFrequency *int     `json:"portfolio_check_frequency"`
	PortfolioTurnoverRate   *float64 `json:"portfolio_turnover_rate"`
	MajorLifeEventOccurred  bool     `json:"major_life_event_occurred"`
}
