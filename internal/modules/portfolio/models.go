package portfolio

import "time"

// Asset classes recognized by the allocation and rebalancing logic.
const (
	AssetEquity        = "equity"
	AssetDebt          = "debt"
	AssetGold          = "gold"
	AssetInternational = "international"
)

// Portfolio is the per-user aggregate. Value fields are refreshed from
// holdings on every read.
type Portfolio struct {
	ID                   int64     `json:"id"`
	UserID               int64     `json:"user_id"`
	TotalValue           float64   `json:"total_value"`
	TotalGainLoss        float64   `json:"total_gain_loss"`
	TotalGainLossPercent float64   `json:"total_gain_loss_percent"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Holding is a single position inside a portfolio.
type Holding struct {
	ID            int64     `json:"id"`
	PortfolioID   int64     `json:"portfolio_id"`
	AssetType     string    `json:"asset_type"`
	AssetName     string    `json:"asset_name"`
	Quantity      float64   `json:"quantity"`
	CurrentPrice  float64   `json:"current_price"`
	PurchasePrice float64   `json:"purchase_price"`
	Allocation    float64   `json:"allocation"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Performance summarizes a holdings list.
type Performance struct {
	TotalValue           float64 `json:"total_value"`
	TotalCost            float64 `json:"total_cost"`
	TotalGainLoss        float64 `json:"total_gain_loss"`
	TotalGainLossPercent float64 `json:"total_gain_loss_percent"`
}

// RiskMetrics describes the risk characteristics of an allocation.
type RiskMetrics struct {
	Volatility  float64 `json:"volatility"`
	SharpeRatio float64 `json:"sharpe_ratio"`
	MaxDrawdown float64 `json:"max_drawdown"`
}

// AllocationResult is the output of the allocation planner.
type AllocationResult struct {
	Allocation            map[string]float64 `json:"allocation"`
	ExpectedReturn        float64            `json:"expected_return"`
	RiskMetrics           RiskMetrics        `json:"risk_metrics"`
	BehavioralAdjustments map[string]float64 `json:"behavioral_adjustments"`
	InvestmentAmount      float64            `json:"investment_amount"`
}

// RebalanceRecommendation is a single buy or sell action bringing an
// asset class back toward its target weight.
type RebalanceRecommendation struct {
	AssetType         string  `json:"asset_type"`
	Action            string  `json:"action"` // buy, sell
	Amount            float64 `json:"amount"`
	CurrentAllocation float64 `json:"current_allocation"`
	TargetAllocation  float64 `json:"target_allocation"`
}
