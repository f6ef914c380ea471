package portfolio

import "github.com/nivesh/planner-go/pkg/formulas"

// categoryAllocations maps each risk category to its target weights.
// Each row sums to 1.0.
var categoryAllocations = map[string]map[string]float64{
	"conservative": {
		AssetEquity:        0.30,
		AssetDebt:          0.50,
		AssetGold:          0.10,
		AssetInternational: 0.10,
	},
	"moderate": {
		AssetEquity:        0.50,
		AssetDebt:          0.30,
		AssetGold:          0.10,
		AssetInternational: 0.10,
	},
	"aggressive": {
		AssetEquity:        0.70,
		AssetDebt:          0.15,
		AssetGold:          0.05,
		AssetInternational: 0.10,
	},
}

// expectedReturns holds the assumed long-run annual return per asset
// class.
var expectedReturns = map[string]float64{
	AssetEquity:        0.12,
	AssetDebt:          0.07,
	AssetGold:          0.08,
	AssetInternational: 0.10,
}

// Per-category risk characteristics.
var (
	categoryVolatility = map[string]float64{
		"conservative": 0.15,
		"moderate":     0.20,
		"aggressive":   0.25,
	}
	categoryMaxDrawdown = map[string]float64{
		"conservative": 0.10,
		"moderate":     0.15,
		"aggressive":   0.20,
	}
)

// SharpeDenominator is the fixed volatility assumption used in the
// sharpe ratio. Kept constant across categories for output parity with
// downstream consumers that depend on it.
const SharpeDenominator = 0.15

const fallbackCategory = "moderate"

// TargetAllocation returns a copy of the target weights for a risk
// category. Unknown categories fall back to moderate.
func TargetAllocation(riskCategory string) map[string]float64 {
	base, ok := categoryAllocations[riskCategory]
	if !ok {
		base = categoryAllocations[fallbackCategory]
	}

	allocation := make(map[string]float64, len(base))
	for asset, weight := range base {
		allocation[asset] = weight
	}
	return allocation
}

// PlanAllocation builds the full allocation result for a risk category
// and investment amount.
func PlanAllocation(riskCategory string, investmentAmount float64) AllocationResult {
	category := riskCategory
	if _, ok := categoryAllocations[category]; !ok {
		category = fallbackCategory
	}

	allocation := TargetAllocation(category)

	var expectedReturn float64
	for asset, weight := range allocation {
		expectedReturn += weight * expectedReturns[asset]
	}

	// Extension point for behavioral tilts (equity_reduction shifts
	// weight from equity into debt). Always zero in the base plan.
	adjustments := map[string]float64{
		"equity_reduction": 0.0,
		"debt_increase":    0.0,
	}
	if reduction := adjustments["equity_reduction"]; reduction > 0 {
		allocation[AssetEquity] = formulas.Clamp(allocation[AssetEquity]-reduction, 0, 1)
		allocation[AssetDebt] += reduction
	}

	return AllocationResult{
		Allocation:     allocation,
		ExpectedReturn: formulas.Round4(expectedReturn),
		RiskMetrics: RiskMetrics{
			Volatility:  categoryVolatility[category],
			SharpeRatio: expectedReturn / SharpeDenominator,
			MaxDrawdown: categoryMaxDrawdown[category],
		},
		BehavioralAdjustments: adjustments,
		InvestmentAmount:      investmentAmount,
	}
}
