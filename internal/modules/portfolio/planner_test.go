package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocationTablesSumToOne(t *testing.T) {
	for category, allocation := range categoryAllocations {
		t.Run(category, func(t *testing.T) {
			var sum float64
			for _, weight := range allocation {
				sum += weight
			}
			assert.InDelta(t, 1.0, sum, 1e-9)
		})
	}
}

func TestTargetAllocationUnknownCategoryFallsBack(t *testing.T) {
	assert.Equal(t, TargetAllocation("moderate"), TargetAllocation("reckless"))
	assert.Equal(t, TargetAllocation("moderate"), TargetAllocation(""))
}

func TestTargetAllocationReturnsCopy(t *testing.T) {
	first := TargetAllocation("aggressive")
	first[AssetEquity] = 0.99

	second := TargetAllocation("aggressive")
	assert.InDelta(t, 0.70, second[AssetEquity], 1e-9)
}

func TestPlanAllocation(t *testing.T) {
	tests := []struct {
		category       string
		equity         float64
		expectedReturn float64
		volatility     float64
		maxDrawdown    float64
	}{
		// conservative: .30*.12 + .50*.07 + .10*.08 + .10*.10 = 0.089
		{"conservative", 0.30, 0.089, 0.15, 0.10},
		// moderate: .50*.12 + .30*.07 + .10*.08 + .10*.10 = 0.099
		{"moderate", 0.50, 0.099, 0.20, 0.15},
		// aggressive: .70*.12 + .15*.07 + .05*.08 + .10*.10 = 0.1085
		{"aggressive", 0.70, 0.1085, 0.25, 0.20},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			result := PlanAllocation(tt.category, 100000)

			assert.InDelta(t, tt.equity, result.Allocation[AssetEquity], 1e-9)
			assert.InDelta(t, tt.expectedReturn, result.ExpectedReturn, 1e-9)
			assert.InDelta(t, tt.volatility, result.RiskMetrics.Volatility, 1e-9)
			assert.InDelta(t, tt.maxDrawdown, result.RiskMetrics.MaxDrawdown, 1e-9)
			assert.InDelta(t, tt.expectedReturn/SharpeDenominator, result.RiskMetrics.SharpeRatio, 1e-4)
			assert.InDelta(t, 100000.0, result.InvestmentAmount, 1e-9)
		})
	}
}

func TestPlanAllocationBehavioralHookIsNeutral(t *testing.T) {
	result := PlanAllocation("moderate", 50000)

	require.Contains(t, result.BehavioralAdjustments, "equity_reduction")
	require.Contains(t, result.BehavioralAdjustments, "debt_increase")
	assert.Zero(t, result.BehavioralAdjustments["equity_reduction"])
	assert.Zero(t, result.BehavioralAdjustments["debt_increase"])
}
