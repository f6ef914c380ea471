package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebalanceZeroTotalValue(t *testing.T) {
	recommendations := Rebalance(nil, TargetAllocation("moderate"), 0)
	assert.Empty(t, recommendations)
	require.NotNil(t, recommendations)
}

func TestRebalanceWithinThreshold(t *testing.T) {
	// Holdings sit within 5% of every target weight.
	holdings := []Holding{
		{AssetType: AssetEquity, Quantity: 1, CurrentPrice: 520},
		{AssetType: AssetDebt, Quantity: 1, CurrentPrice: 280},
		{AssetType: AssetGold, Quantity: 1, CurrentPrice: 100},
		{AssetType: AssetInternational, Quantity: 1, CurrentPrice: 100},
	}

	recommendations := Rebalance(holdings, TargetAllocation("moderate"), 1000)
	assert.Empty(t, recommendations)
}

func TestRebalanceOverAllocatedEquity(t *testing.T) {
	// Equity holds 70% of a portfolio targeted at 50%.
	holdings := []Holding{
		{AssetType: AssetEquity, Quantity: 1, CurrentPrice: 700},
		{AssetType: AssetDebt, Quantity: 1, CurrentPrice: 300},
	}
	target := map[string]float64{AssetEquity: 0.50, AssetDebt: 0.30}

	recommendations := Rebalance(holdings, target, 1000)

	require.Len(t, recommendations, 1)
	rec := recommendations[0]
	assert.Equal(t, AssetEquity, rec.AssetType)
	assert.Equal(t, "sell", rec.Action)
	assert.InDelta(t, 200.0, rec.Amount, 1e-9)
	assert.InDelta(t, 0.70, rec.CurrentAllocation, 1e-9)
	assert.InDelta(t, 0.50, rec.TargetAllocation, 1e-9)
}

func TestRebalanceMissingAssetClass(t *testing.T) {
	// Everything in equity; every other target class needs buying.
	holdings := []Holding{
		{AssetType: AssetEquity, Quantity: 10, CurrentPrice: 100},
	}

	recommendations := Rebalance(holdings, TargetAllocation("moderate"), 1000)

	require.Len(t, recommendations, 4)
	actions := map[string]string{}
	for _, rec := range recommendations {
		actions[rec.AssetType] = rec.Action
	}
	assert.Equal(t, "sell", actions[AssetEquity])
	assert.Equal(t, "buy", actions[AssetDebt])
	assert.Equal(t, "buy", actions[AssetGold])
	assert.Equal(t, "buy", actions[AssetInternational])
}

func TestRebalanceDeterministicOrder(t *testing.T) {
	holdings := []Holding{
		{AssetType: AssetEquity, Quantity: 10, CurrentPrice: 100},
	}

	first := Rebalance(holdings, TargetAllocation("moderate"), 1000)
	second := Rebalance(holdings, TargetAllocation("moderate"), 1000)
	assert.Equal(t, first, second)

	// Asset types come out sorted.
	require.Len(t, first, 4)
	assert.Equal(t, AssetDebt, first[0].AssetType)
	assert.Equal(t, AssetEquity, first[1].AssetType)
	assert.Equal(t, AssetGold, first[2].AssetType)
	assert.Equal(t, AssetInternational, first[3].AssetType)
}

func TestRebalanceExactThresholdDoesNotTrigger(t *testing.T) {
	// Deviation of exactly 5% stays silent; the threshold is strict.
	holdings := []Holding{
		{AssetType: AssetEquity, Quantity: 1, CurrentPrice: 550},
		{AssetType: AssetDebt, Quantity: 1, CurrentPrice: 450},
	}
	target := map[string]float64{AssetEquity: 0.50, AssetDebt: 0.50}

	recommendations := Rebalance(holdings, target, 1000)
	assert.Empty(t, recommendations)
}
