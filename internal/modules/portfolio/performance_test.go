package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePerformanceEmpty(t *testing.T) {
	performance := CalculatePerformance(nil)

	assert.Zero(t, performance.TotalValue)
	assert.Zero(t, performance.TotalCost)
	assert.Zero(t, performance.TotalGainLoss)
	assert.Zero(t, performance.TotalGainLossPercent)
}

func TestCalculatePerformanceSingleHolding(t *testing.T) {
	performance := CalculatePerformance([]Holding{
		{Quantity: 10, CurrentPrice: 120, PurchasePrice: 100},
	})

	assert.InDelta(t, 1200.0, performance.TotalValue, 1e-9)
	assert.InDelta(t, 1000.0, performance.TotalCost, 1e-9)
	assert.InDelta(t, 200.0, performance.TotalGainLoss, 1e-9)
	assert.InDelta(t, 20.0, performance.TotalGainLossPercent, 1e-9)
}

func TestCalculatePerformanceMixedHoldings(t *testing.T) {
	performance := CalculatePerformance([]Holding{
		{Quantity: 10, CurrentPrice: 120, PurchasePrice: 100}, // +200
		{Quantity: 5, CurrentPrice: 80, PurchasePrice: 100},   // -100
	})

	assert.InDelta(t, 1600.0, performance.TotalValue, 1e-9)
	assert.InDelta(t, 1500.0, performance.TotalCost, 1e-9)
	assert.InDelta(t, 100.0, performance.TotalGainLoss, 1e-9)
	assert.InDelta(t, 100.0/1500.0*100, performance.TotalGainLossPercent, 1e-6)
}

func TestCalculatePerformanceZeroCost(t *testing.T) {
	// Free shares: gain exists but percent is guarded to zero.
	performance := CalculatePerformance([]Holding{
		{Quantity: 10, CurrentPrice: 50, PurchasePrice: 0},
	})

	assert.InDelta(t, 500.0, performance.TotalValue, 1e-9)
	assert.Zero(t, performance.TotalCost)
	assert.InDelta(t, 500.0, performance.TotalGainLoss, 1e-9)
	assert.Zero(t, performance.TotalGainLossPercent)
}

func TestCalculatePerformanceFractionalQuantities(t *testing.T) {
	// 0.1 + 0.2 style accumulation stays exact under decimal math.
	holdings := make([]Holding, 10)
	for i := range holdings {
		holdings[i] = Holding{Quantity: 0.1, CurrentPrice: 100, PurchasePrice: 100}
	}

	performance := CalculatePerformance(holdings)

	assert.InDelta(t, 100.0, performance.TotalValue, 1e-12)
	assert.Zero(t, performance.TotalGainLoss)
}
