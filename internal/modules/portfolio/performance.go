package portfolio

import "github.com/shopspring/decimal"

// CalculatePerformance rolls up holdings into value, cost, and
// gain/loss figures. Decimal arithmetic keeps the totals stable across
// repeated persist-and-reload cycles; an empty holdings list yields an
// all-zero result.
func CalculatePerformance(holdings []Holding) Performance {
	if len(holdings) == 0 {
		return Performance{}
	}

	totalValue := decimal.Zero
	totalCost := decimal.Zero

	for _, h := range holdings {
		quantity := decimal.NewFromFloat(h.Quantity)
		currentValue := quantity.Mul(decimal.NewFromFloat(h.CurrentPrice))
		costBasis := quantity.Mul(decimal.NewFromFloat(h.PurchasePrice))

		totalValue = totalValue.Add(currentValue)
		totalCost = totalCost.Add(costBasis)
	}

	gainLoss := totalValue.Sub(totalCost)
	gainLossPercent := decimal.Zero
	if totalCost.IsPositive() {
		gainLossPercent = gainLoss.Div(totalCost).Mul(decimal.NewFromInt(100))
	}

	return Performance{
		TotalValue:           totalValue.InexactFloat64(),
		TotalCost:            totalCost.InexactFloat64(),
		TotalGainLoss:        gainLoss.InexactFloat64(),
		TotalGainLossPercent: gainLossPercent.InexactFloat64(),
	}
}
