package portfolio

import "sort"

// RebalanceThreshold is the minimum deviation from target, as a
// fraction of total portfolio value, that triggers a recommendation.
const RebalanceThreshold = 0.05

// Rebalance compares current holdings against a target allocation and
// emits buy/sell recommendations for asset classes that drifted past
// the threshold. A zero total value yields no recommendations.
func Rebalance(holdings []Holding, targetAllocation map[string]float64, totalValue float64) []RebalanceRecommendation {
	recommendations := []RebalanceRecommendation{}
	if totalValue <= 0 {
		return recommendations
	}

	currentValues := make(map[string]float64)
	for _, h := range holdings {
		currentValues[h.AssetType] += h.Quantity * h.CurrentPrice
	}

	// Deterministic recommendation order.
	assetTypes := make([]string, 0, len(targetAllocation))
	for assetType := range targetAllocation {
		assetTypes = append(assetTypes, assetType)
	}
	sort.Strings(assetTypes)

	for _, assetType := range assetTypes {
		targetValue := totalValue * targetAllocation[assetType]
		currentValue := currentValues[assetType]
		difference := targetValue - currentValue

		if abs(difference) <= totalValue*RebalanceThreshold {
			continue
		}

		action := "buy"
		if difference < 0 {
			action = "sell"
		}

		recommendations = append(recommendations, RebalanceRecommendation{
			AssetType:         assetType,
			Action:            action,
			Amount:            abs(difference),
			CurrentAllocation: currentValue / totalValue,
			TargetAllocation:  targetAllocation[assetType],
		})
	}

	return recommendations
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
