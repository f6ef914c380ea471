package behavioral

// Rule thresholds and adjustment deltas. Each rule below is evaluated
// independently; one rule firing never short-circuits another.
const (
	CheckFrequencyWarning    = 5   // portfolio checks per day
	TurnoverWarning          = 0.5 // annualized turnover rate
	SentimentVarianceWarning = 0.3
	EmailToneNegative        = 0.3 // positive-tone ratio below this is flagged

	// CheckFrequencyImpact and LifeEventImpactDelta are advisory deltas
	// surfaced in Analysis.RiskAdjustments. They are distinct from the
	// multiplicative life-event impact applied by the risk module's
	// life-events path; the two mechanisms are intentionally separate.
	CheckFrequencyImpact = -0.05
	LifeEventImpactDelta = -0.10

	neutralEmailTone = 0.5
)

// Analyze evaluates behavioral telemetry and produces insights,
// recommendations, and advisory risk-adjustment deltas. Output is purely
// advisory: nothing here is folded into the behavioral sub-score.
func Analyze(m Metrics) Analysis {
	insights := []Insight{}
	recommendations := []Recommendation{}
	riskAdjustments := map[string]float64{}

	if m.PortfolioCheckFrequency > CheckFrequencyWarning {
		insights = append(insights, Insight{
			Type:     "warning",
			Message:  "High portfolio check frequency detected. Consider reducing to avoid emotional decision-making.",
			Severity: "medium",
		})
		riskAdjustments["check_frequency_impact"] = CheckFrequencyImpact
	}

	if m.PortfolioTurnoverRate > TurnoverWarning {
		insights = append(insights, Insight{
			Type:     "warning",
			Message:  "High portfolio turnover rate. Frequent trading may reduce returns due to transaction costs.",
			Severity: "high",
		})
		recommendations = append(recommendations, Recommendation{
			Action:   "reduce_trading",
			Reason:   "High turnover rate detected",
			Priority: "high",
		})
	}

	if m.MajorLifeEventOccurred {
		insights = append(insights, Insight{
			Type:     "info",
			Message:  "Major life event detected. Consider reviewing your risk profile and investment strategy.",
			Severity: "medium",
		})
		riskAdjustments["life_event_impact"] = LifeEventImpactDelta
	}

	if m.SentimentVariance != nil && *m.SentimentVariance > SentimentVarianceWarning {
		insights = append(insights, Insight{
			Type:     "warning",
			Message:  "High sentiment variance detected. Consider adopting a more systematic investment approach.",
			Severity: "medium",
		})
	}

	emailTone := neutralEmailTone
	if m.EmailTonePositiveRatio != nil {
		emailTone = *m.EmailTonePositiveRatio
	}
	if emailTone < EmailToneNegative {
		insights = append(insights, Insight{
			Type:     "info",
			Message:  "Negative sentiment detected in communications. Consider reviewing your investment strategy.",
			Severity: "low",
		})
	}

	if m.ReactionToMarketVolatility == "aggressive" {
		recommendations = append(recommendations, Recommendation{
			Action:   "review_risk_tolerance",
			Reason:   "Aggressive reaction to volatility may indicate need for risk profile adjustment",
			Priority: "medium",
		})
	}

	return Analysis{
		Insights:        insights,
		Recommendations: recommendations,
		RiskAdjustments: riskAdjustments,
	}
}
