package risk

import "github.com/nivesh/planner-go/pkg/formulas"

// Questionnaire answers are assumed to sit on a 1-5 scale
// (1 = very conservative, 5 = very aggressive).
const questionnaireAnswerMax = 5.0

// G-score horizon buckets: short horizons force conservative
// positioning, long horizons tolerate more risk.
const (
	shortHorizonYears = 3.0
	longHorizonYears  = 7.0

	shortHorizonScore  = 30.0
	mediumHorizonScore = 50.0
	longHorizonScore   = 70.0
)

// B-score adjustments applied to a neutral base of 50.
const (
	bScoreBase = 50.0

	checkFrequencyHigh = 5 // checks per day
	checkFrequencyLow  = 2
	turnoverHigh       = 0.5
	turnoverLow        = 0.1

	checkFrequencyPenalty = 10.0
	turnoverAdjustment    = 15.0
	lifeEventPenalty      = 20.0
)

// QScore derives the questionnaire sub-score as the normalized average
// of numeric answers scaled to 0-100. Non-numeric answers are skipped.
// An empty or fully non-numeric answer set scores 0.
func QScore(answers map[string]interface{}) float64 {
	var total, max float64
	for _, answer := range answers {
		switch v := answer.(type) {
		case float64:
			total += v
			max += questionnaireAnswerMax
		case int:
			total += float64(v)
			max += questionnaireAnswerMax
		}
	}

	if max == 0 {
		return 0.0
	}
	return formulas.Round2(total / max * 100)
}

// GScore derives the goal-horizon sub-score by bucketing each goal's
// years-to-target and averaging. No goals means no horizon signal, so
// the score stays at the moderate default.
func GScore(yearsToGoal []float64) float64 {
	if len(yearsToGoal) == 0 {
		return mediumHorizonScore
	}

	var total float64
	for _, years := range yearsToGoal {
		switch {
		case years < shortHorizonYears:
			total += shortHorizonScore
		case years < longHorizonYears:
			total += mediumHorizonScore
		default:
			total += longHorizonScore
		}
	}

	return formulas.Round2(total / float64(len(yearsToGoal)))
}

// BScore derives the behavioral sub-score from telemetry. A nil input
// means no telemetry at all and scores neutral; a present input with
// missing fields takes the defaults (1 check/day, zero turnover).
func BScore(input *BehavioralInput) float64 {
	if input == nil {
		return bScoreBase
	}

	score := bScoreBase

	checkFreq := 1
	if input.PortfolioCheckFrequency != nil {
		checkFreq = *input.PortfolioCheckFrequency
	}
	if checkFreq > checkFrequencyHigh {
		score -= checkFrequencyPenalty
	} else if checkFreq < checkFrequencyLow {
		score += checkFrequencyPenalty
	}

	turnover := 0.0
	if input.PortfolioTurnoverRate != nil {
		turnover = *input.PortfolioTurnoverRate
	}
	if turnover > turnoverHigh {
		score += turnoverAdjustment
	} else if turnover < turnoverLow {
		score -= turnoverAdjustment
	}

	if input.MajorLifeEventOccurred {
		score -= lifeEventPenalty
	}

	return formulas.Round2(formulas.Clamp(score, 0, 100))
}
