package risk

import "github.com/nivesh/planner-go/pkg/formulas"

// Sub-score weights. Questionnaire answers carry the most signal,
// followed by goal horizons, then behavioral telemetry.
const (
	WeightQ = 0.40
	WeightG = 0.35
	WeightB = 0.25
)

// Category ladder thresholds. Both the preliminary (questionnaire-only)
// and the comprehensive path categorize through Categorize, so a
// profile's category can never flip incoherently between the two.
const (
	ConservativeUpperBound = 30.0
	ModerateUpperBound     = 70.0
)

// Confidence starts at a base and drops for every missing-or-zero
// sub-score, bounded to [0.5, 1.0].
const (
	ConfidenceBase     = 0.8
	ConfidencePenaltyQ = 0.2
	ConfidencePenaltyG = 0.15
	ConfidencePenaltyB = 0.10
	ConfidenceFloor    = 0.5
	ConfidenceCeiling  = 1.0
)

// Defaults substituted for absent sub-scores. A missing questionnaire
// legitimately scores zero; missing goal or behavioral signals default
// to neutral.
const (
	DefaultQScore = 0.0
	DefaultGScore = 50.0
	DefaultBScore = 50.0
)

// Categorize maps a risk score onto the fixed category ladder.
func Categorize(score float64) string {
	switch {
	case score < ConservativeUpperBound:
		return CategoryConservative
	case score < ModerateUpperBound:
		return CategoryModerate
	default:
		return CategoryAggressive
	}
}

// Aggregate combines the three sub-scores and the cultural modifier
// into the comprehensive assessment. Pure function: missing inputs
// degrade via defaults, never errors.
func Aggregate(q, g, b *float64, culturalModifier float64) Assessment {
	qv := DefaultQScore
	if q != nil {
		qv = *q
	}
	gv := DefaultGScore
	if g != nil {
		gv = *g
	}
	bv := DefaultBScore
	if b != nil {
		bv = *b
	}

	base := qv*WeightQ + gv*WeightG + bv*WeightB
	final := formulas.Clamp(base*culturalModifier, 0, 100)

	confidence := ConfidenceBase
	if q == nil || *q == 0 {
		confidence -= ConfidencePenaltyQ
	}
	if g == nil || *g == 0 {
		confidence -= ConfidencePenaltyG
	}
	if b == nil || *b == 0 {
		confidence -= ConfidencePenaltyB
	}
	confidence = formulas.Clamp(confidence, ConfidenceFloor, ConfidenceCeiling)

	return Assessment{
		RiskScore:    formulas.Round2(final),
		RiskCategory: Categorize(final),
		Confidence:   formulas.Round2(confidence),
		Factors: Factors{
			QScore:           qv,
			GScore:           gv,
			BScore:           bv,
			CulturalModifier: culturalModifier,
			BaseScore:        formulas.Round2(base),
		},
	}
}
