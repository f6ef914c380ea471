package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestCategorize(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{0, CategoryConservative},
		{29.99, CategoryConservative},
		{30, CategoryModerate},
		{50, CategoryModerate},
		{69.99, CategoryModerate},
		{70, CategoryAggressive},
		{100, CategoryAggressive},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Categorize(tt.score), "score %.2f", tt.score)
	}
}

func TestAggregateWeightedFormula(t *testing.T) {
	tests := []struct {
		name     string
		q, g, b  float64
		modifier float64
		score    float64
		category string
	}{
		{"all neutral", 50, 50, 50, 1.0, 50, CategoryModerate},
		{"aggressive everything", 100, 100, 100, 1.0, 100, CategoryAggressive},
		{"conservative everything", 10, 10, 10, 1.0, 10, CategoryConservative},
		{"weighted mix", 80, 60, 40, 1.0, 63, CategoryModerate},
		{"modifier applied", 50, 50, 50, 1.1, 55, CategoryModerate},
		{"modifier pushes over ladder", 70, 70, 70, 1.05, 73.5, CategoryAggressive},
		{"clamped at ceiling", 100, 100, 100, 1.5, 100, CategoryAggressive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Aggregate(ptr(tt.q), ptr(tt.g), ptr(tt.b), tt.modifier)

			assert.InDelta(t, tt.score, result.RiskScore, 1e-9)
			assert.Equal(t, tt.category, result.RiskCategory)
			assert.InDelta(t, tt.q*WeightQ+tt.g*WeightG+tt.b*WeightB, result.Factors.BaseScore, 0.005)
		})
	}
}

func TestAggregateDefaults(t *testing.T) {
	// Missing questionnaire scores zero, missing goal and behavioral
	// signals score neutral.
	result := Aggregate(nil, nil, nil, 1.0)

	assert.InDelta(t, 0.0, result.Factors.QScore, 1e-9)
	assert.InDelta(t, 50.0, result.Factors.GScore, 1e-9)
	assert.InDelta(t, 50.0, result.Factors.BScore, 1e-9)
	assert.InDelta(t, 30.0, result.RiskScore, 1e-9) // 0.35*50 + 0.25*50
	assert.Equal(t, CategoryModerate, result.RiskCategory)
}

func TestAggregateConfidence(t *testing.T) {
	tests := []struct {
		name       string
		q, g, b    *float64
		confidence float64
	}{
		{"all present", ptr(60), ptr(50), ptr(40), 0.8},
		{"q missing", nil, ptr(50), ptr(40), 0.6},
		{"q zero counts as missing", ptr(0), ptr(50), ptr(40), 0.6},
		{"g missing", ptr(60), nil, ptr(40), 0.65},
		{"b missing", ptr(60), ptr(50), nil, 0.7},
		{"all missing clamps to floor", nil, nil, nil, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Aggregate(tt.q, tt.g, tt.b, 1.0)
			assert.InDelta(t, tt.confidence, result.Confidence, 1e-9)
		})
	}
}

func TestAggregateConfidenceMonotonic(t *testing.T) {
	full := Aggregate(ptr(60), ptr(50), ptr(40), 1.0).Confidence
	noQ := Aggregate(nil, ptr(50), ptr(40), 1.0).Confidence
	noQG := Aggregate(nil, nil, ptr(40), 1.0).Confidence
	none := Aggregate(nil, nil, nil, 1.0).Confidence

	assert.GreaterOrEqual(t, full, noQ)
	assert.GreaterOrEqual(t, noQ, noQG)
	assert.GreaterOrEqual(t, noQG, none)
	assert.GreaterOrEqual(t, none, ConfidenceFloor)
	assert.LessOrEqual(t, full, ConfidenceCeiling)
}
