package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQScore(t *testing.T) {
	tests := []struct {
		name     string
		answers  map[string]interface{}
		expected float64
	}{
		{"empty answers", map[string]interface{}{}, 0.0},
		{"nil answers", nil, 0.0},
		{"all maximum", map[string]interface{}{"q1": 5.0, "q2": 5.0}, 100.0},
		{"all minimum", map[string]interface{}{"q1": 1.0, "q2": 1.0}, 20.0},
		{"mixed answers", map[string]interface{}{"q1": 3.0, "q2": 4.0, "q3": 5.0}, 80.0},
		{"non-numeric ignored", map[string]interface{}{"q1": 5.0, "q2": "prefer not to say"}, 100.0},
		{"only non-numeric", map[string]interface{}{"q1": "yes", "q2": "no"}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, QScore(tt.answers), 1e-9)
		})
	}
}

func TestGScore(t *testing.T) {
	tests := []struct {
		name     string
		horizons []float64
		expected float64
	}{
		{"no goals defaults neutral", nil, 50.0},
		{"short horizon", []float64{1.5}, 30.0},
		{"medium horizon", []float64{5.0}, 50.0},
		{"long horizon", []float64{12.0}, 70.0},
		{"bucket boundaries", []float64{3.0, 7.0}, 60.0}, // 3y is medium, 7y is long
		{"mixed horizons", []float64{1.0, 5.0, 10.0}, 50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, GScore(tt.horizons), 1e-9)
		})
	}
}

func TestBScore(t *testing.T) {
	tests := []struct {
		name     string
		input    *BehavioralInput
		expected float64
	}{
		{"no telemetry", nil, 50.0},
		// Field defaults: 1 check/day (+10) and zero turnover (-15).
		{"empty input takes defaults", &BehavioralInput{}, 45.0},
		{
			"frequent checker",
			&BehavioralInput{PortfolioCheckFrequency: intPtr(8), PortfolioTurnoverRate: ptr(0.3)},
			40.0,
		},
		{
			"rare checker high turnover",
			&BehavioralInput{PortfolioCheckFrequency: intPtr(1), PortfolioTurnoverRate: ptr(0.8)},
			75.0,
		},
		{
			"life event",
			&BehavioralInput{PortfolioCheckFrequency: intPtr(3), PortfolioTurnoverRate: ptr(0.3), MajorLifeEventOccurred: true},
			30.0,
		},
		{
			"everything conservative clamps above zero",
			&BehavioralInput{PortfolioCheckFrequency: intPtr(10), PortfolioTurnoverRate: ptr(0.05), MajorLifeEventOccurred: true},
			5.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, BScore(tt.input), 1e-9)
		})
	}
}
