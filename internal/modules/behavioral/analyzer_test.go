package behavioral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestAnalyzeQuietMetrics(t *testing.T) {
	analysis := Analyze(Metrics{UserID: 1})

	assert.Empty(t, analysis.Insights)
	assert.Empty(t, analysis.Recommendations)
	assert.Empty(t, analysis.RiskAdjustments)

	// Slices and map must be initialized so JSON encodes [] and {}.
	require.NotNil(t, analysis.Insights)
	require.NotNil(t, analysis.Recommendations)
	require.NotNil(t, analysis.RiskAdjustments)
}

func TestAnalyzeCheckFrequency(t *testing.T) {
	tests := []struct {
		name      string
		frequency int
		fires     bool
	}{
		{"below threshold", 3, false},
		{"at threshold", 5, false},
		{"above threshold", 6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := Analyze(Metrics{PortfolioCheckFrequency: tt.frequency})

			if !tt.fires {
				assert.Empty(t, analysis.Insights)
				assert.Empty(t, analysis.RiskAdjustments)
				return
			}

			require.Len(t, analysis.Insights, 1)
			assert.Equal(t, "warning", analysis.Insights[0].Type)
			assert.Equal(t, "medium", analysis.Insights[0].Severity)
			assert.InDelta(t, CheckFrequencyImpact, analysis.RiskAdjustments["check_frequency_impact"], 1e-9)
		})
	}
}

func TestAnalyzeTurnover(t *testing.T) {
	analysis := Analyze(Metrics{PortfolioTurnoverRate: 0.75})

	require.Len(t, analysis.Insights, 1)
	assert.Equal(t, "high", analysis.Insights[0].Severity)

	require.Len(t, analysis.Recommendations, 1)
	assert.Equal(t, "reduce_trading", analysis.Recommendations[0].Action)
	assert.Equal(t, "high", analysis.Recommendations[0].Priority)
}

func TestAnalyzeLifeEvent(t *testing.T) {
	analysis := Analyze(Metrics{MajorLifeEventOccurred: true})

	require.Len(t, analysis.Insights, 1)
	assert.Equal(t, "info", analysis.Insights[0].Type)
	assert.InDelta(t, LifeEventImpactDelta, analysis.RiskAdjustments["life_event_impact"], 1e-9)
}

func TestAnalyzeSentimentVariance(t *testing.T) {
	calm := Analyze(Metrics{SentimentVariance: floatPtr(0.2)})
	assert.Empty(t, calm.Insights)

	volatile := Analyze(Metrics{SentimentVariance: floatPtr(0.4)})
	require.Len(t, volatile.Insights, 1)
	assert.Equal(t, "warning", volatile.Insights[0].Type)
}

func TestAnalyzeEmailTone(t *testing.T) {
	// Missing tone defaults to neutral and stays silent.
	assert.Empty(t, Analyze(Metrics{}).Insights)

	negative := Analyze(Metrics{EmailTonePositiveRatio: floatPtr(0.2)})
	require.Len(t, negative.Insights, 1)
	assert.Equal(t, "low", negative.Insights[0].Severity)
}

func TestAnalyzeVolatilityReaction(t *testing.T) {
	moderate := Analyze(Metrics{ReactionToMarketVolatility: "moderate"})
	assert.Empty(t, moderate.Recommendations)

	aggressive := Analyze(Metrics{ReactionToMarketVolatility: "aggressive"})
	require.Len(t, aggressive.Recommendations, 1)
	assert.Equal(t, "review_risk_tolerance", aggressive.Recommendations[0].Action)
	assert.Equal(t, "medium", aggressive.Recommendations[0].Priority)
}

func TestAnalyzeRulesAreIndependent(t *testing.T) {
	analysis := Analyze(Metrics{
		PortfolioCheckFrequency:    10,
		PortfolioTurnoverRate:      0.8,
		MajorLifeEventOccurred:     true,
		SentimentVariance:          floatPtr(0.5),
		EmailTonePositiveRatio:     floatPtr(0.1),
		ReactionToMarketVolatility: "aggressive",
	})

	assert.Len(t, analysis.Insights, 5)
	assert.Len(t, analysis.Recommendations, 2)
	assert.Len(t, analysis.RiskAdjustments, 2)
}
