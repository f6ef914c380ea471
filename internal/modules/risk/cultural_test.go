package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestCulturalFactorsNilDemographics(t *testing.T) {
	modifiers := CulturalFactors(nil)

	assert.Equal(t, 1.0, modifiers.BaseModifier)
	assert.Equal(t, 1.0, modifiers.RegionalFactor)
	assert.Equal(t, 1.0, modifiers.DemographicFactor)
	assert.Equal(t, 1.0, modifiers.TraditionFactor)
	assert.Equal(t, 1.0, modifiers.CulturalModifier)
}

func TestCulturalFactorsRegional(t *testing.T) {
	tests := []struct {
		region string
		factor float64
	}{
		{"north", 0.95},
		{"south", 1.05},
		{"east", 0.98},
		{"west", 1.02},
		{"central", 0.97},
		{"SOUTH", 1.05}, // case-insensitive
		{"overseas", 1.0},
		{"", 1.0},
	}

	for _, tt := range tests {
		t.Run("region "+tt.region, func(t *testing.T) {
			modifiers := CulturalFactors(&Demographics{Region: tt.region})
			assert.InDelta(t, tt.factor, modifiers.RegionalFactor, 1e-9)
		})
	}
}

func TestCulturalFactorsDemographic(t *testing.T) {
	tests := []struct {
		name   string
		age    int
		income float64
		factor float64
	}{
		{"young high earner", 25, 1_500_000, (1.05 + 1.03) / 2},
		{"young low earner", 25, 300_000, (1.05 + 0.97) / 2},
		{"middle aged mid income", 40, 700_000, (1.0 + 1.0) / 2},
		{"senior low earner", 60, 400_000, (0.95 + 0.97) / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			modifiers := CulturalFactors(&Demographics{Age: intPtr(tt.age), Income: ptr(tt.income)})
			assert.InDelta(t, tt.factor, modifiers.DemographicFactor, 1e-4)
		})
	}
}

func TestCulturalFactorsTradition(t *testing.T) {
	tests := []struct {
		name       string
		gold       float64
		realEstate float64
		joint      bool
		factor     float64
	}{
		{"light traditional allocation", 0.05, 0.1, false, 1.0},
		{"moderate traditional allocation", 0.2, 0.2, false, 0.98},
		{"heavy traditional allocation", 0.3, 0.3, false, 0.95},
		{"joint family alone", 0.05, 0.1, true, 0.98},
		{"heavy allocation and joint family", 0.3, 0.3, true, 0.95 * 0.98},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			modifiers := CulturalFactors(&Demographics{
				GoldInvestmentRatio:  ptr(tt.gold),
				RealEstateAllocation: ptr(tt.realEstate),
				JointFamilyStatus:    tt.joint,
			})
			assert.InDelta(t, tt.factor, modifiers.TraditionFactor, 1e-4)
		})
	}
}

func TestCulturalModifierIsProductOfFactors(t *testing.T) {
	modifiers := CulturalFactors(&Demographics{
		Region:               "south",
		Age:                  intPtr(28),
		Income:               ptr(1_200_000.0),
		JointFamilyStatus:    true,
		GoldInvestmentRatio:  ptr(0.25),
		RealEstateAllocation: ptr(0.3),
	})

	product := modifiers.BaseModifier * modifiers.RegionalFactor *
		modifiers.DemographicFactor * modifiers.TraditionFactor
	assert.InDelta(t, product, modifiers.CulturalModifier, 1e-3)
}

func TestCulturalFactorsDefaults(t *testing.T) {
	// Absent fields fall back to a 35-year-old on a 500k income with a
	// 0.4 combined gold and real-estate allocation.
	modifiers := CulturalFactors(&Demographics{})

	assert.InDelta(t, 1.0, modifiers.RegionalFactor, 1e-9)
	assert.InDelta(t, (1.0+0.97)/2, modifiers.DemographicFactor, 1e-4)
	assert.InDelta(t, 0.98, modifiers.TraditionFactor, 1e-4)
}
