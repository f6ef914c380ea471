package risk

import (
	"strings"

	"github.com/nivesh/planner-go/pkg/formulas"
)

// regionalFactors adjusts risk appetite by region. Unrecognized
// regions are treated as neutral.
var regionalFactors = map[string]float64{
	"north":   0.95,
	"south":   1.05,
	"east":    0.98,
	"west":    1.02,
	"central": 0.97,
}

// Age and income bands for the demographic factor.
const (
	youngAgeBound  = 30
	middleAgeBound = 45

	youngAgeFactor  = 1.05
	middleAgeFactor = 1.0
	seniorAgeFactor = 0.95

	highIncomeBound = 1_000_000.0
	midIncomeBound  = 500_000.0

	highIncomeFactor = 1.03
	midIncomeFactor  = 1.0
	lowIncomeFactor  = 0.97
)

// Tradition bands: heavy gold/real-estate allocation signals a
// traditional, conservative household.
const (
	traditionalAllocationHigh = 0.5
	traditionalAllocationMid  = 0.3

	traditionFactorHigh = 0.95
	traditionFactorMid  = 0.98
	jointFamilyFactor   = 0.98
)

// Demographic defaults substituted for absent fields.
const (
	defaultAge                  = 35
	defaultIncome               = 500_000.0
	defaultGoldRatio            = 0.1
	defaultRealEstateAllocation = 0.3
)

// CulturalFactors derives the multiplicative cultural modifier from a
// demographics record. A nil record yields all-neutral factors.
func CulturalFactors(d *Demographics) CulturalModifiers {
	if d == nil {
		return CulturalModifiers{
			BaseModifier:      1.0,
			RegionalFactor:    1.0,
			DemographicFactor: 1.0,
			TraditionFactor:   1.0,
			CulturalModifier:  1.0,
		}
	}

	regionalFactor := 1.0
	if f, ok := regionalFactors[strings.ToLower(d.Region)]; ok {
		regionalFactor = f
	}

	age := defaultAge
	if d.Age != nil {
		age = *d.Age
	}
	ageFactor := seniorAgeFactor
	if age < youngAgeBound {
		ageFactor = youngAgeFactor
	} else if age < middleAgeBound {
		ageFactor = middleAgeFactor
	}

	income := defaultIncome
	if d.Income != nil {
		income = *d.Income
	}
	incomeFactor := lowIncomeFactor
	if income > highIncomeBound {
		incomeFactor = highIncomeFactor
	} else if income > midIncomeBound {
		incomeFactor = midIncomeFactor
	}

	demographicFactor := (ageFactor + incomeFactor) / 2

	goldRatio := defaultGoldRatio
	if d.GoldInvestmentRatio != nil {
		goldRatio = *d.GoldInvestmentRatio
	}
	realEstate := defaultRealEstateAllocation
	if d.RealEstateAllocation != nil {
		realEstate = *d.RealEstateAllocation
	}

	traditionFactor := 1.0
	traditionalAllocation := goldRatio + realEstate
	if traditionalAllocation > traditionalAllocationHigh {
		traditionFactor = traditionFactorHigh
	} else if traditionalAllocation > traditionalAllocationMid {
		traditionFactor = traditionFactorMid
	}

	familyFactor := 1.0
	if d.JointFamilyStatus {
		familyFactor = jointFamilyFactor
	}
	traditionFactor *= familyFactor

	baseModifier := 1.0
	culturalModifier := baseModifier * regionalFactor * demographicFactor * traditionFactor

	return CulturalModifiers{
		BaseModifier:      baseModifier,
		RegionalFactor:    formulas.Round4(regionalFactor),
		DemographicFactor: formulas.Round4(demographicFactor),
		TraditionFactor:   formulas.Round4(traditionFactor),
		CulturalModifier:  formulas.Round4(culturalModifier),
	}
}
