package goals

import (
	"time"

	"github.com/nivesh/planner-go/pkg/formulas"
)

// Achievement probability mapping. The probability is a deterministic
// piecewise function of the annual return required to close the gap
// between current and target amount before the target date.
const (
	// DaysPerYear converts a calendar span into fractional years.
	DaysPerYear = 365.25

	// FallbackRequiredReturn is assumed when the goal has no savings yet,
	// so the required-return ratio is undefined.
	FallbackRequiredReturn = 0.15

	easyReturnThreshold    = 0.10
	modestReturnThreshold  = 0.15
	easyReturnProbability  = 0.90
	modestReturnProbabilty = 0.85
	probabilityFloor       = 0.50
	probabilitySlope       = 2.0
)

// YearsToGoal returns the fractional number of years between now and the
// target date. Negative when the target date has passed.
func YearsToGoal(targetDate, now time.Time) float64 {
	return targetDate.Sub(now).Hours() / 24 / DaysPerYear
}

// AchievementProbability estimates the likelihood of reaching a goal.
//
// Past-due goals are binary: met or not. Otherwise the required annual
// return is mapped onto a piecewise-linear probability with a 0.50 floor.
func AchievementProbability(g Goal, now time.Time) float64 {
	years := YearsToGoal(g.TargetDate, now)

	if years <= 0 {
		if g.CurrentAmount >= g.TargetAmount {
			return 1.0
		}
		return 0.0
	}

	requiredReturn := FallbackRequiredReturn
	if g.CurrentAmount > 0 {
		requiredReturn = (g.TargetAmount - g.CurrentAmount) / g.CurrentAmount / years
	}

	switch {
	case requiredReturn <= easyReturnThreshold:
		return easyReturnProbability
	case requiredReturn <= modestReturnThreshold:
		return modestReturnProbabilty
	default:
		p := easyReturnProbability - (requiredReturn-modestReturnThreshold)*probabilitySlope
		if p < probabilityFloor {
			return probabilityFloor
		}
		return p
	}
}

// BuildProgressReport annotates each goal with its achievement probability
// and averages them into an overall probability. An empty goal list yields
// an overall probability of 0.
func BuildProgressReport(goalList []Goal, now time.Time) ProgressReport {
	progress := make([]GoalProgress, 0, len(goalList))
	overall := 0.0

	for _, g := range goalList {
		p := AchievementProbability(g, now)
		progress = append(progress, GoalProgress{
			Goal:                   g,
			AchievementProbability: formulas.Round4(p),
		})
		overall += p
	}

	if len(progress) > 0 {
		overall /= float64(len(progress))
	}

	return ProgressReport{
		Goals:                  progress,
		AchievementProbability: formulas.Round4(overall),
		RecommendedAllocations: map[string]float64{
			"equity":        0.50,
			"debt":          0.30,
			"gold":          0.10,
			"international": 0.10,
		},
	}
}
