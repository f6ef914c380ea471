package goals

import (
	"math"
	"testing"
	"time"
)

var (
	now = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	// Exactly 1.0 years under the 365.25-day convention.
	oneYearOut = now.Add(time.Duration(365.25 * 24 * float64(time.Hour)))
)

func TestYearsToGoal(t *testing.T) {
	tests := []struct {
		name   string
		target time.Time
		want   float64
	}{
		{"one year out", now.AddDate(1, 0, 0), 1.0},
		{"past due", now.AddDate(-1, 0, 0), -1.0},
		{"today", now, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := YearsToGoal(tt.target, now)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("YearsToGoal() = %v, want ~%v", got, tt.want)
			}
		})
	}
}

func TestAchievementProbability(t *testing.T) {
	tests := []struct {
		name string
		goal Goal
		want float64
	}{
		{
			name: "past due and met",
			goal: Goal{TargetAmount: 1000, CurrentAmount: 1200, TargetDate: now.AddDate(-1, 0, 0)},
			want: 1.0,
		},
		{
			name: "past due and missed",
			goal: Goal{TargetAmount: 1000, CurrentAmount: 500, TargetDate: now.AddDate(-1, 0, 0)},
			want: 0.0,
		},
		{
			// required return = (1100-1000)/1000/1 = 0.10 → easy bucket
			name: "required return exactly 10 percent",
			goal: Goal{TargetAmount: 1100, CurrentAmount: 1000, TargetDate: oneYearOut},
			want: 0.90,
		},
		{
			// required return = (1150-1000)/1000/1 = 0.15 → modest bucket
			name: "required return exactly 15 percent",
			goal: Goal{TargetAmount: 1150, CurrentAmount: 1000, TargetDate: oneYearOut},
			want: 0.85,
		},
		{
			// required return = 0.30 → 0.90 - 0.15*2 = 0.60
			name: "required return 30 percent",
			goal: Goal{TargetAmount: 1300, CurrentAmount: 1000, TargetDate: oneYearOut},
			want: 0.60,
		},
		{
			// required return = 2.0 → floor
			name: "unreachable goal hits floor",
			goal: Goal{TargetAmount: 3000, CurrentAmount: 1000, TargetDate: oneYearOut},
			want: 0.50,
		},
		{
			// no savings yet → fallback 0.15 → 0.85
			name: "zero current amount uses fallback return",
			goal: Goal{TargetAmount: 1000, CurrentAmount: 0, TargetDate: oneYearOut},
			want: 0.85,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AchievementProbability(tt.goal, now)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AchievementProbability() = %v, want ~%v", got, tt.want)
			}
		})
	}
}

func TestBuildProgressReport(t *testing.T) {
	goalList := []Goal{
		{TargetAmount: 1000, CurrentAmount: 1200, TargetDate: now.AddDate(-1, 0, 0)}, // 1.0
		{TargetAmount: 1000, CurrentAmount: 500, TargetDate: now.AddDate(-1, 0, 0)},  // 0.0
	}

	report := BuildProgressReport(goalList, now)

	if len(report.Goals) != 2 {
		t.Fatalf("got %d goals, want 2", len(report.Goals))
	}
	if report.Goals[0].AchievementProbability != 1.0 {
		t.Errorf("first goal probability = %v, want 1.0", report.Goals[0].AchievementProbability)
	}
	if math.Abs(report.AchievementProbability-0.5) > 1e-9 {
		t.Errorf("overall probability = %v, want 0.5", report.AchievementProbability)
	}

	var sum float64
	for _, w := range report.RecommendedAllocations {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("recommended allocations sum to %v, want 1.0", sum)
	}
}

func TestBuildProgressReportEmpty(t *testing.T) {
	report := BuildProgressReport(nil, now)

	if len(report.Goals) != 0 {
		t.Errorf("got %d goals, want 0", len(report.Goals))
	}
	if report.AchievementProbability != 0 {
		t.Errorf("overall probability = %v, want 0", report.AchievementProbability)
	}
}
