package risk

// Life-event impact: every high-impact event shaves 5% off the stored
// risk score, with a hard floor. This multiplicative mechanism is
// separate from the analyzer's advisory life_event_impact delta; the
// two operate on different surfaces and must stay independent.
const (
	LifeEventImpactPerEvent = 0.05
	LifeEventImpactFloor    = 0.7
	highImpact              = "high"
)

// LifeEventImpact computes the multiplicative factor applied to the
// stored risk score. No events, or no high-impact events, leaves the
// score untouched.
func LifeEventImpact(events []LifeEvent) float64 {
	if len(events) == 0 {
		return 1.0
	}

	highCount := 0
	for _, e := range events {
		if e.Impact == highImpact {
			highCount++
		}
	}

	impact := 1.0 - float64(highCount)*LifeEventImpactPerEvent
	if impact < LifeEventImpactFloor {
		impact = LifeEventImpactFloor
	}
	return impact
}
