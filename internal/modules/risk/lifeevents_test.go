package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifeEventImpact(t *testing.T) {
	tests := []struct {
		name     string
		events   []LifeEvent
		expected float64
	}{
		{"no events", nil, 1.0},
		{"only low impact", []LifeEvent{{EventType: "new_job", Impact: "low"}}, 1.0},
		{"one high impact", []LifeEvent{{EventType: "job_loss", Impact: "high"}}, 0.95},
		{
			"three high impact",
			[]LifeEvent{
				{EventType: "job_loss", Impact: "high"},
				{EventType: "divorce", Impact: "high"},
				{EventType: "medical", Impact: "high"},
			},
			0.85,
		},
		{
			"floor at seven high impact",
			[]LifeEvent{
				{Impact: "high"}, {Impact: "high"}, {Impact: "high"}, {Impact: "high"},
				{Impact: "high"}, {Impact: "high"}, {Impact: "high"},
			},
			LifeEventImpactFloor,
		},
		{
			"mixed impacts count only high",
			[]LifeEvent{
				{EventType: "job_loss", Impact: "high"},
				{EventType: "move", Impact: "medium"},
				{EventType: "new_pet", Impact: "low"},
			},
			0.95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, LifeEventImpact(tt.events), 1e-9)
		})
	}
}
