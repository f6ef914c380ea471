package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVolumeRatio(t *testing.T) {
	tests := []struct {
		name     string
		volumes  []float64
		expected float64
	}{
		{"empty series", nil, 1.0},
		{"single bar", []float64{1000}, 1.0},
		{"flat volume", []float64{1000, 1000, 1000}, 1.0},
		{"double average", []float64{1000, 1000, 2000}, 2.0},
		{"half average", []float64{1000, 1000, 500}, 0.5},
		{"zero average guarded", []float64{0, 0, 1000}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, VolumeRatio(tt.volumes, volumeRatioLookback), 1e-9)
		})
	}
}

func TestVolumeRatioWindowExcludesLatest(t *testing.T) {
	// Lookback 2: the window is the two bars before the latest.
	volumes := []float64{9999, 100, 300, 400}
	// avg(100, 300) = 200; 400 / 200 = 2
	assert.InDelta(t, 2.0, VolumeRatio(volumes, 2), 1e-9)
}
