package aci

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxWebSpacing(t *testing.T) {
	assert.InDelta(t, 450, MaxWebSpacing(3000, 250), 1e-9, "absolute cap governs")
	assert.InDelta(t, 300, MaxWebSpacing(900, 250), 1e-9, "lw/3 governs")
	assert.InDelta(t, 300, MaxWebSpacing(3000, 100), 1e-9, "3t governs")
}

func TestBoundaryElementRequired(t *testing.T) {
	assert.True(t, BoundaryElementRequired(5.7, 28))
	assert.False(t, BoundaryElementRequired(5.6, 28), "threshold is exclusive")
	assert.False(t, BoundaryElementRequired(3.0, 28))
}

func TestExtremeFiberStress(t *testing.T) {
	// 3000×250 section, P=1000 kN, M=500 kN-m:
	// σ = P/Ag + M·c/Ig = 1.333 + 1.333
	assert.InDelta(t, 2.667, ExtremeFiberStress(3000, 250, 1000, 500), 0.001)

	assert.InDelta(t, 0, ExtremeFiberStress(3000, 250, 0, 0), 1e-9)
}

func TestSlendernessFactor(t *testing.T) {
	tests := []struct {
		hw, t float64
		want  float64
	}{
		{3200, 250, 1.0},  // hw/t = 12.8, stocky
		{4000, 250, 1.0},  // hw/t = 16 exactly
		{4000, 150, 0.68}, // hw/t = 26.7
		{10000, 150, 0.5}, // floored
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, SlendernessFactor(tt.hw, tt.t), 0.001, "hw/t=%.1f", tt.hw/tt.t)
	}
}

func TestStirrupMaxSpacing(t *testing.T) {
	assert.InDelta(t, 60, StirrupMaxSpacing(250, 10), 1e-9, "6db governs")
	assert.InDelta(t, 100, StirrupMaxSpacing(300, 32), 1e-9, "t/3 governs")
	assert.InDelta(t, 150, StirrupMaxSpacing(600, 32), 1e-9, "absolute cap governs")
}
