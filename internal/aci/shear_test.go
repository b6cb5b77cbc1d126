package aci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallShear(t *testing.T) {
	// Squat pier: hw/lw = 1.07, αc = 0.25
	r, err := WallShear(3000, 250, 3200, 28, 420, 0.0025, 650)
	require.NoError(t, err)

	assert.InDelta(t, 0.25, r.AlphaC, 1e-9)
	assert.InDelta(t, 1779.7, r.Vn, 0.5)
	assert.InDelta(t, 1334.7, r.PhiVn, 0.5)
	assert.InDelta(t, 0.487, r.DCR, 0.001)
}

func TestWallShearAlphaC(t *testing.T) {
	tests := []struct {
		hw, lw float64
		want   float64
	}{
		{3000, 3000, 0.25},  // aspect 1.0
		{4500, 3000, 0.25},  // aspect 1.5 boundary
		{5250, 3000, 0.21},  // aspect 1.75 interpolated
		{6000, 3000, 0.17},  // aspect 2.0 boundary
		{12000, 3000, 0.17}, // slender
	}
	for _, tt := range tests {
		r, err := WallShear(tt.lw, 250, tt.hw, 28, 420, 0.0025, 100)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, r.AlphaC, 1e-9, "hw/lw=%.2f", tt.hw/tt.lw)
	}
}

func TestWallShearUpperBound(t *testing.T) {
	// Heavy web steel: capacity is capped at 0.66·√f'c·Acv
	r, err := WallShear(3000, 250, 3200, 28, 420, 0.02, 650)
	require.NoError(t, err)

	assert.InDelta(t, 2619.0, r.Vn, 0.5)
}

func TestWallShearMoreSteelLowerDCR(t *testing.T) {
	light, err := WallShear(3000, 250, 3200, 28, 420, 0.0025, 1500)
	require.NoError(t, err)
	heavy, err := WallShear(3000, 250, 3200, 28, 420, 0.005, 1500)
	require.NoError(t, err)

	assert.Less(t, heavy.DCR, light.DCR)
}

func TestWallShearInvalidInput(t *testing.T) {
	_, err := WallShear(0, 250, 3200, 28, 420, 0.0025, 650)
	assert.Error(t, err)

	_, err = WallShear(3000, 250, 3200, 0, 420, 0.0025, 650)
	assert.Error(t, err)

	_, err = WallShear(3000, 250, 3200, 28, 420, 0.0025, 0)
	assert.Error(t, err)
}
