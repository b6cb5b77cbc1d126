package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineFailureMode(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name      string
		sf        float64
		dcr       float64
		boundary  bool
		slender   float64
		checkOver bool
		want      FailureMode
	}{
		{"compliant", 1.2, 0.8, false, 1.0, true, ModeNone},
		{"combined dominates", 0.8, 1.2, false, 1.0, true, ModeCombined},
		{"combined dominates slenderness", 0.8, 1.2, false, 0.5, true, ModeCombined},
		{"slenderness before plain flexure", 0.9, 0.8, false, 0.6, true, ModeSlenderness},
		{"plain flexure", 0.9, 0.8, false, 1.0, true, ModeFlexure},
		{"plain shear", 1.2, 1.1, false, 1.0, true, ModeShear},
		{"confinement only when passing", 1.2, 0.8, true, 1.0, true, ModeConfinement},
		{"flexure beats confinement", 0.9, 0.8, true, 1.0, true, ModeFlexure},
		{"overdesigned at exact thresholds", 1.5, 0.7, false, 1.0, true, ModeOverdesigned},
		{"just under overdesign sf", 1.49, 0.7, false, 1.0, true, ModeNone},
		{"just over overdesign dcr", 1.5, 0.71, false, 1.0, true, ModeNone},
		{"overdesign check disabled", 1.8, 0.5, false, 1.0, false, ModeNone},
		{"slenderness at limit is plain flexure", 0.9, 0.8, false, 0.7, true, ModeFlexure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := th.DetermineFailureMode(tt.sf, tt.dcr, tt.boundary, tt.slender, tt.checkOver)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetermineFailureModeIdempotent(t *testing.T) {
	th := DefaultThresholds()
	first := th.DetermineFailureMode(0.8, 1.2, true, 0.5, true)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, th.DetermineFailureMode(0.8, 1.2, true, 0.5, true))
	}
}

func TestNeedsProposal(t *testing.T) {
	th := DefaultThresholds()

	assert.True(t, th.NeedsProposal(0.9, 0.5), "failing flexure")
	assert.True(t, th.NeedsProposal(1.2, 1.1), "failing shear")
	assert.True(t, th.NeedsProposal(1.5, 0.7), "over-designed at thresholds")
	assert.False(t, th.NeedsProposal(1.2, 0.8), "compliant, not over-designed")
	assert.False(t, th.NeedsProposal(1.49, 0.7), "just under the over-design margin")
	assert.False(t, th.NeedsProposal(1.8, 0.75), "high SF but shear demand too high for reduction")
}

func TestFailureModeString(t *testing.T) {
	assert.Equal(t, "NONE", ModeNone.String())
	assert.Equal(t, "COMBINED", ModeCombined.String())
	assert.Equal(t, "COLUMN_MIN_THICKNESS", ModeColumnMinThickness.String())
	assert.Equal(t, "UNKNOWN", FailureMode(99).String())
}
