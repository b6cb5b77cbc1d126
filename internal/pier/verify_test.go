package pier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckerFlexureSF(t *testing.T) {
	p := testPier()
	sf, err := Checker{}.FlexureSF(p, Forces{Pu: 500, Mu: 800})
	require.NoError(t, err)

	// Hand calculation for 2φ20 boundary + φ10@250 double mesh, no
	// slenderness knockdown at hw/t = 12.8.
	assert.InDelta(t, 2.097, sf, 0.005)
}

func TestCheckerFlexureSFSlendernessKnockdown(t *testing.T) {
	p := testPier()
	f := Forces{Pu: 500, Mu: 800}

	stocky, err := Checker{}.FlexureSF(p, f)
	require.NoError(t, err)

	thin := testPier()
	thin.Height = 6000 // hw/t = 24
	slender, err := Checker{}.FlexureSF(thin, f)
	require.NoError(t, err)

	assert.Less(t, slender, stocky)
}

func TestCheckerShearDCR(t *testing.T) {
	p := testPier()
	dcr, err := Checker{}.ShearDCR(p, Forces{Vu: 650})
	require.NoError(t, err)

	assert.InDelta(t, 0.486, dcr, 0.001)
}

func TestCheckerInvalidDemand(t *testing.T) {
	p := testPier()

	_, err := Checker{}.FlexureSF(p, Forces{Pu: 500, Mu: 0})
	assert.Error(t, err)

	_, err = Checker{}.ShearDCR(p, Forces{Vu: -10})
	assert.Error(t, err)
}

func TestCheckSpacing(t *testing.T) {
	p := testPier()
	checks := CheckSpacing(p)
	require.Len(t, checks, 2)
	for _, c := range checks {
		assert.True(t, c.OK, c.Name)
		assert.InDelta(t, 450, c.Limit, 1e-9)
	}

	p.SpacingV = 500
	checks = CheckSpacing(p)
	assert.False(t, checks[0].OK)
	assert.True(t, checks[1].OK)
}

func TestCheckMinReinforcement(t *testing.T) {
	p := testPier()
	for _, c := range CheckMinReinforcement(p) {
		assert.True(t, c.OK, c.Name)
	}

	p.SpacingV = 400 // ρv = 0.00157 < 0.0025
	checks := CheckMinReinforcement(p)
	assert.False(t, checks[0].OK)
	assert.True(t, checks[1].OK)
}

func TestBoundaryRequired(t *testing.T) {
	p := testPier()

	// σ = P/Ag + M·c/Ig; light demand stays under 0.2·f'c = 5.6 MPa
	assert.False(t, BoundaryRequired(p, Forces{Pu: 1000, Mu: 500}))

	// Heavy in-plane moment pushes the edge stress past the trigger
	assert.True(t, BoundaryRequired(p, Forces{Pu: 2000, Mu: 2500}))
}

func TestSlendernessReduction(t *testing.T) {
	p := testPier()
	assert.InDelta(t, 1.0, SlendernessReduction(p), 1e-9)

	p.Thickness = 150 // hw/t = 21.3
	assert.InDelta(t, 0.84, SlendernessReduction(p), 0.001)
}
