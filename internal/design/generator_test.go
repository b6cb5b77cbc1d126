package design

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wilterwhite/ingeo-structures-sub002/internal/pier"
	"github.com/wilterwhite/ingeo-structures-sub002/internal/rebar"
)

// stubVerifier lets each test shape the response surface of the verification
// port as a function of the trial pier.
type stubVerifier struct {
	sf  func(p *pier.Pier) float64
	dcr func(p *pier.Pier) float64

	sfErr  error
	dcrErr error

	flexCalls  int
	shearCalls int
}

func (s *stubVerifier) FlexureSF(p *pier.Pier, _ pier.Forces) (float64, error) {
	s.flexCalls++
	if s.sfErr != nil {
		return 0, s.sfErr
	}
	return s.sf(p), nil
}

func (s *stubVerifier) ShearDCR(p *pier.Pier, _ pier.Forces) (float64, error) {
	s.shearCalls++
	if s.dcrErr != nil {
		return 0, s.dcrErr
	}
	return s.dcr(p), nil
}

type stubClassifier struct {
	cls pier.Classification
}

func (s stubClassifier) Classify(_ *pier.Pier) pier.Classification { return s.cls }

func wallClassification() pier.Classification {
	return pier.Classification{MinThickness: 150, MinThicknessOK: true, Aspect: 12}
}

func testPier() *pier.Pier {
	return &pier.Pier{
		Key:            "P12-S03",
		Length:         3000,
		Height:         3200,
		Thickness:      250,
		Fc:             28,
		Fy:             420,
		NEdgeBars:      2,
		EdgeBar:        rebar.Bar10,
		NMeshes:        2,
		MeshBarV:       rebar.Bar10,
		MeshBarH:       rebar.Bar10,
		SpacingV:       250,
		SpacingH:       250,
		StirrupBar:     rebar.Bar8,
		StirrupSpacing: 200,
		NStirrupLegs:   2,
		Seismic:        true,
	}
}

func constVerifier(sf, dcr float64) *stubVerifier {
	return &stubVerifier{
		sf:  func(*pier.Pier) float64 { return sf },
		dcr: func(*pier.Pier) float64 { return dcr },
	}
}

func TestGenerateProposalCompliantReturnsNil(t *testing.T) {
	g := NewGenerator(constVerifier(1.2, 0.8), stubClassifier{wallClassification()}, DefaultThresholds())

	prop, err := g.GenerateProposal(testPier(), pier.Forces{}, 1.2, 0.8, false, 1.0)
	require.NoError(t, err)
	assert.Nil(t, prop)
}

func TestGenerateProposalFlexureBoundaryUpgrade(t *testing.T) {
	// The section passes once the boundary steel reaches 2φ20 per end
	// (table entry index 3, 628 mm²). Three smaller arrangements are
	// tried and rejected first.
	v := &stubVerifier{
		sf: func(p *pier.Pier) float64 {
			if p.AsEdge()/2 >= 620 {
				return 1.10
			}
			return 0.90
		},
		dcr: func(*pier.Pier) float64 { return 0.6 },
	}
	g := NewGenerator(v, stubClassifier{wallClassification()}, DefaultThresholds())
	p := testPier()

	prop, err := g.GenerateProposal(p, pier.Forces{Pu: 800, Mu: 450, Vu: 300}, 0.85, 0.6, false, 1.0)
	require.NoError(t, err)
	require.NotNil(t, prop)

	assert.Equal(t, ModeFlexure, prop.FailureMode)
	assert.Equal(t, ProposalBoundary, prop.ProposalType)
	assert.True(t, prop.Success)
	assert.Equal(t, 4, prop.Iterations)
	assert.Equal(t, 2, prop.Proposed.NEdgeBars)
	assert.Equal(t, rebar.Bar20, prop.Proposed.EdgeBar)
	assert.InDelta(t, 1.10, prop.ProposedSF, 1e-9)
	assert.Contains(t, prop.Changes, "Boundary bars: 2φ10 → 2φ20 per end")
}

func TestGenerateProposalDoesNotMutateInput(t *testing.T) {
	v := &stubVerifier{
		sf: func(p *pier.Pier) float64 {
			if p.AsEdge()/2 >= 620 {
				return 1.10
			}
			return 0.90
		},
		dcr: func(*pier.Pier) float64 { return 0.6 },
	}
	g := NewGenerator(v, stubClassifier{wallClassification()}, DefaultThresholds())

	p := testPier()
	snapshot := p.Clone()

	_, err := g.GenerateProposal(p, pier.Forces{Pu: 800, Mu: 450, Vu: 300}, 0.85, 0.6, false, 1.0)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(snapshot, p))
}

func TestGenerateProposalDeterministic(t *testing.T) {
	mk := func() *Generator {
		v := &stubVerifier{
			sf: func(p *pier.Pier) float64 {
				if p.AsEdge()/2 >= 620 {
					return 1.10
				}
				return 0.90
			},
			dcr: func(*pier.Pier) float64 { return 0.6 },
		}
		return NewGenerator(v, stubClassifier{wallClassification()}, DefaultThresholds())
	}

	first, err := mk().GenerateProposal(testPier(), pier.Forces{}, 0.85, 0.6, false, 1.0)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := mk().GenerateProposal(testPier(), pier.Forces{}, 0.85, 0.6, false, 1.0)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(first, again))
	}
}

func TestFlexureAcceptanceMonotonic(t *testing.T) {
	// The stop-at-first-success walk is only minimal because the boundary
	// table is ordered by steel area: under a monotone verification stub,
	// every entry after the accepted one must also pass.
	sfFor := func(asPerEnd float64) float64 { return 0.5 + asPerEnd/1000 }
	v := &stubVerifier{
		sf:  func(p *pier.Pier) float64 { return sfFor(p.AsEdge() / 2) },
		dcr: func(*pier.Pier) float64 { return 0.6 },
	}
	g := NewGenerator(v, stubClassifier{wallClassification()}, DefaultThresholds())

	prop, err := g.GenerateProposal(testPier(), pier.Forces{}, 0.85, 0.6, false, 1.0)
	require.NoError(t, err)
	require.NotNil(t, prop)
	require.True(t, prop.Success)

	accepted := boundaryIndex(prop.Proposed.AsEdgePerEnd())
	require.GreaterOrEqual(t, accepted, 0)
	assert.GreaterOrEqual(t, sfFor(BoundarySequence[accepted].AreaPerEnd()), DefaultThresholds().TargetSF)
	for i := accepted + 1; i < len(BoundarySequence); i++ {
		assert.GreaterOrEqual(t, sfFor(BoundarySequence[i].AreaPerEnd()), DefaultThresholds().TargetSF,
			"entry %d must also pass once entry %d does", i, accepted)
	}
}

func TestGenerateProposalColumnMinThickness(t *testing.T) {
	cls := pier.Classification{
		IsColumn:              true,
		RequiresColumnDetails: true,
		MinThickness:          300,
		MinThicknessOK:        false,
		Aspect:                2.4,
	}
	g := NewGenerator(constVerifier(1.2, 0.8), stubClassifier{cls}, DefaultThresholds())

	p := testPier()
	p.Length = 600
	p.Thickness = 250

	// Strength results are adequate; the dimensional violation still
	// forces a proposal.
	prop, err := g.GenerateProposal(p, pier.Forces{}, 1.3, 0.6, false, 1.0)
	require.NoError(t, err)
	require.NotNil(t, prop)

	assert.Equal(t, ModeColumnMinThickness, prop.FailureMode)
	assert.Equal(t, ProposalColumnMin, prop.ProposalType)
	assert.True(t, prop.Success)
	assert.Equal(t, 1, prop.Iterations)
	assert.Equal(t, 300.0, prop.Proposed.Thickness)
	assert.Contains(t, prop.Changes, "Thickness: 250 mm → 300 mm")
}

func TestGenerateProposalColumnMinThicknessStrengthGap(t *testing.T) {
	cls := pier.Classification{
		IsColumn:       true,
		MinThickness:   300,
		MinThicknessOK: false,
		Aspect:         2.4,
	}
	g := NewGenerator(constVerifier(0.9, 0.8), stubClassifier{cls}, DefaultThresholds())

	p := testPier()
	p.Length = 600
	p.Thickness = 250

	prop, err := g.GenerateProposal(p, pier.Forces{}, 0.9, 0.8, false, 1.0)
	require.NoError(t, err)
	require.NotNil(t, prop)

	// The minimum dimension is proposed anyway, flagged as insufficient.
	assert.Equal(t, ModeColumnMinThickness, prop.FailureMode)
	assert.False(t, prop.Success)
	assert.Equal(t, 300.0, prop.Proposed.Thickness)
	require.NotEmpty(t, prop.Changes)
	assert.Equal(t, markerMoreReinf, prop.Changes[len(prop.Changes)-1])
}

func TestGenerateProposalReductionSingleStep(t *testing.T) {
	// Over-designed pier at 4φ20 per end. Stepping back one table entry
	// to 3φ20 keeps SF=1.3; the next entry down fails, and all web
	// reduction trials violate the minimum distributed ratio.
	v := &stubVerifier{
		sf: func(p *pier.Pier) float64 {
			if p.AsEdge()/2 >= 940 {
				return 1.3
			}
			return 1.0
		},
		dcr: func(*pier.Pier) float64 { return 0.6 },
	}
	g := NewGenerator(v, stubClassifier{wallClassification()}, DefaultThresholds())

	p := testPier()
	p.NEdgeBars = 4
	p.EdgeBar = rebar.Bar20

	prop, err := g.GenerateProposal(p, pier.Forces{}, 1.8, 0.5, false, 1.0)
	require.NoError(t, err)
	require.NotNil(t, prop)

	assert.Equal(t, ModeOverdesigned, prop.FailureMode)
	assert.Equal(t, ProposalReduction, prop.ProposalType)
	assert.True(t, prop.Success)
	assert.Equal(t, 3, prop.Proposed.NEdgeBars)
	assert.Equal(t, rebar.Bar20, prop.Proposed.EdgeBar)
	assert.InDelta(t, 1.3, prop.ProposedSF, 1e-9)

	// The web mesh and the thickness are untouched.
	assert.Equal(t, rebar.Bar10, prop.Proposed.MeshBarV)
	assert.Equal(t, 250, prop.Proposed.SpacingV)
	assert.Zero(t, prop.Proposed.Thickness)
}

func TestGenerateProposalReductionNothingToStrip(t *testing.T) {
	g := NewGenerator(constVerifier(1.6, 0.5), stubClassifier{wallClassification()}, DefaultThresholds())

	// Already at the bottom of every table: 2φ12 boundary, φ8@400 mesh.
	p := testPier()
	p.NEdgeBars = 2
	p.EdgeBar = rebar.Bar12
	p.MeshBarV = rebar.Bar8
	p.MeshBarH = rebar.Bar8
	p.SpacingV = 400
	p.SpacingH = 400

	prop, err := g.GenerateProposal(p, pier.Forces{}, 1.6, 0.5, false, 1.0)
	require.NoError(t, err)
	assert.Nil(t, prop)
}

func TestGenerateProposalShearTighterSpacing(t *testing.T) {
	v := &stubVerifier{
		sf: func(*pier.Pier) float64 { return 1.3 },
		dcr: func(p *pier.Pier) float64 {
			if p.SpacingH <= 150 {
				return 0.95
			}
			return 1.2
		},
	}
	g := NewGenerator(v, stubClassifier{wallClassification()}, DefaultThresholds())

	prop, err := g.GenerateProposal(testPier(), pier.Forces{}, 1.2, 1.15, false, 1.0)
	require.NoError(t, err)
	require.NotNil(t, prop)

	assert.Equal(t, ModeShear, prop.FailureMode)
	assert.Equal(t, ProposalWeb, prop.ProposalType)
	assert.True(t, prop.Success)
	assert.Equal(t, 2, prop.Iterations)
	assert.Equal(t, 150, prop.Proposed.SpacingV)
	assert.Equal(t, 150, prop.Proposed.SpacingH)
	assert.InDelta(t, 0.95, prop.ProposedDCR, 1e-9)
}

func TestGenerateProposalShearSecondCurtain(t *testing.T) {
	// Single curtain already at the tightest spacing; only a second
	// curtain brings the DCR under 1.0.
	v := &stubVerifier{
		sf: func(*pier.Pier) float64 { return 1.3 },
		dcr: func(p *pier.Pier) float64 {
			if p.NMeshes == 2 {
				return 0.9
			}
			return 1.2
		},
	}
	g := NewGenerator(v, stubClassifier{wallClassification()}, DefaultThresholds())

	p := testPier()
	p.NMeshes = 1
	p.SpacingV = 100
	p.SpacingH = 100

	prop, err := g.GenerateProposal(p, pier.Forces{}, 1.2, 1.15, false, 1.0)
	require.NoError(t, err)
	require.NotNil(t, prop)

	assert.True(t, prop.Success)
	assert.Equal(t, 2, prop.Proposed.NMeshes)
	assert.Contains(t, prop.Changes, "Curtains: 1 → 2")
}

func TestGenerateProposalShearExhaustedBestEffort(t *testing.T) {
	g := NewGenerator(constVerifier(1.2, 1.3), stubClassifier{wallClassification()}, DefaultThresholds())

	prop, err := g.GenerateProposal(testPier(), pier.Forces{}, 1.2, 1.3, false, 1.0)
	require.NoError(t, err)
	require.NotNil(t, prop)

	assert.Equal(t, ModeShear, prop.FailureMode)
	assert.Equal(t, ProposalBestEffort, prop.ProposalType)
	assert.False(t, prop.Success)
	assert.Equal(t, DefaultThresholds().BestEffortCap, prop.Iterations)
	require.NotEmpty(t, prop.Changes)
	assert.Equal(t, markerRedesign, prop.Changes[len(prop.Changes)-1])
}

func TestGenerateProposalSlendernessThickness(t *testing.T) {
	v := &stubVerifier{
		sf: func(p *pier.Pier) float64 {
			if p.Thickness >= 350 {
				return 1.2
			}
			return 0.8
		},
		dcr: func(*pier.Pier) float64 { return 0.5 },
	}
	g := NewGenerator(v, stubClassifier{wallClassification()}, DefaultThresholds())

	prop, err := g.GenerateProposal(testPier(), pier.Forces{}, 0.9, 0.5, false, 0.5)
	require.NoError(t, err)
	require.NotNil(t, prop)

	assert.Equal(t, ModeSlenderness, prop.FailureMode)
	assert.Equal(t, ProposalThickness, prop.ProposalType)
	assert.True(t, prop.Success)
	assert.Equal(t, 2, prop.Iterations)
	assert.Equal(t, 350.0, prop.Proposed.Thickness)
	assert.Contains(t, prop.Changes, "Thickness: 250 mm → 350 mm")
}

func TestGenerateProposalCombinedSweep(t *testing.T) {
	v := &stubVerifier{
		sf: func(p *pier.Pier) float64 {
			if p.AsEdge()/2 >= 600 {
				return 1.2
			}
			return 0.8
		},
		dcr: func(p *pier.Pier) float64 {
			if p.SpacingH <= 300 {
				return 0.9
			}
			return 1.1
		},
	}
	g := NewGenerator(v, stubClassifier{wallClassification()}, DefaultThresholds())

	prop, err := g.GenerateProposal(testPier(), pier.Forces{}, 0.8, 1.2, false, 1.0)
	require.NoError(t, err)
	require.NotNil(t, prop)

	assert.Equal(t, ModeCombined, prop.FailureMode)
	assert.Equal(t, ProposalCombined, prop.ProposalType)
	assert.True(t, prop.Success)

	// Cheapest acceptable combination: 3φ16 boundary at 300 mm spacing,
	// no thickness change.
	assert.Equal(t, 3, prop.Proposed.NEdgeBars)
	assert.Equal(t, rebar.Bar16, prop.Proposed.EdgeBar)
	assert.Equal(t, 300, prop.Proposed.SpacingV)
	assert.Zero(t, prop.Proposed.Thickness)
}

func TestGenerateProposalCombinedRedesignMarker(t *testing.T) {
	// Nothing in the sweep passes shear; the safety factor grows with the
	// boundary steel, so the best configuration kept is the heaviest one.
	v := &stubVerifier{
		sf: func(p *pier.Pier) float64 {
			return 0.5 + p.AsEdge()/2/10000
		},
		dcr: func(*pier.Pier) float64 { return 1.2 },
	}
	g := NewGenerator(v, stubClassifier{wallClassification()}, DefaultThresholds())

	prop, err := g.GenerateProposal(testPier(), pier.Forces{}, 0.8, 1.2, false, 1.0)
	require.NoError(t, err)
	require.NotNil(t, prop)

	assert.Equal(t, ModeCombined, prop.FailureMode)
	assert.False(t, prop.Success)
	assert.Equal(t, 6, prop.Proposed.NEdgeBars)
	assert.Equal(t, rebar.Bar32, prop.Proposed.EdgeBar)
	require.NotEmpty(t, prop.Changes)
	assert.Equal(t, markerRedesign, prop.Changes[len(prop.Changes)-1])
}

func TestGenerateProposalConfinement(t *testing.T) {
	g := NewGenerator(constVerifier(1.2, 0.8), stubClassifier{wallClassification()}, DefaultThresholds())

	p := testPier()
	p.StirrupSpacing = 250 // wider than any hoop limit

	prop, err := g.GenerateProposal(p, pier.Forces{}, 1.2, 0.8, true, 1.0)
	require.NoError(t, err)
	require.NotNil(t, prop)

	assert.Equal(t, ModeConfinement, prop.FailureMode)
	assert.Equal(t, ProposalConfinement, prop.ProposalType)
	assert.True(t, prop.Success)
	assert.Equal(t, 1, prop.Iterations)

	// min(t/3, 6·db, 150) with t=250 and φ10 boundary bars.
	assert.Equal(t, rebar.Bar10, prop.Proposed.StirrupBar)
	assert.Equal(t, 60, prop.Proposed.StirrupSpacing)
	assert.Contains(t, prop.Changes, "Provide special boundary elements at both pier ends")
}

func TestGenerateProposalFlexureSkipsOverDuctileTrials(t *testing.T) {
	// A heavily meshed thin section: every boundary upgrade exceeds the
	// ductility cap, so the verifier is never consulted until the
	// thickness fallback.
	v := &stubVerifier{
		sf: func(p *pier.Pier) float64 {
			if p.Thickness >= 200 {
				return 1.2
			}
			return 0.8
		},
		dcr: func(*pier.Pier) float64 { return 0.5 },
	}
	g := NewGenerator(v, stubClassifier{wallClassification()}, DefaultThresholds())

	p := testPier()
	p.Length = 1000
	p.Thickness = 150
	p.MeshBarV = rebar.Bar16
	p.MeshBarH = rebar.Bar16
	p.SpacingV = 100
	p.SpacingH = 100

	prop, err := g.GenerateProposal(p, pier.Forces{}, 0.8, 0.5, false, 1.0)
	require.NoError(t, err)
	require.NotNil(t, prop)

	assert.Equal(t, ProposalThickness, prop.ProposalType)
	assert.Equal(t, 200.0, prop.Proposed.Thickness)
	assert.Equal(t, 1, v.flexCalls, "boundary trials above the ductility cap must not reach the verifier")
}

func TestGenerateProposalPropagatesVerifierError(t *testing.T) {
	boom := errors.New("section analysis diverged")
	v := &stubVerifier{
		sf:    func(*pier.Pier) float64 { return 0 },
		dcr:   func(*pier.Pier) float64 { return 0 },
		sfErr: boom,
	}
	g := NewGenerator(v, stubClassifier{wallClassification()}, DefaultThresholds())

	prop, err := g.GenerateProposal(testPier(), pier.Forces{}, 0.9, 0.5, false, 1.0)
	assert.Nil(t, prop)
	assert.ErrorIs(t, err, boom)
}
