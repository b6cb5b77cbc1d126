package design

import (
	"github.com/wilterwhite/ingeo-structures-sub002/internal/pier"
)

// proposeShear resolves excess shear demand by, in order: tightening the
// mesh spacing at the current bar diameter, bumping the mesh diameter
// (restarting from the widest spacing for each new diameter), adding a
// second curtain when the pier has only one, and finally falling back to a
// thickness increase. Acceptance is DCR ≤ 1.0 exactly; unlike flexure no
// extra margin is imposed on shear.
func (g *Generator) proposeShear(p *pier.Pier, f pier.Forces, orig Config, sf, dcr float64, cls pier.Classification) (*Proposal, error) {
	ratioCap := g.maxRatio(p)
	iterations := 0

	try := func(trial Config) (*Proposal, bool, error) {
		iterations++
		tp := trial.ApplyTo(p)
		if tp.VerticalRatio() > ratioCap {
			return nil, false, nil
		}
		tdcr, err := g.verifier.ShearDCR(tp, f)
		if err != nil {
			return nil, false, err
		}
		if tdcr <= 1.0 {
			tsf, err := g.verifier.FlexureSF(tp, f)
			if err != nil {
				return nil, false, err
			}
			return newProposal(p, ModeShear, ProposalWeb, orig, trial, sf, tsf, dcr, tdcr, iterations, true), true, nil
		}
		return nil, false, nil
	}

	// (a) Tighter spacing at the current diameter. The spacing tables for
	// both directions move together to keep the mesh grid uniform.
	for i := spacingIndex(orig.SpacingH) + 1; i < len(MeshSpacingSequence) && iterations < g.th.MaxIterations; i++ {
		trial := orig
		trial.SpacingV = MeshSpacingSequence[i]
		trial.SpacingH = MeshSpacingSequence[i]
		prop, ok, err := try(trial)
		if err != nil || ok {
			return prop, err
		}
	}

	// (b) Larger diameter, spacing restarted from the widest entry and
	// walked back down for each diameter.
	for d := meshBarIndex(orig.MeshBarH) + 1; d < len(MeshBarSequence) && iterations < g.th.MaxIterations; d++ {
		for i := 0; i < len(MeshSpacingSequence) && iterations < g.th.MaxIterations; i++ {
			trial := orig
			trial.MeshBarV = MeshBarSequence[d]
			trial.MeshBarH = MeshBarSequence[d]
			trial.SpacingV = MeshSpacingSequence[i]
			trial.SpacingH = MeshSpacingSequence[i]
			prop, ok, err := try(trial)
			if err != nil || ok {
				return prop, err
			}
		}
	}

	// (c) Second curtain for single-curtain piers.
	if orig.NMeshes == 1 {
		for i := 0; i < len(MeshSpacingSequence) && iterations < g.th.MaxIterations; i++ {
			trial := orig
			trial.NMeshes = 2
			trial.SpacingV = MeshSpacingSequence[i]
			trial.SpacingH = MeshSpacingSequence[i]
			prop, ok, err := try(trial)
			if err != nil || ok {
				return prop, err
			}
		}
	}

	// (d) Web steel cannot carry it: grow the section.
	return g.proposeThickness(p, f, orig, sf, dcr, ModeShear, cls)
}
