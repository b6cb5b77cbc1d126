package design

import (
	"github.com/wilterwhite/ingeo-structures-sub002/internal/aci"
	"github.com/wilterwhite/ingeo-structures-sub002/internal/pier"
)

// proposeReduction strips material from an over-designed pier while keeping
// it compliant. Reduction steps run in a fixed order (thickness, boundary
// bars, mesh spacing, mesh diameter), and each subsequent step only runs
// while the safety factor stays above the stop threshold: once the margin
// is close enough to the target, further stripping buys nothing. Each step
// walks its table toward less steel and reverts to the last known-good
// configuration as soon as a trial goes out of bounds.
//
// Returns nil when no reduction at all was possible.
func (g *Generator) proposeReduction(p *pier.Pier, f pier.Forces, orig Config, sf, dcr float64, cls pier.Classification) (*Proposal, error) {
	best := orig
	bestSF, bestDCR := sf, dcr
	iterations := 0
	reduced := false

	// A reduced configuration must stay compliant on strength, keep the
	// distributed reinforcement at the code minimum, and keep at least
	// two boundary bars per end.
	valid := func(tp *pier.Pier, tsf, tdcr float64) bool {
		return tsf >= g.th.TargetSF &&
			tdcr <= 1.0 &&
			tp.RhoV() >= aci.MinWebRatio &&
			tp.RhoH() >= aci.MinWebRatio &&
			tp.NEdgeBars >= 2
	}

	try := func(trial Config) (bool, error) {
		iterations++
		tp := trial.ApplyTo(p)
		tsf, tdcr, err := g.verifyBoth(tp, f)
		if err != nil {
			return false, err
		}
		if !valid(tp, tsf, tdcr) {
			return false, nil
		}
		best = trial
		bestSF, bestDCR = tsf, tdcr
		reduced = true
		return true, nil
	}

	// (1) Thickness: only for piers with a wide flexural margin, and never
	// below the classification minimum.
	if sf > g.th.ReductionThicknessSF {
		for i := thicknessIndex(p.Thickness); i >= 0; i-- {
			t := ThicknessSequence[i]
			if t >= p.Thickness || t < cls.MinThickness {
				continue
			}
			trial := best
			trial.Thickness = t
			ok, err := try(trial)
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
		}
	}

	// (2) Boundary bars.
	if bestSF >= g.th.ReductionStopSF {
		for i := boundaryIndex(best.AsEdgePerEnd()) - 1; i >= 0; i-- {
			trial := best
			trial.NEdgeBars = BoundarySequence[i].Count
			trial.EdgeBar = BoundarySequence[i].Bar
			ok, err := try(trial)
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
		}
	}

	// (3) Wider mesh spacing.
	if bestSF >= g.th.ReductionStopSF {
		for i := spacingIndex(best.SpacingV) - 1; i >= 0; i-- {
			trial := best
			trial.SpacingV = MeshSpacingSequence[i]
			trial.SpacingH = MeshSpacingSequence[i]
			ok, err := try(trial)
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
		}
	}

	// (4) Smaller mesh bars.
	if bestSF >= g.th.ReductionStopSF {
		for i := meshBarIndex(best.MeshBarV) - 1; i >= 0; i-- {
			trial := best
			trial.MeshBarV = MeshBarSequence[i]
			trial.MeshBarH = MeshBarSequence[i]
			ok, err := try(trial)
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
		}
	}

	if !reduced {
		return nil, nil
	}
	return newProposal(p, ModeOverdesigned, ProposalReduction, orig, best, sf, bestSF, dcr, bestDCR, iterations, true), nil
}
