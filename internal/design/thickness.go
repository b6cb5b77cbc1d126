package design

import (
	"math"

	"github.com/wilterwhite/ingeo-structures-sub002/internal/pier"
)

// proposeThickness is the shared fallback of the flexure, shear and
// combined strategies and the direct remedy for slenderness failures: it
// walks the thickness table upward from the element's effective minimum,
// keeping the reinforcement unchanged, until the mode-specific acceptance
// predicate holds. When the table is exhausted it hands over to the
// best-effort sweep.
func (g *Generator) proposeThickness(p *pier.Pier, f pier.Forces, orig Config, sf, dcr float64, mode FailureMode, cls pier.Classification) (*Proposal, error) {
	floor := math.Max(p.Thickness, cls.MinThickness)
	iterations := 0

	for i := thicknessStart(p.Thickness, floor); i < len(ThicknessSequence); i++ {
		if iterations >= g.th.MaxIterations {
			break
		}
		iterations++

		trial := orig
		trial.Thickness = ThicknessSequence[i]

		tp := trial.ApplyTo(p)
		tsf, tdcr, err := g.verifyBoth(tp, f)
		if err != nil {
			return nil, err
		}

		if g.acceptable(mode, tsf, tdcr) {
			return newProposal(p, mode, ProposalThickness, orig, trial, sf, tsf, dcr, tdcr, iterations, true), nil
		}
	}

	return g.createBestEffortProposal(p, f, orig, sf, dcr, mode, cls)
}

// createBestEffortProposal is the engine's last resort: a bounded sweep
// across boundary bars × mesh spacing × mesh diameter × thickness, capped
// at a fixed trial budget, that keeps the best safety factor seen. The
// result is returned even when nothing meets the acceptance predicate, in
// which case Success is false and the change list carries an explicit
// redesign marker.
func (g *Generator) createBestEffortProposal(p *pier.Pier, f pier.Forces, orig Config, sf, dcr float64, mode FailureMode, cls pier.Classification) (*Proposal, error) {
	ratioCap := g.maxRatio(p)
	floor := math.Max(p.Thickness, cls.MinThickness)
	iterations := 0

	bestSF := math.Inf(-1)
	var bestDCR float64
	var bestCfg Config
	haveBest := false

	thicknesses := []float64{floor}
	for _, t := range ThicknessSequence {
		if t > floor {
			thicknesses = append(thicknesses, t)
		}
	}

	sweep := newCartesian(len(BoundarySequence), len(MeshSpacingSequence), len(MeshBarSequence), len(thicknesses))
	for idx, ok := sweep.next(); ok && iterations < g.th.BestEffortCap; idx, ok = sweep.next() {
		iterations++

		trial := orig
		trial.NEdgeBars = BoundarySequence[idx[0]].Count
		trial.EdgeBar = BoundarySequence[idx[0]].Bar
		trial.SpacingV = MeshSpacingSequence[idx[1]]
		trial.SpacingH = MeshSpacingSequence[idx[1]]
		trial.MeshBarV = MeshBarSequence[idx[2]]
		trial.MeshBarH = MeshBarSequence[idx[2]]
		if t := thicknesses[idx[3]]; t != p.Thickness {
			trial.Thickness = t
		}

		tp := trial.ApplyTo(p)
		if tp.VerticalRatio() > ratioCap {
			continue
		}

		tsf, tdcr, err := g.verifyBoth(tp, f)
		if err != nil {
			return nil, err
		}

		if g.acceptable(mode, tsf, tdcr) {
			return newProposal(p, mode, ProposalBestEffort, orig, trial, sf, tsf, dcr, tdcr, iterations, true), nil
		}
		if tsf > bestSF {
			bestSF = tsf
			bestDCR = tdcr
			bestCfg = trial
			haveBest = true
		}
	}

	if !haveBest {
		bestCfg, bestSF, bestDCR = orig, sf, dcr
	}
	prop := newProposal(p, mode, ProposalBestEffort, orig, bestCfg, sf, bestSF, dcr, bestDCR, iterations, false)
	prop.Changes = append(prop.Changes, markerRedesign)
	return prop, nil
}
