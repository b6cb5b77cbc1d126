package design

import (
	"math"

	"github.com/wilterwhite/ingeo-structures-sub002/internal/pier"
)

// proposeCombined handles simultaneous flexure and shear failure: the
// widest search in the engine. For each candidate thickness, starting from
// the greater of the current thickness and the classification minimum, it
// sweeps boundary bars × mesh spacing × mesh diameter × stirrup legs and
// accepts the first combination meeting both targets. Thickness is the
// outermost dimension so thinner, cheaper sections are tried first. The leg
// count per thickness is capped at one leg per 100 mm of section.
//
// When the full sweep finds nothing, the best configuration seen (highest
// safety factor) comes back with Success false and a redesign marker.
func (g *Generator) proposeCombined(p *pier.Pier, f pier.Forces, orig Config, sf, dcr float64, cls pier.Classification) (*Proposal, error) {
	ratioCap := g.maxRatio(p)
	floor := math.Max(p.Thickness, cls.MinThickness)
	iterations := 0

	bestSF := math.Inf(-1)
	var bestDCR float64
	var bestCfg Config
	haveBest := false

	// Thickness candidates: current-or-minimum first, then the table
	// entries above it.
	thicknesses := []float64{floor}
	for _, t := range ThicknessSequence {
		if t > floor {
			thicknesses = append(thicknesses, t)
		}
	}

	for _, t := range thicknesses {
		legMax := maxLegsFor(t)
		legs := make([]int, 0, len(StirrupLegSequence))
		for _, l := range StirrupLegSequence {
			if l <= legMax {
				legs = append(legs, l)
			}
		}

		sweep := newCartesian(len(BoundarySequence), len(MeshSpacingSequence), len(MeshBarSequence), len(legs))
		for idx, ok := sweep.next(); ok; idx, ok = sweep.next() {
			iterations++

			trial := orig
			trial.NEdgeBars = BoundarySequence[idx[0]].Count
			trial.EdgeBar = BoundarySequence[idx[0]].Bar
			trial.SpacingV = MeshSpacingSequence[idx[1]]
			trial.SpacingH = MeshSpacingSequence[idx[1]]
			trial.MeshBarV = MeshBarSequence[idx[2]]
			trial.MeshBarH = MeshBarSequence[idx[2]]
			trial.NStirrupLegs = legs[idx[3]]
			if t != p.Thickness {
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

			if tsf >= g.th.TargetSF && tdcr <= 1.0 {
				return newProposal(p, ModeCombined, ProposalCombined, orig, trial, sf, tsf, dcr, tdcr, iterations, true), nil
			}
			if tsf > bestSF {
				bestSF = tsf
				bestDCR = tdcr
				bestCfg = trial
				haveBest = true
			}
		}
	}

	if !haveBest {
		bestCfg, bestSF, bestDCR = orig, sf, dcr
	}
	prop := newProposal(p, ModeCombined, ProposalCombined, orig, bestCfg, sf, bestSF, dcr, bestDCR, iterations, false)
	prop.Changes = append(prop.Changes, markerRedesign)
	return prop, nil
}
