package design

import (
	"github.com/wilterwhite/ingeo-structures-sub002/internal/pier"
)

// proposeFlexure searches the boundary-bar table for the smallest upgrade
// driving the flexural safety factor to the target. Trials breaching the
// ductility cap are skipped, not treated as dead ends. When the table is
// exhausted the search falls back to a thickness increase.
func (g *Generator) proposeFlexure(p *pier.Pier, f pier.Forces, orig Config, sf, dcr float64, cls pier.Classification) (*Proposal, error) {
	ratioCap := g.maxRatio(p)
	iterations := 0

	for i := boundaryStart(orig.AsEdgePerEnd()); i < len(BoundarySequence); i++ {
		if iterations >= g.th.MaxIterations {
			break
		}
		iterations++

		trial := orig
		trial.NEdgeBars = BoundarySequence[i].Count
		trial.EdgeBar = BoundarySequence[i].Bar

		tp := trial.ApplyTo(p)
		if tp.VerticalRatio() > ratioCap {
			// Too much steel for ductile behavior; the next entry may
			// still pass (different bar arrangement, same table walk).
			continue
		}

		tsf, err := g.verifier.FlexureSF(tp, f)
		if err != nil {
			return nil, err
		}
		if tsf >= g.th.TargetSF {
			tdcr, err := g.verifier.ShearDCR(tp, f)
			if err != nil {
				return nil, err
			}
			return newProposal(p, ModeFlexure, ProposalBoundary, orig, trial, sf, tsf, dcr, tdcr, iterations, true), nil
		}
	}

	// Boundary steel alone cannot fix it: add stiffness instead.
	return g.proposeThickness(p, f, orig, sf, dcr, ModeFlexure, cls)
}
