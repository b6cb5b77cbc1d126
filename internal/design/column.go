package design

import (
	"github.com/wilterwhite/ingeo-structures-sub002/internal/pier"
)

// proposeColumnMinThickness corrects a seismic column below the
// code-mandated minimum dimension. The dimensional rule is non-negotiable,
// so even when no thickness in the table restores strength the minimum
// dimension is proposed anyway, flagged as needing additional
// reinforcement on top.
func (g *Generator) proposeColumnMinThickness(p *pier.Pier, f pier.Forces, sf, dcr float64, cls pier.Classification) (*Proposal, error) {
	orig := ConfigFrom(p)
	iterations := 0

	var firstSF, firstDCR float64
	haveFirst := false

	for _, t := range ThicknessSequence {
		if t < cls.MinThickness {
			continue
		}
		if iterations >= g.th.MaxIterations {
			break
		}
		iterations++

		trial := orig
		trial.Thickness = t

		tp := trial.ApplyTo(p)
		tsf, tdcr, err := g.verifyBoth(tp, f)
		if err != nil {
			return nil, err
		}
		if !haveFirst {
			firstSF, firstDCR = tsf, tdcr
			haveFirst = true
		}

		if tsf >= g.th.TargetSF && tdcr <= 1.0 {
			return newProposal(p, ModeColumnMinThickness, ProposalColumnMin, orig, trial, sf, tsf, dcr, tdcr, iterations, true), nil
		}
	}

	// No thickness alone restores strength: propose the bare minimum and
	// flag the remaining strength gap.
	proposed := orig
	proposed.Thickness = cls.MinThickness
	if !haveFirst {
		firstSF, firstDCR = sf, dcr
	}
	prop := newProposal(p, ModeColumnMinThickness, ProposalColumnMin, orig, proposed, sf, firstSF, dcr, firstDCR, iterations, false)
	prop.Changes = append(prop.Changes, markerMoreReinf)
	return prop, nil
}
