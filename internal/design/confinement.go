package design

import (
	"github.com/wilterwhite/ingeo-structures-sub002/internal/aci"
	"github.com/wilterwhite/ingeo-structures-sub002/internal/pier"
	"github.com/wilterwhite/ingeo-structures-sub002/internal/rebar"
)

// proposeConfinement handles piers whose strength checks pass but which
// need a special boundary element: the remedy is transverse detailing at
// the pier ends, not more longitudinal steel. The proposal tightens the
// boundary ties to the hoop spacing limit, uses at least a φ10 tie, and
// provides as many legs as the section can host. Strength is re-verified
// once on the detailed trial for reporting.
func (g *Generator) proposeConfinement(p *pier.Pier, f pier.Forces, orig Config, sf, dcr float64) (*Proposal, error) {
	proposed := orig
	if proposed.StirrupBar < rebar.Bar10 {
		proposed.StirrupBar = rebar.Bar10
	}
	maxSpacing := int(aci.StirrupMaxSpacing(p.Thickness, proposed.EdgeBar.Diameter()))
	if proposed.StirrupSpacing == 0 || proposed.StirrupSpacing > maxSpacing {
		proposed.StirrupSpacing = maxSpacing
	}
	if legs := maxLegsFor(p.Thickness); proposed.NStirrupLegs < legs {
		proposed.NStirrupLegs = legs
	}

	tp := proposed.ApplyTo(p)
	tsf, tdcr, err := g.verifyBoth(tp, f)
	if err != nil {
		return nil, err
	}

	prop := newProposal(p, ModeConfinement, ProposalConfinement, orig, proposed, sf, tsf, dcr, tdcr, 1, true)
	prop.Changes = append(prop.Changes, "Provide special boundary elements at both pier ends")
	return prop, nil
}
