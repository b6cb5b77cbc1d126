package design

import (
	"github.com/wilterwhite/ingeo-structures-sub002/internal/pier"
)

// Proposal types
const (
	ProposalBoundary    = "boundary-reinforcement"
	ProposalWeb         = "web-reinforcement"
	ProposalThickness   = "thickness-increase"
	ProposalCombined    = "combined"
	ProposalBestEffort  = "best-effort"
	ProposalReduction   = "reduction"
	ProposalColumnMin   = "column-min-thickness"
	ProposalConfinement = "boundary-element-detailing"
)

// Markers appended to the change list of non-success proposals.
const (
	markerRedesign  = "No reinforcement combination restores compliance - structural redesign required"
	markerMoreReinf = "Minimum dimension alone does not restore strength - additional reinforcement required"
)

// Proposal is the immutable outcome of one design search: the original and
// proposed configurations with their verification results, the trial count,
// and a rendered change list. Success false means the search exhausted its
// parameter space and the proposal is the best effort found.
type Proposal struct {
	PierKey      string
	FailureMode  FailureMode
	ProposalType string

	Original Config
	Proposed Config

	OriginalSF  float64
	ProposedSF  float64
	OriginalDCR float64
	ProposedDCR float64

	Iterations int
	Success    bool
	Changes    []string
}

// newProposal assembles a proposal, rendering the change list from the
// config delta. The pier supplies the current thickness so a proposed
// thickness renders as a before/after pair.
func newProposal(p *pier.Pier, mode FailureMode, ptype string, orig, proposed Config, origSF, propSF, origDCR, propDCR float64, iterations int, success bool) *Proposal {
	diffBase := orig
	if proposed.Thickness > 0 {
		diffBase.Thickness = p.Thickness
	}
	return &Proposal{
		PierKey:      p.Key,
		FailureMode:  mode,
		ProposalType: ptype,
		Original:     orig,
		Proposed:     proposed,
		OriginalSF:   origSF,
		ProposedSF:   propSF,
		OriginalDCR:  origDCR,
		ProposedDCR:  propDCR,
		Iterations:   iterations,
		Success:      success,
		Changes:      proposed.Diff(diffBase),
	}
}
