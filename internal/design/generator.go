package design

import (
	"github.com/wilterwhite/ingeo-structures-sub002/internal/aci"
	"github.com/wilterwhite/ingeo-structures-sub002/internal/pier"
)

// Verifier is the verification port: it evaluates a trial pier against the
// code and returns the flexural safety factor and shear demand/capacity
// ratio. Implementations must be deterministic and side-effect-free; the
// engine calls them hundreds of times per proposal.
type Verifier interface {
	FlexureSF(p *pier.Pier, f pier.Forces) (float64, error)
	ShearDCR(p *pier.Pier, f pier.Forces) (float64, error)
}

// Classifier is the classification port: it labels an element as a wall,
// wall pier or seismic column and supplies its minimum thickness.
type Classifier interface {
	Classify(p *pier.Pier) pier.Classification
}

// Generator orchestrates proposal generation: classification short-circuit,
// failure-mode analysis, strategy dispatch. It holds no mutable state
// between calls; all search mutation happens on private trial copies, so a
// single Generator is safe to share across goroutines as long as its ports
// are stateless too.
type Generator struct {
	verifier   Verifier
	classifier Classifier
	th         Thresholds
}

// NewGenerator builds a proposal generator over the given ports and
// thresholds.
func NewGenerator(v Verifier, c Classifier, th Thresholds) *Generator {
	return &Generator{verifier: v, classifier: c, th: th}
}

// GenerateProposal runs the engine for one pier. flexureSF, shearDCR,
// boundaryRequired and slendernessReduction describe the element's current
// verification state. Returns nil when no action is needed. Port errors
// propagate unmodified; the generator performs no recovery on
// safety-relevant computations.
func (g *Generator) GenerateProposal(p *pier.Pier, f pier.Forces, flexureSF, shearDCR float64, boundaryRequired bool, slendernessReduction float64) (*Proposal, error) {
	cls := g.classifier.Classify(p)

	// A dimensional code violation takes precedence over any strength
	// result: a seismic column below the minimum dimension is corrected
	// first.
	if cls.IsColumn && !cls.MinThicknessOK {
		return g.proposeColumnMinThickness(p, f, flexureSF, shearDCR, cls)
	}

	mode := g.th.DetermineFailureMode(flexureSF, shearDCR, boundaryRequired, slendernessReduction, true)
	if mode == ModeNone {
		return nil, nil
	}

	cfg := ConfigFrom(p)

	switch mode {
	case ModeFlexure:
		return g.proposeFlexure(p, f, cfg, flexureSF, shearDCR, cls)
	case ModeShear:
		return g.proposeShear(p, f, cfg, flexureSF, shearDCR, cls)
	case ModeCombined:
		return g.proposeCombined(p, f, cfg, flexureSF, shearDCR, cls)
	case ModeSlenderness:
		return g.proposeThickness(p, f, cfg, flexureSF, shearDCR, ModeSlenderness, cls)
	case ModeConfinement:
		return g.proposeConfinement(p, f, cfg, flexureSF, shearDCR)
	case ModeOverdesigned:
		return g.proposeReduction(p, f, cfg, flexureSF, shearDCR, cls)
	}
	return nil, nil
}

// maxRatio returns the ductility cap: the total vertical reinforcement
// ratio beyond which the section response is no longer ductile. Trials
// above the cap are skipped during search, never accepted.
func (g *Generator) maxRatio(p *pier.Pier) float64 {
	return aci.RhoMax(p.Fc, p.Fy)
}

// acceptable is the mode-specific acceptance predicate shared by the
// thickness and best-effort searches.
func (g *Generator) acceptable(mode FailureMode, sf, dcr float64) bool {
	switch mode {
	case ModeFlexure, ModeSlenderness:
		return sf >= g.th.TargetSF
	case ModeShear:
		return dcr <= 1.0
	default:
		return sf >= g.th.TargetSF && dcr <= 1.0
	}
}

// verifyBoth evaluates one trial pier on both checks.
func (g *Generator) verifyBoth(trial *pier.Pier, f pier.Forces) (sf, dcr float64, err error) {
	sf, err = g.verifier.FlexureSF(trial, f)
	if err != nil {
		return 0, 0, err
	}
	dcr, err = g.verifier.ShearDCR(trial, f)
	if err != nil {
		return 0, 0, err
	}
	return sf, dcr, nil
}
