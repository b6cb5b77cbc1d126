// Package design implements the design proposal generation engine: it
// classifies why a wall pier fails verification and searches the discrete
// reinforcement parameter space for a minimal change restoring compliance.
package design

// FailureMode identifies why a pier needs a design change.
type FailureMode int

const (
	// ModeNone - the pier complies and is not wastefully over-reinforced.
	ModeNone FailureMode = iota
	// ModeFlexure - flexural safety factor below 1.0.
	ModeFlexure
	// ModeShear - shear demand/capacity ratio above 1.0.
	ModeShear
	// ModeConfinement - strength is adequate but a special boundary
	// element is required.
	ModeConfinement
	// ModeCombined - flexure and shear failing simultaneously.
	ModeCombined
	// ModeSlenderness - flexural failure driven by the thin-wall
	// capacity knockdown; the remedy is stiffness, not steel.
	ModeSlenderness
	// ModeOverdesigned - large strength margins on both checks; material
	// can be reduced.
	ModeOverdesigned
	// ModeColumnMinThickness - element classified as a seismic column
	// below the code minimum dimension.
	ModeColumnMinThickness
)

func (m FailureMode) String() string {
	switch m {
	case ModeNone:
		return "NONE"
	case ModeFlexure:
		return "FLEXURE"
	case ModeShear:
		return "SHEAR"
	case ModeConfinement:
		return "CONFINEMENT"
	case ModeCombined:
		return "COMBINED"
	case ModeSlenderness:
		return "SLENDERNESS"
	case ModeOverdesigned:
		return "OVERDESIGNED"
	case ModeColumnMinThickness:
		return "COLUMN_MIN_THICKNESS"
	}
	return "UNKNOWN"
}

// Thresholds holds the tunable acceptance and classification limits of the
// engine. They are injected at construction so callers and tests can
// parametrize them without touching package state.
type Thresholds struct {
	// TargetSF is the flexural safety factor a proposal must reach
	// (5% margin over unity).
	TargetSF float64

	// OverdesignSF and OverdesignDCR bound the over-design region: a pier
	// with SF ≥ OverdesignSF and DCR ≤ OverdesignDCR is a candidate for
	// material reduction.
	OverdesignSF  float64
	OverdesignDCR float64

	// SlendernessLimit separates slenderness-driven flexural failures
	// from ordinary ones.
	SlendernessLimit float64

	// ReductionStopSF stops the reduction strategy once the safety factor
	// is close enough to the target that further stripping buys nothing.
	// A policy value, not a code limit.
	ReductionStopSF float64

	// ReductionThicknessSF gates thickness reduction: only piers with at
	// least this much flexural margin may be thinned.
	ReductionThicknessSF float64

	// MaxIterations bounds the single-parameter strategy walks.
	MaxIterations int

	// BestEffortCap bounds the total trials of the best-effort sweep.
	BestEffortCap int
}

// DefaultThresholds returns the standard engine limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TargetSF:             1.05,
		OverdesignSF:         1.5,
		OverdesignDCR:        0.7,
		SlendernessLimit:     0.7,
		ReductionStopSF:      1.15,
		ReductionThicknessSF: 2.0,
		MaxIterations:        30,
		BestEffortCap:        100,
	}
}

// DetermineFailureMode maps the current verification state of a pier to a
// single failure mode. First match wins; the ordering puts combined
// life-safety failures ahead of everything else and efficiency concerns
// last. Pure function of its inputs.
func (t Thresholds) DetermineFailureMode(flexureSF, shearDCR float64, boundaryRequired bool, slendernessReduction float64, checkOverdesign bool) FailureMode {
	switch {
	case flexureSF < 1.0 && shearDCR > 1.0:
		return ModeCombined
	case flexureSF < 1.0 && slendernessReduction < t.SlendernessLimit:
		return ModeSlenderness
	case flexureSF < 1.0:
		return ModeFlexure
	case shearDCR > 1.0:
		return ModeShear
	case boundaryRequired:
		return ModeConfinement
	case checkOverdesign && flexureSF >= t.OverdesignSF && shearDCR <= t.OverdesignDCR:
		return ModeOverdesigned
	}
	return ModeNone
}

// NeedsProposal reports whether a pier with the given verification results
// should go through proposal generation: either it is failing, or it is
// over-designed enough that a reduction is worth proposing.
func (t Thresholds) NeedsProposal(flexureSF, shearDCR float64) bool {
	if flexureSF < 1.0 || shearDCR > 1.0 {
		return true
	}
	return flexureSF >= t.OverdesignSF && shearDCR <= t.OverdesignDCR
}
