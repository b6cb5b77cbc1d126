package pier

import (
	"github.com/wilterwhite/ingeo-structures-sub002/internal/aci"
)

// Checker verifies piers against ACI 318-19. It is stateless and safe for
// concurrent use; each call computes fresh from its inputs.
type Checker struct{}

// FlexureSF returns the in-plane flexural safety factor φMn/Mu. The
// slenderness knockdown for thin walls is applied to the capacity, so
// thickening a slender pier raises its flexural safety factor.
func (Checker) FlexureSF(p *Pier, f Forces) (float64, error) {
	section := aci.WallSection{
		Length:    p.Length,
		Thickness: p.Thickness,
		Fc:        p.Fc,
		Fy:        p.Fy,
		AsEdge:    float64(p.NEdgeBars) * p.EdgeBar.Area(),
		AsWeb:     p.AsWeb(),
	}
	result, err := aci.WallFlexure(section, f.Pu, f.Mu)
	if err != nil {
		return 0, err
	}
	return result.SF * aci.SlendernessFactor(p.Height, p.Thickness), nil
}

// ShearDCR returns the in-plane shear demand/capacity ratio Vu/φVn.
func (Checker) ShearDCR(p *Pier, f Forces) (float64, error) {
	result, err := aci.WallShear(p.Length, p.Thickness, p.Height, p.Fc, p.Fy, p.RhoH(), f.Vu)
	if err != nil {
		return 0, err
	}
	return result.DCR, nil
}

// LimitCheck is the outcome of one single-formula code check.
type LimitCheck struct {
	Name    string
	Actual  float64
	Limit   float64
	OK      bool
	Exceeds bool // true when Actual must stay at or below Limit
}

// CheckSpacing verifies the distributed web reinforcement spacing against
// ACI 318-19 Section 11.7.2.1.
func CheckSpacing(p *Pier) []LimitCheck {
	max := aci.MaxWebSpacing(p.Length, p.Thickness)
	return []LimitCheck{
		{Name: "Vertical bar spacing", Actual: float64(p.SpacingV), Limit: max, OK: float64(p.SpacingV) <= max, Exceeds: true},
		{Name: "Horizontal bar spacing", Actual: float64(p.SpacingH), Limit: max, OK: float64(p.SpacingH) <= max, Exceeds: true},
	}
}

// CheckMinReinforcement verifies the distributed web reinforcement ratios
// against the Section 18.10.2.1 minimum.
func CheckMinReinforcement(p *Pier) []LimitCheck {
	return []LimitCheck{
		{Name: "Vertical web ratio ρv", Actual: p.RhoV(), Limit: aci.MinWebRatio, OK: p.RhoV() >= aci.MinWebRatio},
		{Name: "Horizontal web ratio ρh", Actual: p.RhoH(), Limit: aci.MinWebRatio, OK: p.RhoH() >= aci.MinWebRatio},
	}
}

// BoundaryRequired reports whether the pier needs a special boundary element
// under the given factored forces (stress-based check, Section 18.10.6.3).
func BoundaryRequired(p *Pier, f Forces) bool {
	sigma := aci.ExtremeFiberStress(p.Length, p.Thickness, f.Pu, f.Mu)
	return aci.BoundaryElementRequired(sigma, p.Fc)
}

// SlendernessReduction returns the capacity knockdown for the pier's
// height-to-thickness ratio.
func SlendernessReduction(p *Pier) float64 {
	return aci.SlendernessFactor(p.Height, p.Thickness)
}
