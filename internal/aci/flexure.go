package aci

import "fmt"

// WallSection holds the geometry, materials and vertical reinforcement of a
// wall pier section for in-plane flexural capacity calculation. Dimensions in
// mm, strengths in MPa, areas in mm².
type WallSection struct {
	Length    float64 // lw - horizontal length of the pier
	Thickness float64 // t  - web thickness
	Fc        float64 // f'c
	Fy        float64 // fy
	AsEdge    float64 // boundary reinforcement at one end
	AsWeb     float64 // total distributed vertical web reinforcement
}

// FlexureResult holds the outcome of an in-plane flexural capacity check.
type FlexureResult struct {
	A        float64 // Depth of compression block (mm)
	C        float64 // Neutral axis depth (mm)
	EpsilonT float64 // Net tensile strain at extreme tension steel
	Phi      float64 // Strength reduction factor
	Mn       float64 // Nominal moment capacity (kN-m)
	PhiMn    float64 // Design moment capacity (kN-m)
	SF       float64 // φMn / Mu

	IsTensionControlled bool
}

// WallFlexure computes the in-plane design moment capacity of a wall pier and
// the resulting safety factor against the factored demand.
//
// The section is idealized with the boundary steel lumped at an effective
// depth d = 0.8·lw (ACI 318-19 Section 11.5.4.2) and the web steel lumped at
// mid-length. Axial load Pu (kN, compression positive) adds to the internal
// compression block per the standard equilibrium formulation.
func WallFlexure(s WallSection, pu, mu float64) (*FlexureResult, error) {
	if s.Length <= 0 || s.Thickness <= 0 {
		return nil, fmt.Errorf("invalid wall dimensions: lw=%.2f, t=%.2f", s.Length, s.Thickness)
	}
	if s.Fc <= 0 || s.Fy <= 0 {
		return nil, fmt.Errorf("invalid material properties: f'c=%.2f, fy=%.2f", s.Fc, s.Fy)
	}
	if mu <= 0 {
		return nil, fmt.Errorf("invalid factored moment: Mu=%.2f", mu)
	}

	result := &FlexureResult{}
	beta1 := Beta1(s.Fc)

	// Effective depth to the tension boundary element
	d := 0.8 * s.Length

	puN := pu * 1e3 // kN to N

	// Equilibrium: C = T + Pu
	// 0.85·f'c·t·a = AsEdge·fy + 0.5·AsWeb·fy + Pu
	tensionForce := s.AsEdge*s.Fy + 0.5*s.AsWeb*s.Fy
	result.A = (tensionForce + puN) / (0.85 * s.Fc * s.Thickness)
	if result.A > s.Length {
		// Fully compressed section - no flexural tension capacity left
		result.A = s.Length
	}
	result.C = result.A / beta1

	// Net tensile strain at the extreme tension steel
	if result.C > 0 {
		result.EpsilonT = EpsilonCU * (d - result.C) / result.C
	}
	if result.EpsilonT < 0 {
		result.EpsilonT = 0
	}
	result.Phi = Phi(result.EpsilonT, s.Fy)
	result.IsTensionControlled = result.EpsilonT >= 0.005

	// Moments taken about the compression block centroid (N-mm):
	//   boundary steel at d, web steel at lw/2, axial load at lw/2
	arm := result.A / 2
	mn := s.AsEdge*s.Fy*(d-arm) +
		0.5*s.AsWeb*s.Fy*(0.5*s.Length-arm) +
		puN*(0.5*s.Length-arm)
	if mn < 0 {
		mn = 0
	}
	result.Mn = mn / 1e6 // N-mm to kN-m
	result.PhiMn = result.Phi * result.Mn
	result.SF = result.PhiMn / mu

	return result, nil
}
