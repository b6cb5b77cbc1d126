package aci

import "math"

// MaxWebSpacing returns the maximum permitted spacing of distributed web
// reinforcement in a structural wall.
// ACI 318-19 Section 11.7.2.1: the least of lw/3, 3h and 450 mm.
func MaxWebSpacing(lw, t float64) float64 {
	return math.Min(math.Min(lw/3, 3*t), SpacingCap)
}

// BoundaryElementRequired reports whether a special boundary element is
// required using the stress-based approach of ACI 318-19 Section 18.10.6.3:
// boundary elements are required where the maximum extreme-fiber compressive
// stress exceeds 0.2·f'c.
//
// sigma is the extreme-fiber compressive stress under factored loads (MPa).
func BoundaryElementRequired(sigma, fc float64) bool {
	return sigma > 0.2*fc
}

// ExtremeFiberStress computes the maximum compressive stress at the wall
// edge under combined axial load and in-plane moment using gross section
// properties: σ = P/Ag + M·c/Ig.
//
// lw, t in mm; pu in kN; mu in kN-m. Result in MPa.
func ExtremeFiberStress(lw, t, pu, mu float64) float64 {
	ag := lw * t
	ig := t * math.Pow(lw, 3) / 12
	return pu*1e3/ag + mu*1e6*(lw/2)/ig
}

// SlendernessFactor returns the axial/flexural capacity reduction applied to
// thin walls to account for out-of-plane buckling of the compression zone.
// Walls with an unsupported-height-to-thickness ratio of 16 or less take no
// reduction; beyond that the capacity is knocked down linearly, floored at
// 0.5. Simplified from the moment magnification provisions of Section 11.8.
func SlendernessFactor(hw, t float64) float64 {
	if t <= 0 {
		return 1.0
	}
	ratio := hw / t
	if ratio <= 16 {
		return 1.0
	}
	return math.Max(0.5, 1.0-0.03*(ratio-16))
}

// StirrupMaxSpacing returns the maximum hoop spacing within a boundary
// element per ACI 318-19 Section 18.10.6.4(e): the least of t/3, 6·db and
// 150 mm, where db is the smallest longitudinal bar diameter.
func StirrupMaxSpacing(t, db float64) float64 {
	return math.Min(math.Min(t/3, 6*db), 150)
}
