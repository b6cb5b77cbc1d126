package aci

import "math"

// ACI 318-19 Material and Code Constants

const (
	// Beta1 factors for equivalent rectangular stress block
	// Table 22.2.2.4.3
	Beta1Max = 0.85 // for f'c <= 28 MPa
	Beta1Min = 0.65 // minimum value

	// Strain limits
	EpsilonCU = 0.003 // Ultimate concrete strain (Section 22.2.2.1)

	// Strength reduction factors (Table 21.2.1)
	PhiFlexure     = 0.90 // Tension-controlled sections
	PhiShear       = 0.75 // Shear
	PhiCompression = 0.65 // Compression-controlled (tied)

	// Modulus of elasticity for steel (Section 20.2.2.2)
	Es = 200000.0 // MPa

	// Minimum distributed web reinforcement ratio for structural walls
	// Section 11.6.1 / 18.10.2.1
	MinWebRatio = 0.0025

	// Minimum cross-sectional dimension for special moment frame columns
	// Section 18.7.2.1
	ColumnMinDimension = 300.0 // mm

	// Absolute cap on distributed bar spacing in walls
	// Section 11.7.2.1
	SpacingCap = 450.0 // mm
)

// Beta1 calculates the factor for the equivalent rectangular stress block.
// ACI 318-19 Table 22.2.2.4.3
func Beta1(fc float64) float64 {
	if fc <= 28 {
		return Beta1Max
	}
	// β1 = 0.85 - 0.05(f'c - 28)/7 for f'c > 28 MPa
	beta1 := Beta1Max - 0.05*(fc-28)/7
	return math.Max(beta1, Beta1Min)
}

// Phi calculates the strength reduction factor based on net tensile strain.
// ACI 318-19 Table 21.2.2
func Phi(epsilonT, fy float64) float64 {
	epsilonTY := fy / Es

	if epsilonT >= epsilonTY+0.003 {
		// Tension-controlled
		return PhiFlexure
	} else if epsilonT <= epsilonTY {
		// Compression-controlled
		return PhiCompression
	}
	// Transition zone
	return PhiCompression + (PhiFlexure-PhiCompression)*(epsilonT-epsilonTY)/0.003
}

// RhoMax calculates the maximum reinforcement ratio for a tension-controlled
// section. Beyond this ratio the section response is no longer ductile.
func RhoMax(fc, fy float64) float64 {
	beta1 := Beta1(fc)
	// c/d = εcu / (εcu + εt) with εt = 0.005 at the tension-controlled limit
	return 0.85 * beta1 * (fc / fy) * (EpsilonCU / (EpsilonCU + 0.005))
}

// RhoMin calculates the minimum flexural reinforcement ratio.
// ACI 318-19 Section 9.6.1.2 form, applied to the wall boundary region.
func RhoMin(fc, fy float64) float64 {
	rho1 := 0.25 * math.Sqrt(fc) / fy
	rho2 := 1.4 / fy
	return math.Max(rho1, rho2)
}
