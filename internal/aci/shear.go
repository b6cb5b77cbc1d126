package aci

import (
	"fmt"
	"math"
)

// ShearResult holds the outcome of an in-plane shear capacity check.
type ShearResult struct {
	AlphaC float64 // Aspect-ratio coefficient
	RhoT   float64 // Transverse (horizontal) web reinforcement ratio
	Vn     float64 // Nominal shear capacity (kN)
	PhiVn  float64 // Design shear capacity (kN)
	DCR    float64 // Vu / φVn
}

// WallShear computes the in-plane shear capacity of a wall pier per
// ACI 318-19 Section 18.10.4.1:
//
//	Vn = Acv·(αc·λ·√f'c + ρt·fy)
//
// with αc = 0.25 for hw/lw ≤ 1.5, 0.17 for hw/lw ≥ 2.0, interpolated
// between, and Vn capped at 0.66·√f'c·Acv (18.10.4.4). Normal-weight
// concrete is assumed (λ = 1.0).
//
// lw, t, hw in mm; fc, fy in MPa; rhoT dimensionless; vu in kN.
func WallShear(lw, t, hw, fc, fy, rhoT, vu float64) (*ShearResult, error) {
	if lw <= 0 || t <= 0 || hw <= 0 {
		return nil, fmt.Errorf("invalid wall dimensions: lw=%.2f, t=%.2f, hw=%.2f", lw, t, hw)
	}
	if fc <= 0 || fy <= 0 {
		return nil, fmt.Errorf("invalid material properties: f'c=%.2f, fy=%.2f", fc, fy)
	}
	if vu <= 0 {
		return nil, fmt.Errorf("invalid factored shear: Vu=%.2f", vu)
	}

	result := &ShearResult{RhoT: rhoT}
	result.AlphaC = alphaC(hw / lw)

	acv := lw * t // mm²
	sqrtFc := math.Sqrt(fc)

	vn := acv * (result.AlphaC*sqrtFc + rhoT*fy)
	vnMax := 0.66 * sqrtFc * acv
	if vn > vnMax {
		vn = vnMax
	}

	result.Vn = vn / 1e3 // N to kN
	result.PhiVn = PhiShear * result.Vn
	result.DCR = vu / result.PhiVn

	return result, nil
}

// alphaC returns the shear strength coefficient for a wall aspect ratio
// hw/lw per ACI 318-19 Section 18.10.4.1.
func alphaC(aspect float64) float64 {
	switch {
	case aspect <= 1.5:
		return 0.25
	case aspect >= 2.0:
		return 0.17
	default:
		// Linear interpolation between 1.5 and 2.0
		return 0.25 - (0.25-0.17)*(aspect-1.5)/0.5
	}
}
