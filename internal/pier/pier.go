// Package pier models reinforced-concrete wall pier elements and implements
// their code verification and geometric classification.
package pier

import (
	"fmt"

	"github.com/wilterwhite/ingeo-structures-sub002/internal/rebar"
)

// Pier represents a reinforced-concrete wall segment (wall pier).
type Pier struct {
	Key string // identifier, e.g. "P12-S03"

	// Geometry (mm)
	Length    float64 // lw - horizontal length
	Height    float64 // hw - unsupported height
	Thickness float64 // t  - web thickness

	// Materials (MPa)
	Fc float64 // f'c - concrete compressive strength
	Fy float64 // fy - steel yield strength

	// Boundary (edge) reinforcement, same at both ends
	NEdgeBars int           // bars per end
	EdgeBar   rebar.BarSize // boundary bar diameter

	// Distributed web reinforcement
	NMeshes  int           // number of curtains (1 or 2)
	MeshBarV rebar.BarSize // vertical web bar diameter
	MeshBarH rebar.BarSize // horizontal web bar diameter
	SpacingV int           // vertical bar spacing (mm)
	SpacingH int           // horizontal bar spacing (mm)

	// Boundary-element transverse reinforcement
	StirrupBar     rebar.BarSize
	StirrupSpacing int // mm
	NStirrupLegs   int

	// Seismic demand flag: piers in the lateral system are detailed per
	// Chapter 18
	Seismic bool
}

// Forces holds the factored demand on a pier.
type Forces struct {
	Pu float64 // Axial load (kN, compression positive)
	Mu float64 // In-plane moment (kN-m)
	Vu float64 // In-plane shear (kN)
}

// Validate checks the element definition before any verification runs.
func (p *Pier) Validate() error {
	if p.Length <= 0 || p.Height <= 0 || p.Thickness <= 0 {
		return fmt.Errorf("invalid pier dimensions: lw=%.2f, hw=%.2f, t=%.2f", p.Length, p.Height, p.Thickness)
	}
	if p.Fc <= 0 || p.Fy <= 0 {
		return fmt.Errorf("invalid material properties: f'c=%.2f, fy=%.2f", p.Fc, p.Fy)
	}
	if p.NEdgeBars < 2 {
		return fmt.Errorf("invalid boundary reinforcement: %d bars per end (minimum 2)", p.NEdgeBars)
	}
	if p.NMeshes != 1 && p.NMeshes != 2 {
		return fmt.Errorf("invalid number of curtains: %d (must be 1 or 2)", p.NMeshes)
	}
	if p.SpacingV <= 0 || p.SpacingH <= 0 {
		return fmt.Errorf("invalid mesh spacing: sv=%d, sh=%d", p.SpacingV, p.SpacingH)
	}
	return nil
}

// Clone returns an independent copy of the pier.
func (p *Pier) Clone() *Pier {
	c := *p
	return &c
}

// AsEdge returns the total boundary steel area, both ends combined (mm²).
func (p *Pier) AsEdge() float64 {
	return float64(p.NEdgeBars) * 2 * p.EdgeBar.Area()
}

// AsWeb returns the total distributed vertical web steel area (mm²).
func (p *Pier) AsWeb() float64 {
	if p.SpacingV <= 0 {
		return 0
	}
	return float64(p.NMeshes) * p.MeshBarV.Area() * p.Length / float64(p.SpacingV)
}

// RhoV returns the distributed vertical web reinforcement ratio.
func (p *Pier) RhoV() float64 {
	if p.SpacingV <= 0 || p.Thickness <= 0 {
		return 0
	}
	return float64(p.NMeshes) * p.MeshBarV.Area() / (p.Thickness * float64(p.SpacingV))
}

// RhoH returns the distributed horizontal web reinforcement ratio.
func (p *Pier) RhoH() float64 {
	if p.SpacingH <= 0 || p.Thickness <= 0 {
		return 0
	}
	return float64(p.NMeshes) * p.MeshBarH.Area() / (p.Thickness * float64(p.SpacingH))
}

// VerticalRatio returns the total vertical reinforcement ratio over the
// gross section, boundary and web steel combined.
func (p *Pier) VerticalRatio() float64 {
	ag := p.Length * p.Thickness
	if ag <= 0 {
		return 0
	}
	return (p.AsEdge() + p.AsWeb()) / ag
}
