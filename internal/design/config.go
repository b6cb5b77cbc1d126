package design

import (
	"fmt"

	"github.com/wilterwhite/ingeo-structures-sub002/internal/pier"
	"github.com/wilterwhite/ingeo-structures-sub002/internal/rebar"
)

// Config is one candidate reinforcement layout for a pier: the unit of
// search. Configs are plain values; strategies branch by copying, never by
// mutating a shared instance.
type Config struct {
	// Boundary (edge) reinforcement
	NEdgeBars int
	EdgeBar   rebar.BarSize

	// Distributed web reinforcement
	NMeshes  int
	MeshBarV rebar.BarSize
	MeshBarH rebar.BarSize
	SpacingV int // mm
	SpacingH int // mm

	// Boundary-element transverse reinforcement
	StirrupBar     rebar.BarSize
	StirrupSpacing int // mm
	NStirrupLegs   int

	// Thickness is a proposed member thickness in mm; zero means the
	// element thickness is unchanged.
	Thickness float64
}

// ConfigFrom snapshots the current reinforcement of a pier. The snapshot
// carries no thickness: only strategies that change the member dimension
// set it.
func ConfigFrom(p *pier.Pier) Config {
	return Config{
		NEdgeBars:      p.NEdgeBars,
		EdgeBar:        p.EdgeBar,
		NMeshes:        p.NMeshes,
		MeshBarV:       p.MeshBarV,
		MeshBarH:       p.MeshBarH,
		SpacingV:       p.SpacingV,
		SpacingH:       p.SpacingH,
		StirrupBar:     p.StirrupBar,
		StirrupSpacing: p.StirrupSpacing,
		NStirrupLegs:   p.NStirrupLegs,
	}
}

// ApplyTo builds an independent trial pier carrying this configuration.
// The source pier is never modified.
func (c Config) ApplyTo(p *pier.Pier) *pier.Pier {
	trial := p.Clone()
	trial.NEdgeBars = c.NEdgeBars
	trial.EdgeBar = c.EdgeBar
	trial.NMeshes = c.NMeshes
	trial.MeshBarV = c.MeshBarV
	trial.MeshBarH = c.MeshBarH
	trial.SpacingV = c.SpacingV
	trial.SpacingH = c.SpacingH
	trial.StirrupBar = c.StirrupBar
	trial.StirrupSpacing = c.StirrupSpacing
	trial.NStirrupLegs = c.NStirrupLegs
	if c.Thickness > 0 {
		trial.Thickness = c.Thickness
	}
	return trial
}

// AsEdgePerEnd returns the boundary steel area at one pier end (mm²).
func (c Config) AsEdgePerEnd() float64 {
	return float64(c.NEdgeBars) * c.EdgeBar.Area()
}

// AsEdge returns the total boundary steel area, both ends combined (mm²).
func (c Config) AsEdge() float64 {
	return 2 * c.AsEdgePerEnd()
}

// Diff renders the human-readable list of changes from orig to c.
func (c Config) Diff(orig Config) []string {
	var changes []string

	if c.NEdgeBars != orig.NEdgeBars || c.EdgeBar != orig.EdgeBar {
		changes = append(changes, fmt.Sprintf("Boundary bars: %d%s → %d%s per end",
			orig.NEdgeBars, orig.EdgeBar, c.NEdgeBars, c.EdgeBar))
	}
	if c.NMeshes != orig.NMeshes {
		changes = append(changes, fmt.Sprintf("Curtains: %d → %d", orig.NMeshes, c.NMeshes))
	}
	if c.MeshBarV != orig.MeshBarV || c.SpacingV != orig.SpacingV {
		changes = append(changes, fmt.Sprintf("Vertical mesh: %s@%d → %s@%d",
			orig.MeshBarV, orig.SpacingV, c.MeshBarV, c.SpacingV))
	}
	if c.MeshBarH != orig.MeshBarH || c.SpacingH != orig.SpacingH {
		changes = append(changes, fmt.Sprintf("Horizontal mesh: %s@%d → %s@%d",
			orig.MeshBarH, orig.SpacingH, c.MeshBarH, c.SpacingH))
	}
	if c.StirrupBar != orig.StirrupBar || c.StirrupSpacing != orig.StirrupSpacing {
		changes = append(changes, fmt.Sprintf("Stirrups: %s@%d → %s@%d",
			orig.StirrupBar, orig.StirrupSpacing, c.StirrupBar, c.StirrupSpacing))
	}
	if c.NStirrupLegs != orig.NStirrupLegs {
		changes = append(changes, fmt.Sprintf("Stirrup legs: %d → %d", orig.NStirrupLegs, c.NStirrupLegs))
	}
	if c.Thickness > 0 && c.Thickness != orig.Thickness {
		if orig.Thickness > 0 {
			changes = append(changes, fmt.Sprintf("Thickness: %.0f mm → %.0f mm", orig.Thickness, c.Thickness))
		} else {
			changes = append(changes, fmt.Sprintf("Thickness: increase to %.0f mm", c.Thickness))
		}
	}

	return changes
}
