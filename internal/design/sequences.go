package design

import "github.com/wilterwhite/ingeo-structures-sub002/internal/rebar"

// Parameter sequences define the discrete search lattice. Each table is
// ordered by non-decreasing delivered capacity, which is what lets the
// strategies stop at the first acceptable entry and still claim a minimal
// change: advancing an index never loses capacity.

// BoundaryEntry is one boundary-bar arrangement: count of bars per pier end
// at a given diameter.
type BoundaryEntry struct {
	Count int
	Bar   rebar.BarSize
}

// AreaPerEnd returns the delivered boundary steel area at one end (mm²).
func (e BoundaryEntry) AreaPerEnd() float64 {
	return float64(e.Count) * e.Bar.Area()
}

// BoundarySequence lists boundary-bar arrangements in strictly ascending
// steel area.
var BoundarySequence = []BoundaryEntry{
	{2, rebar.Bar12},
	{2, rebar.Bar16},
	{3, rebar.Bar16},
	{2, rebar.Bar20},
	{4, rebar.Bar16},
	{3, rebar.Bar20},
	{4, rebar.Bar20},
	{3, rebar.Bar25},
	{4, rebar.Bar25},
	{5, rebar.Bar25},
	{4, rebar.Bar32},
	{5, rebar.Bar32},
	{6, rebar.Bar32},
}

// MeshSpacingSequence lists web bar spacings in mm, descending: each step
// delivers more steel per unit length.
var MeshSpacingSequence = []int{400, 350, 300, 250, 200, 150, 100}

// MeshBarSequence lists web bar diameters in ascending area.
var MeshBarSequence = []rebar.BarSize{rebar.Bar8, rebar.Bar10, rebar.Bar12, rebar.Bar16, rebar.Bar20}

// ThicknessSequence lists candidate member thicknesses in mm, ascending.
var ThicknessSequence = []float64{150, 200, 250, 300, 350, 400, 450, 500, 600}

// StirrupLegSequence lists boundary-element tie leg counts, ascending.
var StirrupLegSequence = []int{2, 3, 4}

// boundaryStart returns the index of the first boundary entry delivering
// more steel per end than asPerEnd, which is where an upgrade search begins.
// Returns len(BoundarySequence) when the table is exhausted.
func boundaryStart(asPerEnd float64) int {
	for i, e := range BoundarySequence {
		if e.AreaPerEnd() > asPerEnd {
			return i
		}
	}
	return len(BoundarySequence)
}

// boundaryIndex returns the position of the last entry delivering at most
// asPerEnd, i.e. the current configuration's place in the table. Returns -1
// when the current steel is below every entry.
func boundaryIndex(asPerEnd float64) int {
	idx := -1
	for i, e := range BoundarySequence {
		if e.AreaPerEnd() <= asPerEnd {
			idx = i
		}
	}
	return idx
}

// spacingIndex returns the position of spacing in the mesh spacing table:
// the first entry at or below the given spacing. Returns len-1 for spacings
// tighter than every entry.
func spacingIndex(spacing int) int {
	for i, s := range MeshSpacingSequence {
		if s <= spacing {
			return i
		}
	}
	return len(MeshSpacingSequence) - 1
}

// meshBarIndex returns the position of bar in the mesh diameter table, or
// -1 when the bar is smaller than every entry.
func meshBarIndex(bar rebar.BarSize) int {
	for i, b := range MeshBarSequence {
		if b == bar {
			return i
		}
	}
	// Off-table diameter: treat anything larger than the last entry as the
	// last entry, otherwise start below the table.
	if bar > MeshBarSequence[len(MeshBarSequence)-1] {
		return len(MeshBarSequence) - 1
	}
	return -1
}

// thicknessStart returns the index of the first thickness entry strictly
// above t and at or above the given floor.
func thicknessStart(t, floor float64) int {
	for i, cand := range ThicknessSequence {
		if cand > t && cand >= floor {
			return i
		}
	}
	return len(ThicknessSequence)
}

// thicknessIndex returns the position of the last entry at or below t, or
// -1 when t is thinner than every entry.
func thicknessIndex(t float64) int {
	idx := -1
	for i, cand := range ThicknessSequence {
		if cand <= t {
			idx = i
		}
	}
	return idx
}

// maxLegsFor returns the largest stirrup leg count a section of the given
// thickness can host: one leg per 100 mm, clamped to the table bounds.
func maxLegsFor(thickness float64) int {
	legs := int(thickness) / 100
	if legs < StirrupLegSequence[0] {
		legs = StirrupLegSequence[0]
	}
	if max := StirrupLegSequence[len(StirrupLegSequence)-1]; legs > max {
		legs = max
	}
	return legs
}
