// Package rebar provides reinforcing bar sizes and section properties.
package rebar

import (
	"fmt"
	"math"
)

// BarSize is the nominal bar diameter in millimeters (soft metric sizes).
type BarSize int

// Standard bar sizes used for wall reinforcement
const (
	Bar8  BarSize = 8
	Bar10 BarSize = 10
	Bar12 BarSize = 12
	Bar16 BarSize = 16
	Bar20 BarSize = 20
	Bar25 BarSize = 25
	Bar32 BarSize = 32
)

// Sizes lists all supported bar sizes in ascending order.
var Sizes = []BarSize{Bar8, Bar10, Bar12, Bar16, Bar20, Bar25, Bar32}

// Area returns the nominal cross-sectional area of a single bar (mm²).
func (b BarSize) Area() float64 {
	d := float64(b)
	return math.Pi * d * d / 4.0
}

// Diameter returns the nominal diameter in mm.
func (b BarSize) Diameter() float64 {
	return float64(b)
}

// Valid reports whether b is one of the supported sizes.
func (b BarSize) Valid() bool {
	for _, s := range Sizes {
		if s == b {
			return true
		}
	}
	return false
}

func (b BarSize) String() string {
	return fmt.Sprintf("φ%d", int(b))
}

// Parse converts a nominal diameter in mm to a BarSize.
func Parse(diameter int) (BarSize, error) {
	b := BarSize(diameter)
	if !b.Valid() {
		return 0, fmt.Errorf("unsupported bar diameter: %dmm", diameter)
	}
	return b, nil
}

// Next returns the next larger bar size, or b itself if b is already the largest.
func (b BarSize) Next() BarSize {
	for i, s := range Sizes {
		if s == b && i+1 < len(Sizes) {
			return Sizes[i+1]
		}
	}
	return b
}
