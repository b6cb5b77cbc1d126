package pier

import (
	"math"

	"github.com/wilterwhite/ingeo-structures-sub002/internal/aci"
)

// Classification is the result of the geometric classification of a vertical
// element, which governs the code detailing rules that apply to it.
type Classification struct {
	// IsColumn is true when the segment is short enough in plan that it
	// must be designed as a seismic column rather than a wall pier.
	IsColumn bool

	// RequiresColumnDetails is true when column transverse detailing per
	// Section 18.7 applies.
	RequiresColumnDetails bool

	// MinThickness is the code-mandated minimum cross-section dimension
	// for this classification (mm).
	MinThickness float64

	// MinThicknessOK reports whether the element satisfies MinThickness.
	MinThicknessOK bool

	// Aspect is the plan aspect ratio lw/t used for classification.
	Aspect float64
}

// Column classification threshold: wall segments with lw/bw ≤ 2.5 resisting
// seismic demand are designed as columns (ACI 318-19 Section 18.10.8.1).
const columnAspectLimit = 2.5

// Classify labels a vertical element as a wall, wall pier or seismic column
// and derives its minimum thickness.
func Classify(p *Pier) Classification {
	c := Classification{}
	if p.Thickness > 0 {
		c.Aspect = p.Length / p.Thickness
	}

	if p.Seismic && c.Aspect <= columnAspectLimit {
		c.IsColumn = true
		c.RequiresColumnDetails = true
		c.MinThickness = aci.ColumnMinDimension
	} else {
		// Wall minimum thickness: hw/25 but not less than 150 mm
		// (ACI 318-19 Section 11.3.1.1 form)
		c.MinThickness = math.Max(150, p.Height/25)
	}

	c.MinThicknessOK = p.Thickness >= c.MinThickness
	return c
}

// StandardClassifier adapts Classify to the classification port consumed by
// the design package.
type StandardClassifier struct{}

// Classify implements the classification port.
func (StandardClassifier) Classify(p *Pier) Classification {
	return Classify(p)
}
