package aci

// LoadCombination represents an ACI 318-19 strength design load combination
// (Section 5.3.1).
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
}

// LoadCombinations lists the basic strength combinations of ACI 318-19
// Table 5.3.1, with seismic combinations included since wall piers are
// typically seismic-governed.
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5Lr",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6Lr + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5Lr",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// MemberForces holds one set of internal forces on a pier: axial (kN,
// compression positive), in-plane moment (kN-m) and in-plane shear (kN).
type MemberForces struct {
	P float64
	M float64
	V float64
}

// ServiceForces holds unfactored member forces per load type.
type ServiceForces struct {
	Dead       MemberForces
	Live       MemberForces
	Roof       MemberForces
	Wind       MemberForces
	Earthquake MemberForces
}

// Factor applies the combination's load factors to a set of service forces.
func (lc LoadCombination) Factor(sf ServiceForces) MemberForces {
	return MemberForces{
		P: lc.Dead*sf.Dead.P + lc.Live*sf.Live.P + lc.Roof*sf.Roof.P + lc.Wind*sf.Wind.P + lc.Earthquake*sf.Earthquake.P,
		M: lc.Dead*sf.Dead.M + lc.Live*sf.Live.M + lc.Roof*sf.Roof.M + lc.Wind*sf.Wind.M + lc.Earthquake*sf.Earthquake.M,
		V: lc.Dead*sf.Dead.V + lc.Live*sf.Live.V + lc.Roof*sf.Roof.V + lc.Wind*sf.Wind.V + lc.Earthquake*sf.Earthquake.V,
	}
}

// GoverningForces scans all combinations and returns the factored forces
// with the largest in-plane moment, together with the governing combination.
// Shear-governed piers are covered as well: the returned forces carry the
// envelope (component-wise maximum) of moment and shear across combinations
// paired with the axial load of the moment-governing combination.
func GoverningForces(sf ServiceForces, combinations []LoadCombination) (MemberForces, LoadCombination) {
	var governing LoadCombination
	var result MemberForces

	for i, combo := range combinations {
		f := combo.Factor(sf)
		if i == 0 || f.M > result.M {
			result.P = f.P
			result.M = f.M
			governing = combo
		}
		if f.V > result.V {
			result.V = f.V
		}
	}

	return result, governing
}
