// Package input loads pier project files: YAML documents listing the piers
// of a building with their geometry, reinforcement and factored demands.
package input

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wilterwhite/ingeo-structures-sub002/internal/pier"
	"github.com/wilterwhite/ingeo-structures-sub002/internal/rebar"
)

// Project is the root of a pier project file.
type Project struct {
	Name  string      `yaml:"name"`
	Piers []PierEntry `yaml:"piers"`
}

// PierEntry is one pier definition in a project file. Dimensions in mm,
// strengths in MPa, forces in kN / kN-m.
type PierEntry struct {
	Key string `yaml:"key"`

	Length    float64 `yaml:"length"`
	Height    float64 `yaml:"height"`
	Thickness float64 `yaml:"thickness"`

	Fc float64 `yaml:"fc"`
	Fy float64 `yaml:"fy"`

	EdgeBars     int `yaml:"edge_bars"`
	EdgeBarDia   int `yaml:"edge_bar_dia"`
	Meshes       int `yaml:"meshes"`
	MeshBarV     int `yaml:"mesh_bar_v"`
	MeshBarH     int `yaml:"mesh_bar_h"`
	SpacingV     int `yaml:"spacing_v"`
	SpacingH     int `yaml:"spacing_h"`
	StirrupDia   int `yaml:"stirrup_dia"`
	StirrupSpace int `yaml:"stirrup_spacing"`
	StirrupLegs  int `yaml:"stirrup_legs"`

	Seismic bool `yaml:"seismic"`

	Forces ForcesEntry `yaml:"forces"`
}

// ForcesEntry holds the factored demand on a pier.
type ForcesEntry struct {
	Pu float64 `yaml:"pu"`
	Mu float64 `yaml:"mu"`
	Vu float64 `yaml:"vu"`
}

// Load reads and validates a project file.
func Load(path string) (*Project, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}

	var project Project
	if err := yaml.Unmarshal(raw, &project); err != nil {
		return nil, fmt.Errorf("parsing project file: %w", err)
	}
	if len(project.Piers) == 0 {
		return nil, fmt.Errorf("project file %q defines no piers", path)
	}

	for i := range project.Piers {
		if _, _, err := project.Piers[i].Build(); err != nil {
			return nil, fmt.Errorf("pier %q: %w", project.Piers[i].Key, err)
		}
	}
	return &project, nil
}

// Build converts a project entry into a pier element and its demand.
func (e *PierEntry) Build() (*pier.Pier, pier.Forces, error) {
	edgeBar, err := rebar.Parse(e.EdgeBarDia)
	if err != nil {
		return nil, pier.Forces{}, fmt.Errorf("edge bars: %w", err)
	}
	meshV, err := rebar.Parse(e.MeshBarV)
	if err != nil {
		return nil, pier.Forces{}, fmt.Errorf("vertical mesh: %w", err)
	}
	meshH, err := rebar.Parse(e.MeshBarH)
	if err != nil {
		return nil, pier.Forces{}, fmt.Errorf("horizontal mesh: %w", err)
	}

	stirrup := rebar.Bar10
	if e.StirrupDia != 0 {
		stirrup, err = rebar.Parse(e.StirrupDia)
		if err != nil {
			return nil, pier.Forces{}, fmt.Errorf("stirrups: %w", err)
		}
	}
	legs := e.StirrupLegs
	if legs == 0 {
		legs = 2
	}

	p := &pier.Pier{
		Key:            e.Key,
		Length:         e.Length,
		Height:         e.Height,
		Thickness:      e.Thickness,
		Fc:             e.Fc,
		Fy:             e.Fy,
		NEdgeBars:      e.EdgeBars,
		EdgeBar:        edgeBar,
		NMeshes:        e.Meshes,
		MeshBarV:       meshV,
		MeshBarH:       meshH,
		SpacingV:       e.SpacingV,
		SpacingH:       e.SpacingH,
		StirrupBar:     stirrup,
		StirrupSpacing: e.StirrupSpace,
		NStirrupLegs:   legs,
		Seismic:        e.Seismic,
	}
	if err := p.Validate(); err != nil {
		return nil, pier.Forces{}, err
	}

	f := pier.Forces{Pu: e.Forces.Pu, Mu: e.Forces.Mu, Vu: e.Forces.Vu}
	if f.Mu <= 0 || f.Vu <= 0 {
		return nil, pier.Forces{}, fmt.Errorf("invalid factored forces: Mu=%.2f, Vu=%.2f", f.Mu, f.Vu)
	}
	return p, f, nil
}
