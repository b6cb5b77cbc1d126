package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wilterwhite/ingeo-structures-sub002/internal/pier"
	"github.com/wilterwhite/ingeo-structures-sub002/internal/rebar"
)

var pierCmd = &cobra.Command{
	Use:   "pier",
	Short: "Wall pier verification and design proposals",
	Long: `Verify a single reinforced-concrete wall pier against ACI 318-19
and, when it fails, generate a corrective design proposal.

Use the subcommands:
  verify   - run the code checks and report SF / DCR
  propose  - run the checks and search for a corrective reinforcement change`,
}

func init() {
	rootCmd.AddCommand(pierCmd)
}

// pierFlags collects the flags shared by the pier subcommands.
type pierFlags struct {
	key string

	length    float64
	height    float64
	thickness float64

	fc float64
	fy float64

	edgeBars   int
	edgeBarDia int

	meshes   int
	meshBarV int
	meshBarH int
	spacingV int
	spacingH int

	stirrupDia   int
	stirrupSpace int
	stirrupLegs  int

	seismic bool

	pu float64
	mu float64
	vu float64
}

func (pf *pierFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&pf.key, "key", "PIER", "Pier identifier")

	// Geometry flags
	cmd.Flags().Float64VarP(&pf.length, "length", "l", 0, "Pier length lw (mm) [required]")
	cmd.Flags().Float64Var(&pf.height, "height", 0, "Unsupported height hw (mm) [required]")
	cmd.Flags().Float64VarP(&pf.thickness, "thickness", "t", 0, "Web thickness t (mm) [required]")

	// Material flags
	cmd.Flags().Float64Var(&pf.fc, "fc", 28, "Concrete compressive strength f'c (MPa)")
	cmd.Flags().Float64Var(&pf.fy, "fy", 420, "Steel yield strength fy (MPa)")

	// Reinforcement flags
	cmd.Flags().IntVar(&pf.edgeBars, "edge-bars", 2, "Boundary bars per end")
	cmd.Flags().IntVar(&pf.edgeBarDia, "edge-dia", 16, "Boundary bar diameter (mm)")
	cmd.Flags().IntVar(&pf.meshes, "meshes", 2, "Number of web curtains (1 or 2)")
	cmd.Flags().IntVar(&pf.meshBarV, "mesh-dia-v", 10, "Vertical web bar diameter (mm)")
	cmd.Flags().IntVar(&pf.meshBarH, "mesh-dia-h", 10, "Horizontal web bar diameter (mm)")
	cmd.Flags().IntVar(&pf.spacingV, "spacing-v", 250, "Vertical web bar spacing (mm)")
	cmd.Flags().IntVar(&pf.spacingH, "spacing-h", 250, "Horizontal web bar spacing (mm)")
	cmd.Flags().IntVar(&pf.stirrupDia, "stirrup-dia", 10, "Boundary tie diameter (mm)")
	cmd.Flags().IntVar(&pf.stirrupSpace, "stirrup-spacing", 150, "Boundary tie spacing (mm)")
	cmd.Flags().IntVar(&pf.stirrupLegs, "stirrup-legs", 2, "Boundary tie leg count")
	cmd.Flags().BoolVar(&pf.seismic, "seismic", true, "Pier is part of the seismic lateral system")

	// Loading flags
	cmd.Flags().Float64Var(&pf.pu, "pu", 0, "Factored axial load Pu (kN)")
	cmd.Flags().Float64VarP(&pf.mu, "mu", "m", 0, "Factored in-plane moment Mu (kN-m) [required]")
	cmd.Flags().Float64VarP(&pf.vu, "vu", "v", 0, "Factored in-plane shear Vu (kN) [required]")

	// Mark required flags
	cmd.MarkFlagRequired("length")
	cmd.MarkFlagRequired("height")
	cmd.MarkFlagRequired("thickness")
	cmd.MarkFlagRequired("mu")
	cmd.MarkFlagRequired("vu")
}

// build converts the flag values into a pier element and its demand.
func (pf *pierFlags) build() (*pier.Pier, pier.Forces, error) {
	edgeBar, err := rebar.Parse(pf.edgeBarDia)
	if err != nil {
		return nil, pier.Forces{}, fmt.Errorf("edge bars: %w", err)
	}
	meshV, err := rebar.Parse(pf.meshBarV)
	if err != nil {
		return nil, pier.Forces{}, fmt.Errorf("vertical mesh: %w", err)
	}
	meshH, err := rebar.Parse(pf.meshBarH)
	if err != nil {
		return nil, pier.Forces{}, fmt.Errorf("horizontal mesh: %w", err)
	}
	stirrup, err := rebar.Parse(pf.stirrupDia)
	if err != nil {
		return nil, pier.Forces{}, fmt.Errorf("stirrups: %w", err)
	}

	p := &pier.Pier{
		Key:            pf.key,
		Length:         pf.length,
		Height:         pf.height,
		Thickness:      pf.thickness,
		Fc:             pf.fc,
		Fy:             pf.fy,
		NEdgeBars:      pf.edgeBars,
		EdgeBar:        edgeBar,
		NMeshes:        pf.meshes,
		MeshBarV:       meshV,
		MeshBarH:       meshH,
		SpacingV:       pf.spacingV,
		SpacingH:       pf.spacingH,
		StirrupBar:     stirrup,
		StirrupSpacing: pf.stirrupSpace,
		NStirrupLegs:   pf.stirrupLegs,
		Seismic:        pf.seismic,
	}
	if err := p.Validate(); err != nil {
		return nil, pier.Forces{}, err
	}
	return p, pier.Forces{Pu: pf.pu, Mu: pf.mu, Vu: pf.vu}, nil
}
