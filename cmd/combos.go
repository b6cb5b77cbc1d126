package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wilterwhite/ingeo-structures-sub002/internal/aci"
)

var (
	// Unfactored forces per load type, entered as P,M,V triples
	combosDead       []float64
	combosLive       []float64
	combosRoof       []float64
	combosWind       []float64
	combosEarthquake []float64

	combosShowAll bool
)

var combosCmd = &cobra.Command{
	Use:   "combos",
	Short: "Calculate governing factored forces using ACI load combinations",
	Long: `Calculate the governing factored forces (Pu, Mu, Vu) from unfactored
member forces using the ACI 318-19 Section 5.3.1 strength combinations.

Each load type takes a comma-separated P,M,V triple in kN, kN-m, kN.

Load Types:
  D - Dead load
  L - Live load
  Lr - Roof live load
  W - Wind load
  E - Earthquake load

Examples:
  # Gravity plus earthquake
  piercheck combos --dead 800,300,120 --live 250,120,60 --eq 0,1400,520

  # Show all combinations
  piercheck combos --dead 800,300,120 --live 250,120,60 --all`,
	Run: runCombos,
}

func init() {
	rootCmd.AddCommand(combosCmd)

	combosCmd.Flags().Float64SliceVar(&combosDead, "dead", nil, "Dead load P,M,V (kN, kN-m, kN)")
	combosCmd.Flags().Float64SliceVar(&combosLive, "live", nil, "Live load P,M,V")
	combosCmd.Flags().Float64SliceVar(&combosRoof, "roof", nil, "Roof live load P,M,V")
	combosCmd.Flags().Float64SliceVar(&combosWind, "wind", nil, "Wind load P,M,V")
	combosCmd.Flags().Float64SliceVar(&combosEarthquake, "eq", nil, "Earthquake load P,M,V")
	combosCmd.Flags().BoolVar(&combosShowAll, "all", false, "Show every combination, not just the governing one")
}

func triple(name string, values []float64) (aci.MemberForces, error) {
	if len(values) == 0 {
		return aci.MemberForces{}, nil
	}
	if len(values) != 3 {
		return aci.MemberForces{}, fmt.Errorf("--%s wants a P,M,V triple, got %d value(s)", name, len(values))
	}
	return aci.MemberForces{P: values[0], M: values[1], V: values[2]}, nil
}

func runCombos(cmd *cobra.Command, args []string) {
	var service aci.ServiceForces
	var err error

	if service.Dead, err = triple("dead", combosDead); err == nil {
		if service.Live, err = triple("live", combosLive); err == nil {
			if service.Roof, err = triple("roof", combosRoof); err == nil {
				if service.Wind, err = triple("wind", combosWind); err == nil {
					service.Earthquake, err = triple("eq", combosEarthquake)
				}
			}
		}
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     FACTORED FORCES - ACI 318-19 SECTION 5.3.1")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if combosShowAll {
		fmt.Println("ALL COMBINATIONS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  ID\tCombination\tPu (kN)\tMu (kN-m)\tVu (kN)\n")
		fmt.Fprintf(w, "  ──\t───────────\t───────\t─────────\t───────\n")
		for _, combo := range aci.LoadCombinations {
			f := combo.Factor(service)
			fmt.Fprintf(w, "  %s\t%s\t%.1f\t%.1f\t%.1f\n", combo.ID, combo.Description, f.P, f.M, f.V)
		}
		w.Flush()
		fmt.Println()
	}

	governing, combo := aci.GoverningForces(service, aci.LoadCombinations)

	fmt.Println("GOVERNING FORCES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Combination:\t%s (%s)\n", combo.ID, combo.Description)
	fmt.Fprintf(w, "  Pu:\t%.1f kN\n", governing.P)
	fmt.Fprintf(w, "  Mu:\t%.1f kN-m\n", governing.M)
	fmt.Fprintf(w, "  Vu (envelope):\t%.1f kN\n", governing.V)
	w.Flush()
	fmt.Println()
}
