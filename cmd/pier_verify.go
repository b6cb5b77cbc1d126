package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wilterwhite/ingeo-structures-sub002/internal/diagram"
	"github.com/wilterwhite/ingeo-structures-sub002/internal/pier"
)

var (
	verifyFlags pierFlags

	verifyShowDiagram bool
	verifyExportFile  string
)

var pierVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a wall pier against ACI 318-19",
	Long: `Run the code checks on a single wall pier: in-plane flexure (safety
factor), in-plane shear (demand/capacity ratio), web reinforcement spacing
and minimum-ratio limits, boundary-element requirement and classification.

The checks follow ACI 318-19 provisions:
  - Section 18.10.4.1: Wall shear capacity
  - Section 18.10.6.3: Boundary element requirement (stress-based)
  - Section 11.7.2.1: Distributed reinforcement spacing limits

Examples:
  # Verify a 3000x250mm pier, 2 curtains of φ10@250
  piercheck pier verify -l 3000 --height 3200 -t 250 --mu 1800 --vu 650 --pu 900

  # With explicit reinforcement
  piercheck pier verify -l 3000 --height 3200 -t 250 \
    --edge-bars 4 --edge-dia 20 --spacing-v 200 --spacing-h 200 \
    --mu 1800 --vu 650`,
	Run: runPierVerify,
}

func init() {
	pierCmd.AddCommand(pierVerifyCmd)
	verifyFlags.register(pierVerifyCmd)

	// Diagram options
	pierVerifyCmd.Flags().BoolVar(&verifyShowDiagram, "diagram", false, "Show ASCII section diagram")
	pierVerifyCmd.Flags().StringVarP(&verifyExportFile, "output", "o", "", "Export section diagram to file (png, svg, pdf)")
}

func runPierVerify(cmd *cobra.Command, args []string) {
	p, f, err := verifyFlags.build()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	checker := pier.Checker{}
	sf, err := checker.FlexureSF(p, f)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	dcr, err := checker.ShearDCR(p, f)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	cls := pier.Classify(p)
	boundary := pier.BoundaryRequired(p, f)
	slender := pier.SlendernessReduction(p)

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     WALL PIER VERIFICATION - ACI 318-19")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Input summary
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Pier:\t%s\n", p.Key)
	fmt.Fprintf(w, "  Length (lw):\t%.0f mm\n", p.Length)
	fmt.Fprintf(w, "  Height (hw):\t%.0f mm\n", p.Height)
	fmt.Fprintf(w, "  Thickness (t):\t%.0f mm\n", p.Thickness)
	fmt.Fprintf(w, "  f'c:\t%.1f MPa\n", p.Fc)
	fmt.Fprintf(w, "  fy:\t%.1f MPa\n", p.Fy)
	fmt.Fprintf(w, "  Boundary bars:\t%d%s per end\n", p.NEdgeBars, p.EdgeBar)
	fmt.Fprintf(w, "  Web mesh:\t%d x %s@%d / %s@%d\n", p.NMeshes, p.MeshBarV, p.SpacingV, p.MeshBarH, p.SpacingH)
	fmt.Fprintf(w, "  Pu / Mu / Vu:\t%.1f kN / %.1f kN-m / %.1f kN\n", f.Pu, f.Mu, f.Vu)
	w.Flush()
	fmt.Println()

	// Classification
	fmt.Println("CLASSIFICATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	label := "Wall pier"
	if cls.IsColumn {
		label = "Seismic column"
	}
	fmt.Fprintf(w, "  Element type:\t%s (lw/t = %.2f)\n", label, cls.Aspect)
	fmt.Fprintf(w, "  Minimum thickness:\t%.0f mm\n", cls.MinThickness)
	fmt.Fprintf(w, "  Thickness OK:\t%v\n", cls.MinThicknessOK)
	w.Flush()
	fmt.Println()

	// Strength checks
	fmt.Println("STRENGTH CHECKS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Flexural safety factor (φMn/Mu):\t%.3f %s\n", sf, passMark(sf >= 1.0))
	fmt.Fprintf(w, "  Shear demand/capacity (Vu/φVn):\t%.3f %s\n", dcr, passMark(dcr <= 1.0))
	fmt.Fprintf(w, "  Slenderness reduction:\t%.2f\n", slender)
	fmt.Fprintf(w, "  Boundary element required:\t%v\n", boundary)
	w.Flush()
	fmt.Println()

	// Detailing checks
	fmt.Println("DETAILING CHECKS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, check := range pier.CheckSpacing(p) {
		fmt.Fprintf(w, "  %s:\t%.0f mm (limit %.0f mm) %s\n", check.Name, check.Actual, check.Limit, passMark(check.OK))
	}
	for _, check := range pier.CheckMinReinforcement(p) {
		fmt.Fprintf(w, "  %s:\t%.5f (min %.4f) %s\n", check.Name, check.Actual, check.Limit, passMark(check.OK))
	}
	w.Flush()
	fmt.Println()

	if verifyShowDiagram {
		fmt.Println(diagram.DrawASCIIPierSection(pierDiagramData(p, "")))
	}
	if verifyExportFile != "" {
		if err := diagram.ExportPierSection(pierDiagramData(p, ""), verifyExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", verifyExportFile)
		}
	}
}

func passMark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func pierDiagramData(p *pier.Pier, title string) diagram.PierSectionData {
	return diagram.PierSectionData{
		Length:    p.Length,
		Thickness: p.Thickness,
		NEdgeBars: p.NEdgeBars,
		EdgeBarMM: int(p.EdgeBar),
		NMeshes:   p.NMeshes,
		MeshBarMM: int(p.MeshBarV),
		SpacingV:  p.SpacingV,
		Title:     title,
	}
}
