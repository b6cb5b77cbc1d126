package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wilterwhite/ingeo-structures-sub002/internal/design"
	"github.com/wilterwhite/ingeo-structures-sub002/internal/diagram"
	"github.com/wilterwhite/ingeo-structures-sub002/internal/pier"
)

var (
	proposeFlags pierFlags

	proposeShowDiagram bool
	proposeExportFile  string
)

var pierProposeCmd = &cobra.Command{
	Use:   "propose",
	Short: "Generate a corrective design proposal for a failing pier",
	Long: `Verify a wall pier and, when it fails a check or carries wasteful
strength margins, search the discrete reinforcement space for a minimal
corrective change: more boundary bars, tighter or heavier mesh, a second
curtain, or a thicker section.

The search is bounded and deterministic; when no combination restores
compliance the best configuration found is reported with an explicit
redesign note.

Examples:
  # Propose a fix for an overloaded pier
  piercheck pier propose -l 3000 --height 3200 -t 250 --mu 2600 --vu 900 --pu 900

  # Export the proposed section
  piercheck pier propose -l 3000 --height 3200 -t 250 --mu 2600 --vu 900 -o proposed.png`,
	Run: runPierPropose,
}

func init() {
	pierCmd.AddCommand(pierProposeCmd)
	proposeFlags.register(pierProposeCmd)

	pierProposeCmd.Flags().BoolVar(&proposeShowDiagram, "diagram", false, "Show ASCII diagrams of the current and proposed sections")
	pierProposeCmd.Flags().StringVarP(&proposeExportFile, "output", "o", "", "Export proposed section diagram to file (png, svg, pdf)")
}

func runPierPropose(cmd *cobra.Command, args []string) {
	p, f, err := proposeFlags.build()
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
	boundary := pier.BoundaryRequired(p, f)
	slender := pier.SlendernessReduction(p)

	gen := design.NewGenerator(checker, pier.StandardClassifier{}, design.DefaultThresholds())
	proposal, err := gen.GenerateProposal(p, f, sf, dcr, boundary, slender)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     WALL PIER DESIGN PROPOSAL - ACI 318-19")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("CURRENT STATE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Pier:\t%s\n", p.Key)
	fmt.Fprintf(w, "  Flexural safety factor:\t%.3f\n", sf)
	fmt.Fprintf(w, "  Shear demand/capacity:\t%.3f\n", dcr)
	fmt.Fprintf(w, "  Boundary element required:\t%v\n", boundary)
	fmt.Fprintf(w, "  Slenderness reduction:\t%.2f\n", slender)
	w.Flush()
	fmt.Println()

	if proposal == nil {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  PIER COMPLIES - NO CHANGES NEEDED      ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
		fmt.Println()
		return
	}

	printProposal(proposal)

	if proposeShowDiagram {
		fmt.Println(diagram.DrawASCIIPierSection(pierDiagramData(p, "CURRENT SECTION")))
		fmt.Println(diagram.DrawASCIIPierSection(proposalDiagramData(p, proposal)))
	}
	if proposeExportFile != "" {
		if err := diagram.ExportPierSection(proposalDiagramData(p, proposal), proposeExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", proposeExportFile)
		}
	}
}

func printProposal(proposal *design.Proposal) {
	fmt.Println("PROPOSAL:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Failure mode:\t%s\n", proposal.FailureMode)
	fmt.Fprintf(w, "  Proposal type:\t%s\n", proposal.ProposalType)
	fmt.Fprintf(w, "  Iterations:\t%d\n", proposal.Iterations)
	fmt.Fprintf(w, "  Safety factor:\t%.3f → %.3f\n", proposal.OriginalSF, proposal.ProposedSF)
	fmt.Fprintf(w, "  Demand/capacity:\t%.3f → %.3f\n", proposal.OriginalDCR, proposal.ProposedDCR)
	w.Flush()
	fmt.Println()

	fmt.Println("CHANGES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	for _, change := range proposal.Changes {
		fmt.Printf("  • %s\n", change)
	}
	fmt.Println()

	if proposal.Success {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  PROPOSAL RESTORES COMPLIANCE           ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
	} else {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  BEST EFFORT ONLY - SEE NOTES           ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
	}
	fmt.Println()
}

func proposalDiagramData(p *pier.Pier, proposal *design.Proposal) diagram.PierSectionData {
	cfg := proposal.Proposed
	thickness := p.Thickness
	if cfg.Thickness > 0 {
		thickness = cfg.Thickness
	}
	return diagram.PierSectionData{
		Length:    p.Length,
		Thickness: thickness,
		NEdgeBars: cfg.NEdgeBars,
		EdgeBarMM: int(cfg.EdgeBar),
		NMeshes:   cfg.NMeshes,
		MeshBarMM: int(cfg.MeshBarV),
		SpacingV:  cfg.SpacingV,
		Title:     "PROPOSED SECTION",
	}
}
