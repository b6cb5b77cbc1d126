package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wilterwhite/ingeo-structures-sub002/internal/design"
	"github.com/wilterwhite/ingeo-structures-sub002/internal/input"
	"github.com/wilterwhite/ingeo-structures-sub002/internal/pier"
)

var (
	batchFile        string
	batchShowChanges bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Verify every pier in a project file and propose fixes",
	Long: `Load a YAML project file, verify every pier in it against ACI 318-19
and run the proposal engine on each pier that fails a check or is
over-designed.

Project file format:

  name: Tower A
  piers:
    - key: P01
      length: 3000
      height: 3200
      thickness: 250
      fc: 28
      fy: 420
      edge_bars: 2
      edge_bar_dia: 16
      meshes: 2
      mesh_bar_v: 10
      mesh_bar_h: 10
      spacing_v: 250
      spacing_h: 250
      seismic: true
      forces: {pu: 900, mu: 1800, vu: 650}

Examples:
  piercheck batch --file piers.yaml
  piercheck batch --file piers.yaml --changes`,
	Run: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Project YAML file [required]")
	batchCmd.Flags().BoolVar(&batchShowChanges, "changes", false, "Print the change list of every proposal")
	batchCmd.MarkFlagRequired("file")
}

func runBatch(cmd *cobra.Command, args []string) {
	project, err := input.Load(batchFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()
	warn := color.New(color.FgYellow).SprintFunc()

	checker := pier.Checker{}
	thresholds := design.DefaultThresholds()
	gen := design.NewGenerator(checker, pier.StandardClassifier{}, thresholds)

	fmt.Println()
	if project.Name != "" {
		fmt.Printf("PROJECT: %s\n", project.Name)
	}
	fmt.Println("═══════════════════════════════════════════════════════════════")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Pier\tSF\tDCR\tStatus\tProposal\n")
	fmt.Fprintf(w, "  ────\t──\t───\t──────\t────────\n")

	var proposals []*design.Proposal
	failures := 0

	for i := range project.Piers {
		entry := &project.Piers[i]
		p, f, err := entry.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: pier %q: %v\n", entry.Key, err)
			os.Exit(1)
		}

		sf, err := checker.FlexureSF(p, f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: pier %q: %v\n", p.Key, err)
			os.Exit(1)
		}
		dcr, err := checker.ShearDCR(p, f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: pier %q: %v\n", p.Key, err)
			os.Exit(1)
		}

		status := pass("PASS")
		note := "-"
		if !thresholds.NeedsProposal(sf, dcr) {
			fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%s\t%s\n", p.Key, sf, dcr, status, note)
			continue
		}

		boundary := pier.BoundaryRequired(p, f)
		slender := pier.SlendernessReduction(p)
		proposal, err := gen.GenerateProposal(p, f, sf, dcr, boundary, slender)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: pier %q: %v\n", p.Key, err)
			os.Exit(1)
		}

		if sf < 1.0 || dcr > 1.0 {
			status = fail("FAIL")
			failures++
		} else {
			status = warn("OVER")
		}
		if proposal != nil {
			proposals = append(proposals, proposal)
			note = proposal.ProposalType
			if !proposal.Success {
				note += " " + fail("(best effort)")
			}
		}
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%s\t%s\n", p.Key, sf, dcr, status, note)
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("  %d pier(s), %d failing, %d proposal(s)\n", len(project.Piers), failures, len(proposals))
	fmt.Println()

	if batchShowChanges {
		for _, proposal := range proposals {
			fmt.Printf("── %s (%s) ──\n", proposal.PierKey, proposal.FailureMode)
			printProposal(proposal)
		}
	}
}
