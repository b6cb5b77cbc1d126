package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wilterwhite/ingeo-structures-sub002/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "piercheck",
	Short: "Wall Pier Verification and Design Proposal Tool",
	Long: `piercheck - Reinforced Concrete Wall Pier Checker

A CLI tool for verifying reinforced-concrete wall piers against
ACI 318-19 and proposing corrective reinforcement when a pier fails
verification or is wastefully over-reinforced.

This tool helps structural engineers perform:
  - In-plane flexural verification (safety factor)
  - In-plane shear verification (demand/capacity ratio)
  - Spacing, minimum-reinforcement and boundary-element checks
  - Automatic design proposals per failure mode
  - Batch verification of whole projects from YAML files

All calculations follow ACI 318-19 provisions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   piercheck v%-45s║\n", version.Version)
		fmt.Println("  ║   Reinforced Concrete Wall Pier Checker                   ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for verifying reinforced-concrete wall piers")
		fmt.Println("  against ACI 318-19 and proposing corrective reinforcement.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Governing factored forces from ACI load combinations")
		fmt.Println("    • Flexure and shear verification of wall piers")
		fmt.Println("    • Design proposals: boundary bars, mesh, curtains, thickness")
		fmt.Println("    • Reduction proposals for over-designed piers")
		fmt.Println()
		fmt.Println("  Use 'piercheck --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
