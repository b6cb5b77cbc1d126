package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wilterwhite/ingeo-structures-sub002/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of piercheck",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("piercheck v%s\n", version.Version)
		fmt.Println("Reinforced Concrete Wall Pier Checker")
		fmt.Println("Based on ACI 318-19 (Building Code Requirements for Structural Concrete)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
