package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sparse-life",
	Short: "Sparse unbounded Game of Life simulator",
	Long: `sparse-life simulates Conway's Game of Life on an unbounded integer
plane. Only live cells are stored, so worlds are limited by population
rather than extent. Input and output use the Life 1.06 text format.`,
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
