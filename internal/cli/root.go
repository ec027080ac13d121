package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "A 3x3 Rubik's cube solver that minimizes move cost, not just move count",
	Long: `Cube solves a 3x3 Rubik's cube with Kociemba's two-phase algorithm,
generalized to weigh moves by a caller-supplied cost model instead of
counting them uniformly.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(optimizeCmd)
}
