package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/behrlich/cubecost/internal/cube"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [moves]",
	Short: "Optimize a sequence of moves",
	Long: `Optimize a sequence of moves by combining consecutive turns on the same
face and removing cancellations.

Examples:
  cube optimize "R R"           # Outputs: R2
  cube optimize "R R'"          # Outputs: (empty - moves cancel)
  cube optimize "R U R' U'"     # Outputs: R U R' U' (no optimization possible)
  cube optimize "R R R"         # Outputs: R'
  cube optimize "F2 F2"         # Outputs: (empty - moves cancel)`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		moves := args[0]

		parsedMoves, err := cube.ParseSequence(moves)
		if err != nil {
			return fmt.Errorf("error parsing moves: %v", err)
		}
		originalCount := len(parsedMoves)

		optimized, err := cube.OptimizeScramble(moves)
		if err != nil {
			return fmt.Errorf("error optimizing moves: %v", err)
		}
		optimizedMoves, _ := cube.ParseSequence(optimized)
		optimizedCount := len(optimizedMoves)

		fmt.Printf("Original:  %s (%d moves)\n", moves, originalCount)
		if optimized == "" {
			fmt.Println("Optimized: (empty - all moves cancel out)")
		} else {
			fmt.Printf("Optimized: %s (%d moves)\n", optimized, optimizedCount)
		}

		if originalCount != optimizedCount {
			fmt.Printf("Saved %d move(s)\n", originalCount-optimizedCount)
		}

		return nil
	},
}
