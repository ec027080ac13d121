package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/behrlich/cubecost/internal/cfen"
	"github.com/behrlich/cubecost/internal/cube"
	"github.com/behrlich/cubecost/internal/evaluator"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube",
	Long: `Solve a scrambled cube using the specified algorithm and cost model.
The scramble should be provided as a string of moves.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := args[0]
		algorithm, _ := cmd.Flags().GetString("algorithm")
		evalName, _ := cmd.Flags().GetString("evaluator")
		headless, _ := cmd.Flags().GetBool("headless")
		useCfenOutput, _ := cmd.Flags().GetBool("cfen")
		startCfen, _ := cmd.Flags().GetString("start")

		c := cube.Solved()
		if startCfen != "" {
			cfenState, err := cfen.Parse(startCfen)
			if err != nil {
				fail(headless, "Error parsing starting CFEN: %v\n", err)
			}
			parsed, err := cfenState.ToCube()
			if err != nil {
				fail(headless, "Error converting CFEN to cube: %v\n", err)
			}
			c = *parsed
		}

		if !headless {
			fmt.Printf("Solving with scramble: %s\n", scramble)
			fmt.Printf("Using algorithm: %s, evaluator: %s\n", algorithm, evalName)
			if startCfen != "" {
				fmt.Printf("Starting from CFEN: %s\n", startCfen)
			}
		}

		moves, err := cube.ParseSequence(scramble)
		if err != nil {
			fail(headless, "Error parsing scramble: %v\n", err)
		}
		c = c.ApplyAll(moves)

		if !headless {
			fmt.Printf("\nCube state after scramble:\n%s\n", c.String())
		}

		ev, err := evaluator.Parse(evalName)
		if err != nil {
			fail(headless, "Error parsing evaluator: %v\n", err)
		}

		solution, err := cube.Solve(algorithm, ev, c)
		if err != nil {
			fail(headless, "Error solving cube: %v\n", err)
		}
		c = c.ApplyAll(solution)

		cost := ev.Eval(solution)

		if err := recordHistory(cmd, scramble, algorithm, evalName, solution, cost); err != nil {
			fail(headless, "Error recording history: %v\n", err)
		}

		solutionStr := cube.FormatSequence(solution)

		switch {
		case useCfenOutput:
			cfenStr, err := cfen.Generate(&c)
			if err != nil {
				fail(headless, "Error generating CFEN: %v\n", err)
			}
			fmt.Print(cfenStr)
		case headless:
			fmt.Print(solutionStr)
		default:
			fmt.Printf("Solution: %s\n", solutionStr)
			fmt.Printf("Moves: %d\n", len(solution))
			fmt.Printf("Cost: %v\n", cost)
		}
	},
}

// fail prints a message (unless headless) and exits 1.
func fail(headless bool, format string, args ...any) {
	if !headless {
		fmt.Printf(format, args...)
	}
	os.Exit(1)
}

func init() {
	solveCmd.Flags().StringP("algorithm", "a", cube.AlgorithmKociemba, "Solving algorithm to use (kociemba, naive, mitm)")
	solveCmd.Flags().StringP("evaluator", "e", "uniform", "Cost model to use (uniform, blast)")
	solveCmd.Flags().Bool("headless", false, "Output only space-separated moves for programmatic use")
	solveCmd.Flags().Bool("cfen", false, "Output final cube state as CFEN string instead of moves")
	solveCmd.Flags().String("start", "", "Starting cube state as CFEN string (default: solved)")
	addHistoryFlag(solveCmd)
}
