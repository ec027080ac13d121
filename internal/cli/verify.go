package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/behrlich/cubecost/internal/cfen"
	"github.com/behrlich/cubecost/internal/cube"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <algorithm>",
	Short: "Verify an algorithm transforms start state to target state",
	Long: `Verify that an algorithm correctly transforms a cube from a start state to a
target state. Both states are specified using CFEN notation with wildcard support.

Examples:
  # Verify a simple inverse (defaults to solved start/target)
  cube verify "R U R' U' U R U' R'"

  # Verify Sune leaves the D face solved regardless of the other faces
  cube verify "R U R' U R U2 R'" \
    --start "UF|U9/R9/F9/D9/L9/B9" \
    --target "UF|?9/?9/?9/D9/?9/?9"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		algorithm := args[0]

		startCFEN, _ := cmd.Flags().GetString("start")
		targetCFEN, _ := cmd.Flags().GetString("target")
		verbose, _ := cmd.Flags().GetBool("verbose")
		headless, _ := cmd.Flags().GetBool("headless")

		if startCFEN == "" {
			startCFEN = "UF|U9/R9/F9/D9/L9/B9"
		}
		if targetCFEN == "" {
			targetCFEN = "UF|U9/R9/F9/D9/L9/B9"
		}

		startState, err := cfen.Parse(startCFEN)
		if err != nil {
			fail(headless, "Error parsing start CFEN: %v\n", err)
		}
		targetState, err := cfen.Parse(targetCFEN)
		if err != nil {
			fail(headless, "Error parsing target CFEN: %v\n", err)
		}

		c, err := startState.ToCube()
		if err != nil {
			fail(headless, "Error converting start CFEN to cube: %v\n", err)
		}

		if verbose && !headless {
			fmt.Println("Start state (from CFEN):")
			fmt.Println(renderCube(*c))
		}

		moves, err := cube.ParseSequence(algorithm)
		if err != nil {
			fail(headless, "Error parsing algorithm: %v\n", err)
		}
		*c = c.ApplyAll(moves)

		if verbose && !headless {
			fmt.Printf("\nAfter algorithm (%s):\n", algorithm)
			fmt.Println(renderCube(*c))
		}

		matches, err := targetState.Matches(c)
		if err != nil {
			fail(headless, "Error matching result to target: %v\n", err)
		}

		if matches {
			if !headless {
				fmt.Println("PASS: algorithm correctly transforms start to target state")
				fmt.Printf("Algorithm: %s\n", algorithm)
				fmt.Printf("Move count: %d\n", len(moves))
				if verbose {
					fmt.Printf("Start:  %s\n", startCFEN)
					fmt.Printf("Target: %s\n", targetCFEN)
					actualCFEN, _ := cfen.Generate(c)
					fmt.Printf("Actual: %s\n", actualCFEN)
				}
			}
			os.Exit(0)
		}

		if !headless {
			fmt.Println("FAIL: algorithm does not achieve target state")
			fmt.Printf("Algorithm: %s\n", algorithm)
			if !verbose {
				fmt.Println("\nTip: use --verbose to see the cube states")
			} else {
				fmt.Printf("Start:  %s\n", startCFEN)
				fmt.Printf("Target: %s\n", targetCFEN)
				actualCFEN, _ := cfen.Generate(c)
				fmt.Printf("Actual: %s\n", actualCFEN)
			}
		}
		os.Exit(1)
	},
}

func init() {
	verifyCmd.Flags().String("start", "", "Starting CFEN state (defaults to solved)")
	verifyCmd.Flags().String("target", "", "Target CFEN state (defaults to solved)")
	verifyCmd.Flags().BoolP("verbose", "v", false, "Show cube states and transformations")
	verifyCmd.Flags().Bool("headless", false, "Exit with code 0 for pass, 1 for fail (no output)")
}
