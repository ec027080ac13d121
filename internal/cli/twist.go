package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/behrlich/cubecost/internal/cfen"
	"github.com/behrlich/cubecost/internal/cube"
)

var twistCmd = &cobra.Command{
	Use:   "twist [moves]",
	Short: "Apply moves to a cube and display the result",
	Long: `Apply a sequence of moves to a cube and display the resulting state.
This command does not solve the cube - it just applies the moves and shows
the result. Perfect for exploring patterns and checking a scramble by hand.

Examples:
  cube twist "R U R' U'"
  cube twist "F R U' R' F'" --cfen`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		moves := args[0]
		useCfenOutput, _ := cmd.Flags().GetBool("cfen")
		startCfen, _ := cmd.Flags().GetString("start")

		c := cube.Solved()
		if startCfen != "" {
			cfenState, err := cfen.Parse(startCfen)
			if err != nil {
				fail(useCfenOutput, "Error parsing starting CFEN: %v\n", err)
			}
			parsed, err := cfenState.ToCube()
			if err != nil {
				fail(useCfenOutput, "Error converting CFEN to cube: %v\n", err)
			}
			c = *parsed
		}

		if !useCfenOutput {
			fmt.Printf("Applying moves: %s\n", moves)
			if startCfen != "" {
				fmt.Printf("Starting from CFEN: %s\n", startCfen)
			}
		}

		parsedMoves, err := cube.ParseSequence(moves)
		if err != nil {
			fail(useCfenOutput, "Error parsing moves: %v\n", err)
		}
		c = c.ApplyAll(parsedMoves)

		if err := recordHistory(cmd, moves, "", "", parsedMoves, 0); err != nil {
			fail(useCfenOutput, "Error recording history: %v\n", err)
		}

		if useCfenOutput {
			cfenStr, err := cfen.Generate(&c)
			if err != nil {
				fail(useCfenOutput, "Error generating CFEN: %v\n", err)
			}
			fmt.Print(cfenStr)
			return
		}

		fmt.Printf("\nCube state after applying moves:\n%s\n", c.String())
		fmt.Printf("Moves applied: %d\n", len(parsedMoves))
		if c.IsSolved() {
			fmt.Println("Status: SOLVED")
		} else {
			fmt.Println("Status: scrambled")
		}
	},
}

func init() {
	twistCmd.Flags().Bool("cfen", false, "Output final cube state as CFEN string")
	twistCmd.Flags().String("start", "", "Starting cube state as CFEN string (default: solved)")
	addHistoryFlag(twistCmd)
}
