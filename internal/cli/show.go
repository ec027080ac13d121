package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/behrlich/cubecost/internal/cfen"
	"github.com/behrlich/cubecost/internal/cube"
)

var showCmd = &cobra.Command{
	Use:   "show [scramble]",
	Short: "Show a cube's state",
	Long: `Show displays a cube's state, either solved, after applying a scramble,
or loaded directly from a CFEN string.

Examples:
  cube show
  cube show "R U R' U'"
  cube show --start "UF|U9/R9/F9/D9/L9/B9"`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}
		startCfen, _ := cmd.Flags().GetString("start")

		c := cube.Solved()
		if startCfen != "" {
			cfenState, err := cfen.Parse(startCfen)
			if err != nil {
				fmt.Printf("Error parsing starting CFEN: %v\n", err)
				return
			}
			parsed, err := cfenState.ToCube()
			if err != nil {
				fmt.Printf("Error converting CFEN to cube: %v\n", err)
				return
			}
			c = *parsed
		}

		if scramble != "" {
			moves, err := cube.ParseSequence(scramble)
			if err != nil {
				fmt.Printf("Error parsing scramble: %v\n", err)
				return
			}
			c = c.ApplyAll(moves)
			fmt.Printf("Cube state after scramble: %s\n\n", scramble)
		} else if startCfen == "" {
			fmt.Println("Solved cube state:")
		}

		fmt.Println(renderCube(c))
		if c.IsSolved() {
			fmt.Println(interactiveMoveStyle.Render("SOLVED"))
		}
	},
}

func init() {
	showCmd.Flags().String("start", "", "Starting cube state as CFEN string (default: solved)")
}
