package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbrt/algfinder/internal/cfen"
	"github.com/mbrt/algfinder/internal/cube"
)

var twistCmd = &cobra.Command{
	Use:   "twist <moves>",
	Short: "Apply moves to a cube and display the result",
	Long: `Apply a sequence of moves to a cube and display the resulting state.
This command does not search for anything - it just applies the moves and
shows the result.

Examples:
  algfinder twist "R U R' U'"
  algfinder twist "F R U' R' F'" --cfen
  algfinder twist "R2" --start "YG|Y9/W9/R9/O9/G9/B9"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		moveStr := args[0]
		outputCFEN, _ := cmd.Flags().GetBool("cfen")
		startCFEN, _ := cmd.Flags().GetString("start")

		c := cube.Solved()
		if startCFEN != "" {
			parsed, err := cfen.Parse(startCFEN)
			if err != nil {
				return fmt.Errorf("parsing starting CFEN: %w", err)
			}
			c = parsed
		}

		moves, err := cube.ParseMoves(moveStr)
		if err != nil {
			return fmt.Errorf("parsing moves: %w", err)
		}
		result := cube.TurnAll(c, moves)

		if outputCFEN {
			fmt.Println(cfen.Format(result))
			return nil
		}

		fmt.Printf("Applying moves to cube: %s\n", moveStr)
		if startCFEN != "" {
			fmt.Printf("Starting from CFEN: %s\n", startCFEN)
		}
		fmt.Printf("\nCube state after applying moves:\n%s\n", unfoldedNet(result))
		fmt.Printf("Moves applied: %d\n", len(moves))
		if result.Equal(cube.Solved()) {
			fmt.Println("Status: solved")
		} else {
			fmt.Println("Status: scrambled")
		}
		return nil
	},
}

func init() {
	twistCmd.Flags().Bool("cfen", false, "output the final cube state as a CFEN string")
	twistCmd.Flags().String("start", "", "starting cube state as a CFEN string (default: solved)")
}
