package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbrt/algfinder/internal/cfen"
	"github.com/mbrt/algfinder/internal/cube"
)

var showCmd = &cobra.Command{
	Use:   "show [moves]",
	Short: "Show the cube state after applying a move sequence",
	Long: `Show displays the cube state after applying a move sequence to the
solved cube (or to --start, if given).

Examples:
  algfinder show
  algfinder show "R U R' U'"
  algfinder show "R U R' U'" --cfen`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		moveStr := ""
		if len(args) > 0 {
			moveStr = args[0]
		}
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

		if moveStr != "" {
			moves, err := cube.ParseMoves(moveStr)
			if err != nil {
				return fmt.Errorf("parsing moves: %w", err)
			}
			c = cube.TurnAll(c, moves)
		}

		if outputCFEN {
			fmt.Println(cfen.Format(c))
			return nil
		}

		if moveStr == "" {
			fmt.Println("Solved cube state:")
		} else {
			fmt.Printf("Cube state after %q:\n", moveStr)
		}
		fmt.Println(unfoldedNet(c))
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("cfen", false, "output the cube state as a CFEN string")
	showCmd.Flags().String("start", "", "starting cube state as a CFEN string (default: solved)")
}
