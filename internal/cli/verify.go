package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbrt/algfinder/internal/cfen"
	"github.com/mbrt/algfinder/internal/cube"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <algorithm>",
	Short: "Verify an algorithm transforms a start state into a target pattern",
	Long: `Verify checks that applying an algorithm to a start cube produces a
state matching a target pattern. Both states are given in CFEN notation;
the target may use wildcards.

Examples:
  # Check against a fully specified target: Sune applied to a solved
  # cube does not return it to solved, so this reports FAIL.
  algfinder verify "R U R' U R U2 R'" \
    --start "YG|Y9/W9/R9/O9/G9/B9" \
    --target "YG|Y9/W9/R9/O9/G9/B9"

  # Verify against a wildcard target (only the up face matters).
  algfinder verify "R U R' U'" \
    --start "YG|Y9/W9/R9/O9/G9/B9" \
    --target "YG|Y9/_9/_9/_9/_9/_9"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		algorithm := args[0]
		startCFEN, _ := cmd.Flags().GetString("start")
		targetCFEN, _ := cmd.Flags().GetString("target")

		if startCFEN == "" {
			startCFEN = cfen.Format(cube.Solved())
		}
		if targetCFEN == "" {
			targetCFEN = cfen.Format(cube.Solved())
		}

		start, err := cfen.Parse(startCFEN)
		if err != nil {
			return fmt.Errorf("parsing --start: %w", err)
		}
		target, err := cfen.Parse(targetCFEN)
		if err != nil {
			return fmt.Errorf("parsing --target: %w", err)
		}

		moves, err := cube.ParseMoves(algorithm)
		if err != nil {
			return fmt.Errorf("parsing algorithm: %w", err)
		}

		result := cube.TurnAll(start, moves)
		matches := cube.Matches(result, target)

		fmt.Printf("Algorithm: %s (%d moves)\n", algorithm, len(moves))
		fmt.Printf("Start:  %s\n", startCFEN)
		fmt.Printf("Target: %s\n", targetCFEN)
		fmt.Printf("Result: %s\n", cfen.Format(result))
		if matches {
			fmt.Println("Verification: PASS")
		} else {
			fmt.Println("Verification: FAIL")
		}
		return nil
	},
}

func init() {
	verifyCmd.Flags().String("start", "", "starting cube state as a CFEN string (default: solved)")
	verifyCmd.Flags().String("target", "", "target pattern as a CFEN string, may use wildcards (default: solved)")
}
