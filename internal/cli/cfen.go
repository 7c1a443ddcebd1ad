package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbrt/algfinder/internal/cfen"
	"github.com/mbrt/algfinder/internal/cube"
)

var cfenCmd = &cobra.Command{
	Use:   "cfen",
	Short: "Inspect and compare CFEN strings",
}

var cfenParseCmd = &cobra.Command{
	Use:   "parse <cfen-string>",
	Short: "Parse a CFEN string and display the resulting cube state",
	Long: `Parse a CFEN (Cube Forsyth-Edwards Notation) string and display the
resulting cube state.

Examples:
  algfinder cfen parse "YG|Y9/W9/R9/O9/G9/B9"
  algfinder cfen parse "YG|Y9/_9/_9/_9/_9/_9"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cfen.Parse(args[0])
		if err != nil {
			return fmt.Errorf("failed to parse CFEN: %w", err)
		}
		fmt.Printf("CFEN: %s\n", args[0])
		fmt.Printf("Solved: %t\n\n", c.Equal(cube.Solved()))
		fmt.Println(unfoldedNet(c))
		return nil
	},
}

var cfenGenerateCmd = &cobra.Command{
	Use:   "generate <scramble>",
	Short: "Apply a move sequence and output the resulting CFEN string",
	Long: `Apply a move sequence to a starting cube and print the resulting state
as a CFEN string.

Examples:
  algfinder cfen generate "R U R' U'"
  algfinder cfen generate "R U R' U'" --start "YG|Y9/W9/R9/O9/G9/B9"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		startCFEN, _ := cmd.Flags().GetString("start")

		start := cube.Solved()
		if startCFEN != "" {
			parsed, err := cfen.Parse(startCFEN)
			if err != nil {
				return fmt.Errorf("invalid starting CFEN: %w", err)
			}
			start = parsed
		}

		moves, err := cube.ParseMoves(args[0])
		if err != nil {
			return fmt.Errorf("invalid move sequence: %w", err)
		}

		fmt.Println(cfen.Format(cube.TurnAll(start, moves)))
		return nil
	},
}

var cfenMatchCmd = &cobra.Command{
	Use:   "match <current-cfen> <target-cfen>",
	Short: "Check whether a CFEN state matches a (possibly wildcard) target",
	Long: `Parse two CFEN strings and report whether the current state matches the
target pattern. The target may use '_' wildcards.

Examples:
  algfinder cfen match "YG|Y9/W9/R9/O9/G9/B9" "YG|Y9/_9/_9/_9/_9/_9"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := cfen.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid current CFEN: %w", err)
		}
		target, err := cfen.Parse(args[1])
		if err != nil {
			return fmt.Errorf("invalid target CFEN: %w", err)
		}

		fmt.Printf("Current: %s\n", args[0])
		fmt.Printf("Target:  %s\n", args[1])
		if cube.Matches(current, target) {
			fmt.Println("Result: MATCH")
		} else {
			fmt.Println("Result: NO MATCH")
			if missing := cube.MissingColors(current, target); len(missing) > 0 {
				fmt.Printf("Missing colors: %v\n", missing)
			}
		}
		return nil
	},
}

func init() {
	cfenGenerateCmd.Flags().String("start", "", "starting cube state as a CFEN string (default: solved)")

	cfenCmd.AddCommand(cfenParseCmd)
	cfenCmd.AddCommand(cfenGenerateCmd)
	cfenCmd.AddCommand(cfenMatchCmd)
}
