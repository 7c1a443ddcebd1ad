package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mbrt/algfinder/internal/cube"
	"github.com/mbrt/algfinder/internal/search"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Search for an algorithm that returns a scrambled cube to solved",
	Long: `Solve is a convenience wrapper over find: it searches for algorithms
that bring a scrambled cube back to the fully solved state, stopping at the
first depth where one or more solutions are found (unless --all is given).

Examples:
  algfinder solve "R U R' U' R' F R2 U' R' U' R U R' F'"
  algfinder solve "R U R' U'" --all --max-depth 8`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}
		preset, _ := cmd.Flags().GetString("preset")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		all, _ := cmd.Flags().GetBool("all")

		start := cube.Solved()
		if scramble != "" {
			moves, err := cube.ParseMoves(scramble)
			if err != nil {
				return fmt.Errorf("parsing scramble: %w", err)
			}
			start = cube.TurnAll(start, moves)
		}

		if start.Equal(cube.Solved()) {
			fmt.Println("Cube is already solved.")
			return nil
		}

		allowed, err := cfg.ResolvePreset(preset)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt)
		go func() {
			<-sigCh
			cancel()
		}()

		results := make(chan search.SearchResult, cfg.Server.ResultBufferSize)
		go search.Run(ctx, start, cube.Solved(), allowed, results)

		found := 0
		currentDepth := 0
		for r := range results {
			switch r.Kind {
			case search.KindDepth:
				if found > 0 && !all {
					cancel()
					continue
				}
				currentDepth = r.Depth
				fmt.Printf("-- depth %d --\n", currentDepth)
				if maxDepth > 0 && currentDepth > maxDepth {
					cancel()
				}
			case search.KindAlgorithm:
				found++
				fmt.Printf(" %s\n", cube.FormatMoves(r.Algorithm))
			}
		}
		if found == 0 {
			fmt.Println("No solution found.")
		} else {
			fmt.Printf("\n%d solution(s) found at depth %d\n", found, currentDepth)
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().String("preset", "full", "named move preset from the config file to search with")
	solveCmd.Flags().Int("max-depth", 0, "stop after this depth (0 = unbounded)")
	solveCmd.Flags().Bool("all", false, "keep searching past the first solved depth, reporting every solution found")
}
