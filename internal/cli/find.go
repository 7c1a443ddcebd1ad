package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mbrt/algfinder/internal/cfen"
	"github.com/mbrt/algfinder/internal/cube"
	"github.com/mbrt/algfinder/internal/search"
)

var findCmd = &cobra.Command{
	Use:   "find <pattern-cfen>",
	Short: "Search for move sequences that reach a target pattern",
	Long: `Find runs the parallel iterative-deepening search: starting from
--start (default: solved), it streams algorithms of increasing length that
transform the start into any state matching the given pattern. Press
Ctrl+C to stop; find also stops on its own once --max-depth is reached, if
given.

Examples:
  algfinder find "YG|Y9/W9/R9/O9/G9/B9"
  algfinder find "YG|Y9/_9/_9/_9/_9/_9" --start "R U R' U'" --max-depth 6
  algfinder find "YG|Y9/W9/R9/O9/G9/B9" --preset no-slice`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		patternCFEN := args[0]
		startArg, _ := cmd.Flags().GetString("start")
		preset, _ := cmd.Flags().GetString("preset")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")

		start := cube.Solved()
		if startArg != "" {
			if parsed, err := cfen.Parse(startArg); err == nil {
				start = parsed
			} else if moves, merr := cube.ParseMoves(startArg); merr == nil {
				start = cube.TurnAll(cube.Solved(), moves)
			} else {
				return fmt.Errorf("--start is neither a valid CFEN string (%v) nor a valid move sequence (%v)", err, merr)
			}
		}

		pattern, err := cfen.Parse(patternCFEN)
		if err != nil {
			return fmt.Errorf("parsing pattern: %w", err)
		}

		allowed, err := cfg.ResolvePreset(preset)
		if err != nil {
			return err
		}

		if missing := cube.MissingColors(start, pattern); len(missing) > 0 {
			return fmt.Errorf("start cannot reach pattern: missing colors %v", missing)
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
		go search.Run(ctx, start, pattern, allowed, results)

		found := 0
		for r := range results {
			switch r.Kind {
			case search.KindDepth:
				fmt.Printf("-- depth %d --\n", r.Depth)
				if maxDepth > 0 && r.Depth > maxDepth {
					cancel()
				}
			case search.KindAlgorithm:
				found++
				fmt.Printf(" %s\n", cube.FormatMoves(r.Algorithm))
			}
		}
		fmt.Printf("\n%d algorithm(s) found\n", found)
		return nil
	},
}

func init() {
	findCmd.Flags().String("start", "", "starting cube, as a CFEN string or a move sequence applied to solved (default: solved)")
	findCmd.Flags().String("preset", "full", "named move preset from the config file to search with")
	findCmd.Flags().Int("max-depth", 0, "stop after this depth (0 = unbounded, stop with Ctrl+C)")
}
