package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mbrt/algfinder/internal/cfen"
	"github.com/mbrt/algfinder/internal/cube"
	"github.com/mbrt/algfinder/internal/search"
	"github.com/mbrt/algfinder/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui <pattern-cfen>",
	Short: "Run a search with a live terminal dashboard",
	Long: `Tui runs the same search as find, but renders depth progress and
discovered algorithms in a live terminal dashboard instead of printing a
line per result. Press q to stop the search early.

Examples:
  algfinder tui "YG|Y9/W9/R9/O9/G9/B9" --start "R U R' U'"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		startArg, _ := cmd.Flags().GetString("start")
		preset, _ := cmd.Flags().GetString("preset")

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

		pattern, err := cfen.Parse(args[0])
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

		results := make(chan search.SearchResult, cfg.Server.ResultBufferSize)
		go search.Run(ctx, start, pattern, allowed, results)

		model := tui.NewModel(results, cancel)
		program := tea.NewProgram(model)
		_, err = program.Run()
		return err
	},
}

func init() {
	tuiCmd.Flags().String("start", "", "starting cube, as a CFEN string or a move sequence applied to solved (default: solved)")
	tuiCmd.Flags().String("preset", "full", "named move preset from the config file to search with")
}
