package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mbrt/algfinder/internal/config"
	"github.com/mbrt/algfinder/internal/logging"
)

var (
	cfgPath string
	debug   bool

	cfg    config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:     "algfinder",
	Short:   "A parallel Rubik's-cube algorithm finder",
	Version: "1.0.0",
	Long: `algfinder searches a bit-packed 3x3x3 cube state space with an
iterative-deepening, move-pruned, parallel search, streaming algorithms of
increasing length that transform a start state into any state matching a
(possibly wildcard) target pattern.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.New(os.Stderr, debug)
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command; it is the single entry point called from
// cmd/algfinder/main.go.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to an algfinder config file (YAML)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(cfenCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
}
