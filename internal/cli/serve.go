package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mbrt/algfinder/internal/store"
	"github.com/mbrt/algfinder/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP/WebSocket run server",
	Long: `Serve starts a long-running HTTP server exposing the run API: create a
search run, stream its results over a WebSocket, and list solutions found
so far, backed by a sqlite store.

Examples:
  algfinder serve
  algfinder serve --address :9090 --db ./runs.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		address, _ := cmd.Flags().GetString("address")
		dbPath, _ := cmd.Flags().GetString("db")
		if address != "" {
			cfg.Server.Address = address
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer st.Close()

		server := web.NewServer(cfg.Server, logger, st)

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		return server.ListenAndServe(ctx)
	},
}

func init() {
	serveCmd.Flags().String("address", "", "address to bind the server to (default: from config)")
	serveCmd.Flags().String("db", "algfinder.db", "path to the sqlite database file")
}
