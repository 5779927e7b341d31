package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/talgya/econsim/internal/api"
	"github.com/talgya/econsim/internal/persistence"
)

// NewServeCommand builds the "serve" subcommand: load the latest saved
// snapshot for a run and expose it over the read-only HTTP API.
func NewServeCommand() *cobra.Command {
	var runID string
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a run's latest snapshot over the read-only HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if runID == "" {
				return fmt.Errorf("--run is required")
			}

			db, err := persistence.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			data, tick, err := db.LoadLatestSnapshot(runID)
			if err != nil {
				return fmt.Errorf("load snapshot: %w", err)
			}
			st, err := persistence.Restore(data)
			if err != nil {
				return fmt.Errorf("restore snapshot: %w", err)
			}

			server := api.NewServer()
			server.SetState(st)

			httpServer := &http.Server{
				Addr:              fmt.Sprintf(":%d", port),
				Handler:           server.Router(slog.Default()),
				ReadHeaderTimeout: 5 * time.Second,
			}

			go func() {
				slog.Info("serving snapshot", "run_id", runID, "tick", tick, "addr", httpServer.Addr)
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					slog.Error("http server error", "error", err)
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpServer.Shutdown(ctx)
		},
	}

	cmd.Flags().StringVar(&runID, "run", "", "run id to serve")
	cmd.Flags().IntVar(&port, "port", 8080, "HTTP listen port")
	return cmd
}
