package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/talgya/econsim/internal/api"
	"github.com/talgya/econsim/internal/config"
	"github.com/talgya/econsim/internal/engine"
	"github.com/talgya/econsim/internal/persistence"
	"github.com/talgya/econsim/internal/scenario"
	"github.com/talgya/econsim/internal/worldstate"
)

// NewRunCommand builds the "run" subcommand: advance a scenario by a fixed
// number of ticks, snapshotting periodically.
func NewRunCommand() *cobra.Command {
	var ticks uint64
	var snapshotEvery uint64
	var runID string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Advance a scenario a fixed number of ticks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if scenarioPath == "" {
				return fmt.Errorf("--scenario is required")
			}
			if runID == "" {
				runID = uuid.NewString()
			}

			f, err := os.Open(scenarioPath)
			if err != nil {
				return fmt.Errorf("open scenario: %w", err)
			}
			defer f.Close()

			cfg := config.Default()
			if err := config.Validate(cfg); err != nil {
				return err
			}

			st, err := scenario.Load(f, cfg)
			if err != nil {
				return fmt.Errorf("load scenario: %w", err)
			}

			if err := os.MkdirAll("data", 0o755); err != nil {
				return fmt.Errorf("create data dir: %w", err)
			}
			db, err := persistence.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			if err := db.SaveRun(runID, scenarioPath, st.Seed, time.Now().UTC().Format(time.RFC3339)); err != nil {
				slog.Warn("failed to record run metadata", "error", err)
			}

			start := time.Now()
			diagnosticsSeen := 0
			advanceErr := engine.Advance(st, ticks, slog.Default(), func(st *worldstate.State) error {
				api.Metrics.TickDuration.Observe(time.Since(start).Seconds())
				api.Metrics.Tick.Set(float64(st.Tick))
				start = time.Now()
				for _, r := range st.Diagnostics.Records[diagnosticsSeen:] {
					api.Metrics.InvariantViolations.WithLabelValues(r.Err.Kind.String()).Inc()
				}
				diagnosticsSeen = len(st.Diagnostics.Records)

				if snapshotEvery > 0 && st.Tick%snapshotEvery == 0 {
					data, err := persistence.Snapshot(st)
					if err != nil {
						return fmt.Errorf("snapshot tick %d: %w", st.Tick, err)
					}
					if err := db.SaveSnapshot(runID, st.Tick, data, time.Now().UTC().Format(time.RFC3339)); err != nil {
						slog.Warn("failed to save snapshot", "tick", st.Tick, "error", err)
					}
				}
				return nil
			})
			if advanceErr != nil {
				return advanceErr
			}

			slog.Info("run complete",
				"run_id", runID,
				"ticks", ticks,
				"final_tick", st.Tick,
				"countries", len(st.Countries),
				"diagnostics", len(st.Diagnostics.Records),
			)
			if len(st.Countries) > 0 {
				first := st.Countries[0]
				fmt.Printf("%s GDP after %d ticks: %s\n", first.Code, ticks, humanize.Comma(int64(first.GDP)))
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&ticks, "ticks", 52, "number of ticks to advance")
	cmd.Flags().Uint64Var(&snapshotEvery, "snapshot-every", 52, "save a snapshot every N ticks (0 disables)")
	cmd.Flags().StringVar(&runID, "run", "", "run id (generated if empty)")
	return cmd
}
