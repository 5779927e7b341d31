package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/talgya/econsim/internal/persistence"
)

// NewSnapshotCommand builds the "snapshot" subcommand: print the latest
// saved snapshot for a run as formatted JSON.
func NewSnapshotCommand() *cobra.Command {
	var runID string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print the latest saved snapshot for a run",
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

			var pretty any
			if err := json.Unmarshal(data, &pretty); err != nil {
				return fmt.Errorf("decode snapshot: %w", err)
			}
			out, err := json.MarshalIndent(pretty, "", "  ")
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "# run %s, tick %d\n", runID, tick)
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&runID, "run", "", "run id to read")
	return cmd
}
