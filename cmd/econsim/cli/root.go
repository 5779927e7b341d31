// Package cli wires the econsim command tree. Grounded on the
// spacetraders example's internal/adapters/cli root command (persistent
// flags, AddCommand tree, Execute entrypoint) and its
// internal/infrastructure/config viper loader, adapted from a daemon
// client to the simulation's own run/snapshot/serve commands.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	scenarioPath string
	dbPath       string
	logLevel     string
)

// NewRootCommand builds the econsim root command.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "econsim",
		Short: "Deterministic tick-driven economic simulation",
		Long: `econsim loads a scenario and advances it tick by tick, applying the
fixed production -> trade -> labor -> price -> (gated) fiscal -> political
-> spoilage pipeline every tick.

Examples:
  econsim run --scenario scenarios/baseline.json --ticks 520
  econsim snapshot --db data/run.db --run default
  econsim serve --db data/run.db --port 8080`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogging()
		},
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	root.PersistentFlags().StringVar(&scenarioPath, "scenario", "", "path to scenario JSON file")
	root.PersistentFlags().StringVar(&dbPath, "db", "data/econsim.db", "path to the snapshot SQLite database")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	viper.SetEnvPrefix("ECONSIM")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("scenario", root.PersistentFlags().Lookup("scenario"))
	_ = viper.BindPFlag("db", root.PersistentFlags().Lookup("db"))
	_ = viper.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(NewRunCommand())
	root.AddCommand(NewSnapshotCommand())
	root.AddCommand(NewServeCommand())

	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

func initLogging() error {
	level := slog.LevelInfo
	switch viper.GetString("log_level") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}
