// Package persistence provides SQLite-based snapshot storage for the
// simulation's world state (sqlx.Open over modernc.org/sqlite,
// CREATE TABLE IF NOT EXISTS migration, WAL mode), using a single
// snapshot-blob table rather than per-entity tables: the state is a single
// dense arena-of-structs document, not a normalized relational model, so
// whole-state JSON snapshots are the natural persistence unit.
package persistence

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection used for run metadata and tick snapshots.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("persistence: open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("persistence: migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		scenario_name TEXT NOT NULL,
		seed INTEGER NOT NULL,
		started_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS snapshots (
		run_id TEXT NOT NULL,
		tick INTEGER NOT NULL,
		state_json TEXT NOT NULL,
		created_at TEXT NOT NULL,
		PRIMARY KEY (run_id, tick)
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_run ON snapshots(run_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRun records a run's scenario identity.
func (db *DB) SaveRun(runID, scenarioName string, seed int64, startedAt string) error {
	_, err := db.conn.Exec(
		`INSERT OR REPLACE INTO runs (id, scenario_name, seed, started_at) VALUES (?, ?, ?, ?)`,
		runID, scenarioName, seed, startedAt,
	)
	return err
}

// SaveSnapshot stores one tick's deterministic JSON snapshot.
func (db *DB) SaveSnapshot(runID string, tick uint64, stateJSON []byte, createdAt string) error {
	_, err := db.conn.Exec(
		`INSERT OR REPLACE INTO snapshots (run_id, tick, state_json, created_at) VALUES (?, ?, ?, ?)`,
		runID, tick, string(stateJSON), createdAt,
	)
	return err
}

// LoadLatestSnapshot returns the highest-tick snapshot for a run, or
// (nil, 0, sql.ErrNoRows) if the run has no snapshots.
func (db *DB) LoadLatestSnapshot(runID string) ([]byte, uint64, error) {
	var row struct {
		StateJSON string `db:"state_json"`
		Tick      uint64 `db:"tick"`
	}
	err := db.conn.Get(&row,
		`SELECT state_json, tick FROM snapshots WHERE run_id = ? ORDER BY tick DESC LIMIT 1`, runID)
	if err != nil {
		return nil, 0, err
	}
	return []byte(row.StateJSON), row.Tick, nil
}
