// Package store persists game snapshots in SQLite so finished and running
// games survive a server restart.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"teyuna/internal/engine"
)

// DB wraps a SQLite connection for snapshot persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS games (
		id TEXT PRIMARY KEY,
		status TEXT NOT NULL,
		winner TEXT NOT NULL DEFAULT '',
		snapshot TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_games_status ON games(status);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// GameRow is one persisted game.
type GameRow struct {
	ID        string `db:"id"`
	Status    string `db:"status"`
	Winner    string `db:"winner"`
	Snapshot  string `db:"snapshot"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}

// SaveSnapshot upserts the full state of one game.
func (db *DB) SaveSnapshot(gameID string, snap engine.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	now := time.Now().Unix()
	_, err = db.conn.Exec(`
		INSERT INTO games (id, status, winner, snapshot, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			winner = excluded.winner,
			snapshot = excluded.snapshot,
			updated_at = excluded.updated_at`,
		gameID, string(snap.Status), snap.Winner, string(data), now, now)
	if err != nil {
		return fmt.Errorf("save game %s: %w", gameID, err)
	}
	return nil
}

// LoadSnapshot reads one game's snapshot back.
func (db *DB) LoadSnapshot(gameID string) (engine.Snapshot, error) {
	var row GameRow
	if err := db.conn.Get(&row, `SELECT * FROM games WHERE id = ?`, gameID); err != nil {
		return engine.Snapshot{}, fmt.Errorf("load game %s: %w", gameID, err)
	}
	var snap engine.Snapshot
	if err := json.Unmarshal([]byte(row.Snapshot), &snap); err != nil {
		return engine.Snapshot{}, fmt.Errorf("decode snapshot %s: %w", gameID, err)
	}
	return snap, nil
}

// List returns all persisted games, most recently updated first, without
// their snapshot bodies.
func (db *DB) List() ([]GameRow, error) {
	var rows []GameRow
	err := db.conn.Select(&rows, `
		SELECT id, status, winner, '' AS snapshot, created_at, updated_at
		FROM games ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return rows, nil
}

// Delete removes a persisted game.
func (db *DB) Delete(gameID string) error {
	if _, err := db.conn.Exec(`DELETE FROM games WHERE id = ?`, gameID); err != nil {
		return fmt.Errorf("delete game %s: %w", gameID, err)
	}
	return nil
}
