// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/tuidle/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout is fixed width and always UTC so that text order is time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for the stats blob and finished games.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			target TEXT NOT NULL,
			guesses TEXT NOT NULL,
			won INTEGER NOT NULL,
			attempts INTEGER NOT NULL,
			mode TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_games_ended_at ON games(ended_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the value stored under key. The bool is false when the key is absent.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

// Put overwrites the value stored under key.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(value))
	return err
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return err
}

// InsertGame stores a finished game.
func (s *Store) InsertGame(ctx context.Context, rec model.GameRecord) error {
	guesses, err := json.Marshal(rec.Guesses)
	if err != nil {
		return fmt.Errorf("failed to encode guesses: %w", err)
	}
	won := 0
	if rec.Won {
		won = 1
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO games (id, started_at, ended_at, target, guesses, won, attempts, mode)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.StartedAt.UTC().Format(timeLayout),
		rec.EndedAt.UTC().Format(timeLayout),
		rec.Target,
		string(guesses),
		won,
		rec.Attempts,
		rec.Mode,
	)
	return err
}

// RecordGame stores rec with a background context. It satisfies the engine's
// history sink.
func (s *Store) RecordGame(rec model.GameRecord) error {
	return s.InsertGame(context.Background(), rec)
}

// ListGames returns finished games, newest first. A limit of zero or less
// returns all of them.
func (s *Store) ListGames(ctx context.Context, limit int) ([]model.GameRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, ended_at, target, guesses, won, attempts, mode
		 FROM games
		 ORDER BY ended_at DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var games []model.GameRecord
	for rows.Next() {
		var rec model.GameRecord
		var startedAt, endedAt, guesses string
		var won int
		if err := rows.Scan(&rec.ID, &startedAt, &endedAt, &rec.Target, &guesses, &won, &rec.Attempts, &rec.Mode); err != nil {
			return nil, err
		}
		if rec.StartedAt, err = time.Parse(timeLayout, startedAt); err != nil {
			return nil, err
		}
		if rec.EndedAt, err = time.Parse(timeLayout, endedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(guesses), &rec.Guesses); err != nil {
			return nil, fmt.Errorf("game %s: failed to decode guesses: %w", rec.ID, err)
		}
		rec.Won = won != 0
		games = append(games, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return games, nil
}

// RecentTargets returns the targets of the last n games, newest first.
func (s *Store) RecentTargets(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT target FROM games ORDER BY ended_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var targets []string
	for rows.Next() {
		var target string
		if err := rows.Scan(&target); err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return targets, nil
}

// ClearGames removes all finished games.
func (s *Store) ClearGames(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM games`)
	return err
}
