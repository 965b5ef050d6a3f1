// Package storage keeps the rounds played during one run in an in-memory
// SQLite database. Nothing is written to disk; the ledger disappears with
// the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/gesnake/internal/core"
)

// Store is the round ledger.
type Store struct {
	db *sql.DB
}

// Round is one finished game.
type Round struct {
	ID        string
	Score     int
	Length    int
	Ticks     uint64
	Reason    core.EndReason
	Gestures  int // Steering changes published during the round
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns how long the round lasted.
func (r Round) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// Stats aggregates all rounds in the ledger.
type Stats struct {
	Rounds   int
	Best     int
	Average  float64
	Gestures int
}

// Open creates an empty in-memory ledger.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every pooled connection would get its own private :memory: database.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			reason TEXT NOT NULL,
			gestures INTEGER NOT NULL DEFAULT 0,
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_score ON rounds(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round and returns it with its generated ID.
func (s *Store) SaveRound(r Round) (Round, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}
	if r.StartedAt.IsZero() {
		r.StartedAt = r.EndedAt
	}

	_, err := s.db.Exec(
		`INSERT INTO rounds (id, score, length, ticks, reason, gestures, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Score, r.Length, int64(r.Ticks), string(r.Reason), r.Gestures,
		r.StartedAt.UnixNano(), r.EndedAt.UnixNano(),
	)
	if err != nil {
		return r, fmt.Errorf("storage: cannot save round: %w", err)
	}
	return r, nil
}

// Rounds returns every recorded round, oldest first.
func (s *Store) Rounds() ([]Round, error) {
	rows, err := s.db.Query(
		`SELECT id, score, length, ticks, reason, gestures, started_at, ended_at
		 FROM rounds
		 ORDER BY seq ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var (
			r              Round
			ticks          int64
			reason         string
			started, ended int64
		)
		if err := rows.Scan(&r.ID, &r.Score, &r.Length, &ticks, &reason, &r.Gestures, &started, &ended); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.Reason = core.EndReason(reason)
		r.StartedAt = time.Unix(0, started)
		r.EndedAt = time.Unix(0, ended)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// Best returns the highest score recorded so far.
// Returns 0 if no rounds exist.
func (s *Store) Best() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM rounds").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats returns aggregates over all rounds.
func (s *Store) Stats() (Stats, error) {
	var (
		st       Stats
		best     sql.NullInt64
		avg      sql.NullFloat64
		gestures sql.NullInt64
	)
	err := s.db.QueryRow(
		"SELECT COUNT(*), MAX(score), AVG(score), SUM(gestures) FROM rounds",
	).Scan(&st.Rounds, &best, &avg, &gestures)
	if err != nil {
		return st, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	st.Best = int(best.Int64)
	st.Average = avg.Float64
	st.Gestures = int(gestures.Int64)
	return st, nil
}
