// Package report persists finished battle reports in Postgres so the scorer
// can pick them up later. The combat engine never touches this package.
package report

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/lib/pq"
)

// Report is the finished-battle payload. Log and Teams hold the same JSON
// written to the interchange files.
type Report struct {
	BattleID  string
	Seed      int64
	Result    string
	FinalTurn int
	Log       json.RawMessage
	Teams     json.RawMessage
}

// Store wraps a Postgres handle.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// NewStore accepts an existing DB handle.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Open connects with a connection string and verifies the link.
func Open(connStr string) (*Store, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}
	return NewStore(db), nil
}

const schema = `
CREATE TABLE IF NOT EXISTS battle_reports (
	battle_id  TEXT PRIMARY KEY,
	seed       BIGINT NOT NULL,
	result     TEXT NOT NULL,
	final_turn INT NOT NULL,
	log        JSONB NOT NULL,
	teams      JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
)`

func (s *Store) EnsureSchema(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure battle_reports schema: %w", err)
	}
	return nil
}

func (s *Store) Save(ctx context.Context, r *Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO battle_reports (battle_id, seed, result, final_turn, log, teams, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.BattleID, r.Seed, r.Result, r.FinalTurn, []byte(r.Log), []byte(r.Teams), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert battle report: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }
