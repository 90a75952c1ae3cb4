// internal/results/store.go
//
// SQLite-backed persistence for batch-evaluation runs. Each row records
// one corpus-wide evaluation of a strategy: aggregate stats plus the full
// turn-count histogram (stored as JSON). Lets operators compare strategy
// revisions across invocations.

package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mark-tilton/wordle-cheat/internal/batch"
)

// Run is one persisted evaluation.
type Run struct {
	ID         int64       `json:"id"`
	Strategy   string      `json:"strategy"`
	Words      int         `json:"words"`
	MeanTurns  float64     `json:"meanTurns"`
	Solved     int         `json:"solved"`
	SolvedRate float64     `json:"solvedRate"`
	Threshold  int         `json:"threshold"`
	Histogram  map[int]int `json:"histogram"`
	CreatedAt  string      `json:"createdAt"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Insert persists one evaluation's stats and returns the new row ID.
func (s *Store) Insert(ctx context.Context, st batch.Stats) (int64, error) {
	hist, err := json.Marshal(st.Histogram)
	if err != nil {
		return 0, fmt.Errorf("results: marshal histogram: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO eval_runs(strategy, words, mean_turns, solved, solved_rate, threshold, histogram)
		 VALUES(?,?,?,?,?,?,?)`,
		st.Strategy, st.Words, st.MeanTurns, st.Solved, st.SolvedRate, st.Threshold, string(hist),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List returns the most recent runs, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, strategy, words, mean_turns, solved, solved_rate, threshold, histogram, created_at
		 FROM eval_runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Run
	for rows.Next() {
		var r Run
		var hist string
		if err := rows.Scan(&r.ID, &r.Strategy, &r.Words, &r.MeanTurns, &r.Solved,
			&r.SolvedRate, &r.Threshold, &hist, &r.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(hist), &r.Histogram); err != nil {
			return nil, fmt.Errorf("results: run %d: %w", r.ID, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
