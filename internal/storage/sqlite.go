// Package storage keeps a journal of finished snake runs in an in-memory
// SQLite database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Nothing is written to disk: the journal lives as long as
// the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// End reasons recorded for a run.
const (
	EndCollision = "collision" // Snake ran into itself and started over
	EndQuit      = "quit"      // Player quit mid-run
)

// Journal records finished runs.
type Journal struct {
	db  *sql.DB
	now func() time.Time
}

// Run is one finished run of the snake.
type Run struct {
	ID        int64
	Session   string // Local player or SSH user
	Score     int
	Length    int
	Ticks     uint64
	EndReason string
	CreatedAt time.Time
}

// Summary aggregates the runs of a session, or of all sessions.
type Summary struct {
	Runs       int
	BestScore  int
	AvgScore   float64
	TotalTicks uint64
}

// OpenMemory creates an empty in-memory journal.
func OpenMemory() (*Journal, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	j := &Journal{db: db, now: time.Now}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return j, nil
}

// migrate creates the schema.
func (j *Journal) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session TEXT NOT NULL,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			end_reason TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_session ON runs(session);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
	`

	_, err := j.db.Exec(schema)
	return err
}

// Close closes the database connection. The journal is gone afterwards.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
// A zero CreatedAt is stamped with the current time.
func (j *Journal) SaveRun(r Run) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = j.now()
	}

	result, err := j.db.Exec(
		`INSERT INTO runs (session, score, length, ticks, end_reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Session, r.Score, r.Length, int64(r.Ticks), r.EndReason, r.CreatedAt.UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best N runs across all sessions.
// Results are ordered by score descending, earlier runs first on ties.
func (j *Journal) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := j.db.Query(
		`SELECT id, session, score, length, ticks, end_reason, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// SessionRuns retrieves every run of one session in the order they ended.
func (j *Journal) SessionRuns(session string) ([]Run, error) {
	rows, err := j.db.Query(
		`SELECT id, session, score, length, ticks, end_reason, created_at
		 FROM runs
		 WHERE session = ?
		 ORDER BY id ASC`,
		session,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ticks, createdAt int64
		if err := rows.Scan(&r.ID, &r.Session, &r.Score, &r.Length, &ticks, &r.EndReason, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = time.Unix(0, createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestScore returns the highest score across all sessions.
// Returns 0 if no runs exist.
func (j *Journal) BestScore() (int, error) {
	var score sql.NullInt64
	err := j.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Summary aggregates the runs of a session. An empty session covers all runs.
func (j *Journal) Summary(session string) (Summary, error) {
	query := `SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(ticks), 0)
		 FROM runs`
	var args []any
	if session != "" {
		query += " WHERE session = ?"
		args = append(args, session)
	}

	var s Summary
	var ticks int64
	err := j.db.QueryRow(query, args...).Scan(&s.Runs, &s.BestScore, &s.AvgScore, &ticks)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot get summary: %w", err)
	}
	s.TotalTicks = uint64(ticks)

	return s, nil
}

// Clear deletes every run.
func (j *Journal) Clear() error {
	if _, err := j.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
