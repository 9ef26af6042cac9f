// Package progress stores the runs of every player and answers questions
// about their stage results.
package progress

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	player      TEXT NOT NULL,
	stage       INTEGER NOT NULL,
	difficulty  TEXT NOT NULL,
	score       INTEGER NOT NULL,
	lines       INTEGER NOT NULL,
	cleared     INTEGER NOT NULL,
	started_at  INTEGER NOT NULL,
	ended_at    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_player_stage ON runs (player, stage);
`

var ErrInvalidRun = errors.New("invalid run")

// Run is one attempt at a stage
type Run struct {
	ID         uuid.UUID `json:"id"`
	Player     string    `json:"player"`
	Stage      int       `json:"stage"`
	Difficulty string    `json:"difficulty"`
	Score      int       `json:"score"`
	Lines      int       `json:"lines"`
	Cleared    bool      `json:"cleared"`
	StartedAt  time.Time `json:"startedAt"`
	EndedAt    time.Time `json:"endedAt"`
}

// StageResult summarizes the runs of a player on one stage. Score is the
// score of the latest clear, zero while the stage was never cleared.
type StageResult struct {
	Stage      int       `json:"stage"`
	Cleared    bool      `json:"cleared"`
	Score      int       `json:"score"`
	Attempts   int       `json:"attempts"`
	LastPlayed time.Time `json:"lastPlayed"`
}

type Store struct {
	db *sql.DB
}

// Open opens the sqlite database at path, creating the schema if needed.
// Use ":memory:" for a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("could not open progress database %s: %w", path, err)
	}
	// a memory database lives as long as its connection
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create progress schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRun saves a finished run and returns it with its id set
func (s *Store) RecordRun(ctx context.Context, run Run) (Run, error) {
	if run.Player == "" {
		return run, fmt.Errorf("%w: missing player", ErrInvalidRun)
	}
	if run.Stage < 1 {
		return run, fmt.Errorf("%w: stage %d", ErrInvalidRun, run.Stage)
	}
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.EndedAt.IsZero() {
		run.EndedAt = time.Now()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = run.EndedAt
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, player, stage, difficulty, score, lines, cleared, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID.String(), run.Player, run.Stage, run.Difficulty, run.Score, run.Lines,
		boolToInt(run.Cleared), run.StartedAt.UnixMilli(), run.EndedAt.UnixMilli())
	if err != nil {
		return run, fmt.Errorf("could not record run: %w", err)
	}
	return run, nil
}

// StageResults returns the results of every stage the player attempted, by stage number
func (s *Store) StageResults(ctx context.Context, player string) ([]StageResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.stage, MAX(r.cleared), COUNT(*), MAX(r.ended_at),
			(SELECT c.score FROM runs c
			 WHERE c.player = r.player AND c.stage = r.stage AND c.cleared = 1
			 ORDER BY c.ended_at DESC, c.rowid DESC LIMIT 1)
		FROM runs r
		WHERE r.player = ?
		GROUP BY r.stage
		ORDER BY r.stage`, player)
	if err != nil {
		return nil, fmt.Errorf("could not query stage results: %w", err)
	}
	defer rows.Close()

	results := []StageResult{}
	for rows.Next() {
		var result StageResult
		var cleared int
		var lastPlayed int64
		var score sql.NullInt64
		if err := rows.Scan(&result.Stage, &cleared, &result.Attempts, &lastPlayed, &score); err != nil {
			return nil, fmt.Errorf("could not read stage results: %w", err)
		}
		result.Cleared = cleared == 1
		result.Score = int(score.Int64)
		result.LastPlayed = time.UnixMilli(lastPlayed)
		results = append(results, result)
	}
	return results, rows.Err()
}

// HighestCleared returns the highest stage the player cleared, 0 if none
func (s *Store) HighestCleared(ctx context.Context, player string) (int, error) {
	var highest sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		`SELECT MAX(stage) FROM runs WHERE player = ? AND cleared = 1`, player).Scan(&highest)
	if err != nil {
		return 0, fmt.Errorf("could not query highest cleared stage: %w", err)
	}
	return int(highest.Int64), nil
}

// Runs returns the latest runs of the player, newest first
func (s *Store) Runs(ctx context.Context, player string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, player, stage, difficulty, score, lines, cleared, started_at, ended_at
		FROM runs WHERE player = ?
		ORDER BY ended_at DESC, rowid DESC LIMIT ?`, player, limit)
	if err != nil {
		return nil, fmt.Errorf("could not query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var run Run
		var id string
		var cleared int
		var startedAt, endedAt int64
		if err := rows.Scan(&id, &run.Player, &run.Stage, &run.Difficulty, &run.Score, &run.Lines,
			&cleared, &startedAt, &endedAt); err != nil {
			return nil, fmt.Errorf("could not read run: %w", err)
		}
		if run.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("corrupt run id %q: %w", id, err)
		}
		run.Cleared = cleared == 1
		run.StartedAt = time.UnixMilli(startedAt)
		run.EndedAt = time.UnixMilli(endedAt)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Players returns every player with at least one run, sorted by name
func (s *Store) Players(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT player FROM runs ORDER BY player`)
	if err != nil {
		return nil, fmt.Errorf("could not query players: %w", err)
	}
	defer rows.Close()

	players := []string{}
	for rows.Next() {
		var player string
		if err := rows.Scan(&player); err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	return players, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
