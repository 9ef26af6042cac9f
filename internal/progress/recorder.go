package progress

import (
	"context"
	"time"

	"github.com/chiselstrike/tetris-stages/internal/tetris"
)

// Recorder listens to a session and saves its outcome as a run
type Recorder struct {
	tetris.NopListener

	store *Store
	clock tetris.Clock
	run   Run
	ended bool
}

// NewRecorder starts recording a run of stage for player
func NewRecorder(store *Store, clock tetris.Clock, player string, stage int, difficulty string) *Recorder {
	if clock == nil {
		clock = tetris.SystemClock{}
	}
	return &Recorder{
		store: store,
		clock: clock,
		run: Run{
			Player:     player,
			Stage:      stage,
			Difficulty: difficulty,
			StartedAt:  clock.Now(),
		},
	}
}

func (r *Recorder) LinesCleared(count int, score int) {
	r.run.Lines += count
	r.run.Score = score
}

func (r *Recorder) StageCleared(score int) {
	r.run.Score = score
	r.run.Cleared = true
	r.end()
}

func (r *Recorder) GameOver() {
	r.end()
}

func (r *Recorder) end() {
	if r.ended {
		return
	}
	r.ended = true
	r.run.EndedAt = r.clock.Now()
}

// Run returns the run recorded so far
func (r *Recorder) Run() Run {
	return r.run
}

// Save stores the run. A run abandoned before the session ended is saved
// as a failed attempt.
func (r *Recorder) Save(ctx context.Context) (Run, error) {
	r.end()
	run, err := r.store.RecordRun(ctx, r.run)
	if err != nil {
		return run, err
	}
	r.run = run
	return run, nil
}

// Duration is how long the run lasted
func (r *Recorder) Duration() time.Duration {
	if !r.ended {
		return r.clock.Now().Sub(r.run.StartedAt)
	}
	return r.run.EndedAt.Sub(r.run.StartedAt)
}
