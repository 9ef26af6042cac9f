package tetris

import (
	"context"
	"time"
)

// DefaultFrameTime is the frame period used when Run is given none
const DefaultFrameTime = 16 * time.Millisecond

// Engine drives a session: every frame it checks whether the drop interval
// elapsed, soft drops the piece if so, and redraws. Player actions go
// through the engine so they are ignored while it is stopped.
type Engine struct {
	session  *Session
	clock    Clock
	lastDrop time.Time
	running  bool
	frames   uint64
	onFrame  func(session *Session)
}

// NewEngine creates a stopped engine for the session
func NewEngine(session *Session, clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Engine{
		session: session,
		clock:   clock,
	}
}

// OnFrame sets the function called after every tick and every applied action
func (engine *Engine) OnFrame(fn func(session *Session)) {
	engine.onFrame = fn
}

// Session returns the session driven by the engine
func (engine *Engine) Session() *Session {
	return engine.session
}

// Start arms the drop timer. Starting a running engine only resets the
// timer, there is never more than one loop per engine. A session that has
// already ended cannot be started.
func (engine *Engine) Start() {
	if engine.session.State() != StatePlaying {
		return
	}
	logger.Println("Engine Start")
	engine.lastDrop = engine.clock.Now()
	engine.running = true
}

// Stop halts the engine, stopping a stopped engine does nothing
func (engine *Engine) Stop() {
	if !engine.running {
		return
	}
	engine.running = false
	logger.Printf("Engine Stop after %d frames", engine.frames)
}

// Running reports whether the engine is started
func (engine *Engine) Running() bool {
	return engine.running
}

// Tick runs one frame and reports whether the piece was dropped
func (engine *Engine) Tick() bool {
	if !engine.running {
		return false
	}
	engine.frames++

	dropped := false
	now := engine.clock.Now()
	if now.Sub(engine.lastDrop) > engine.session.Interval() {
		engine.session.SoftDrop()
		engine.lastDrop = now
		dropped = true
	}

	engine.stopIfEnded()
	engine.frame()
	return dropped
}

// Apply performs a player action on the running session.
// It reports whether the action was accepted.
func (engine *Engine) Apply(action Action) bool {
	if !engine.running || engine.session.current == nil {
		return false
	}
	engine.session.Apply(action)
	engine.stopIfEnded()
	engine.frame()
	return true
}

// Run starts the engine and ticks it every frameTime, applying the actions
// received in between, until the session ends or ctx is done.
// Ticks and actions are handled on the calling goroutine.
func (engine *Engine) Run(ctx context.Context, frameTime time.Duration, actions <-chan Action) error {
	if frameTime <= 0 {
		frameTime = DefaultFrameTime
	}

	engine.Start()
	defer engine.Stop()

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	engine.frame()

	for engine.running {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case action, ok := <-actions:
			if !ok {
				actions = nil
				continue
			}
			engine.Apply(action)
		case <-ticker.C:
			engine.Tick()
		}
	}

	return nil
}

func (engine *Engine) stopIfEnded() {
	if engine.session.State() != StatePlaying {
		engine.Stop()
	}
}

func (engine *Engine) frame() {
	if engine.onFrame != nil {
		engine.onFrame(engine.session)
	}
}
