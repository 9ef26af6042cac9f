package tetris

import (
	"math/rand"
	"time"
)

// kickOffsets are the horizontal offsets tried, in order, when a rotation is blocked
var kickOffsets = [...]int{0, 1, -1, 2, -2}

// Session is one attempt at a stage: the board, the falling piece, the
// queued piece and the score. All methods must be called from one goroutine.
type Session struct {
	stage    Stage
	board    *Board
	current  *Piece
	next     *Piece
	score    int
	lines    int
	interval time.Duration
	state    State
	rng      *rand.Rand
	listener Listener
}

// NewSession starts a stage: the initial board is copied, the first piece
// is spawned and the next one queued. A stage whose board blocks the first
// spawn starts in StateGameOver.
func NewSession(stage Stage, interval time.Duration, rng *rand.Rand, listener Listener) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if listener == nil {
		listener = NopListener{}
	}

	session := &Session{
		stage:    stage,
		board:    NewBoardFromGrid(stage.InitialBoard),
		interval: interval,
		state:    StatePlaying,
		rng:      rng,
		listener: listener,
	}

	logger.Printf("Session %s start, goal %d lines, interval %v", stage.ID, stage.Goal.Count, interval)

	session.next = RandomPiece(rng)
	session.spawn()
	return session
}

// MoveLeft moves the piece one column left if possible
func (session *Session) MoveLeft() bool {
	return session.Move(-1)
}

// MoveRight moves the piece one column right if possible
func (session *Session) MoveRight() bool {
	return session.Move(1)
}

// Move shifts the piece by dir columns, a blocked move leaves it in place
func (session *Session) Move(dir int) bool {
	if !session.active() {
		return false
	}
	moved := session.current
	for ; dir < 0; dir++ {
		moved = moved.CloneMoveLeft()
	}
	for ; dir > 0; dir-- {
		moved = moved.CloneMoveRight()
	}
	if IsBlocked(session.board, moved) {
		return false
	}
	session.current = moved
	return true
}

// SoftDrop moves the piece one row down. When it cannot move the piece is
// locked, this is the only way a piece comes to rest besides HardDrop.
func (session *Session) SoftDrop() bool {
	if !session.active() {
		return false
	}
	session.current.Y++
	if IsBlocked(session.board, session.current) {
		session.current.Y--
		session.lock()
		return false
	}
	return true
}

// HardDrop moves the piece as far down as it goes and locks it.
// It returns the number of rows the piece fell.
func (session *Session) HardDrop() int {
	if !session.active() {
		return 0
	}
	dropDistance := 0
	for !IsBlocked(session.board, session.current) {
		session.current.Y++
		dropDistance++
	}
	session.current.Y--
	session.lock()
	return dropDistance - 1
}

// Rotate turns the piece clockwise, trying each kick offset from the
// original column. If no offset fits the piece is left unchanged.
func (session *Session) Rotate() bool {
	if !session.active() {
		return false
	}
	rotated := session.current.CloneRotateRight()
	originalX := session.current.X
	for _, kick := range kickOffsets {
		rotated.X = originalX + kick
		if !IsBlocked(session.board, rotated) {
			session.current.Shape = rotated.Shape
			session.current.X = rotated.X
			return true
		}
	}
	return false
}

// Apply performs a player action
func (session *Session) Apply(action Action) {
	switch action {
	case ActionMoveLeft:
		session.MoveLeft()
	case ActionMoveRight:
		session.MoveRight()
	case ActionSoftDrop:
		session.SoftDrop()
	case ActionHardDrop:
		session.HardDrop()
	case ActionRotate:
		session.Rotate()
	}
}

// lock attaches the piece to the board, clears lines and either ends the
// stage or spawns the next piece
func (session *Session) lock() {
	lockedOut := session.board.Place(session.current)
	session.listener.PieceLocked()

	lines := session.board.ClearLines()
	if lines > 0 {
		session.lines += lines
		session.score += ScoreForLines(lines)
		session.listener.LinesCleared(lines, session.score)

		if session.goalReached() {
			session.current = nil
			session.state = StateStageCleared
			logger.Printf("Session %s stage cleared, score %d", session.stage.ID, session.score)
			session.listener.StageCleared(session.score)
			return
		}
	}

	if lockedOut {
		logger.Printf("Session %s piece locked above the board", session.stage.ID)
		session.gameOver()
		return
	}

	session.spawn()
}

// spawn promotes the queued piece and queues a new one
func (session *Session) spawn() {
	session.current = session.next
	session.next = RandomPiece(session.rng)
	session.current.X = spawnX(session.current.Shape, session.board.Cols())
	session.current.Y = 0

	if IsBlocked(session.board, session.current) {
		session.gameOver()
		return
	}

	session.listener.PieceSpawned(*session.current.Clone())
}

func (session *Session) gameOver() {
	session.state = StateGameOver
	logger.Printf("Session %s game over, score %d", session.stage.ID, session.score)
	session.listener.GameOver()
}

// active checks that there is a falling piece to act on
func (session *Session) active() bool {
	return session.state == StatePlaying && session.current != nil
}

// Board returns a copy of the board cells
func (session *Session) Board() [][]int {
	return session.board.Grid()
}

// Rows is the board height
func (session *Session) Rows() int {
	return session.board.Rows()
}

// Cols is the board width
func (session *Session) Cols() int {
	return session.board.Cols()
}

// Current returns a copy of the falling piece, nil once the stage is cleared
func (session *Session) Current() *Piece {
	if session.current == nil {
		return nil
	}
	return session.current.Clone()
}

// Next returns a copy of the queued piece
func (session *Session) Next() *Piece {
	if session.next == nil {
		return nil
	}
	return session.next.Clone()
}

// Ghost returns a copy of the falling piece moved to where a hard drop would land it
func (session *Session) Ghost() *Piece {
	if !session.active() {
		return nil
	}
	ghost := session.current.CloneMoveDown()
	for !IsBlocked(session.board, ghost) {
		ghost.Y++
	}
	ghost.Y--
	return ghost
}

// Score is the running score of the stage
func (session *Session) Score() int {
	return session.score
}

// LinesCleared is the number of lines removed so far in the stage
func (session *Session) LinesCleared() int {
	return session.lines
}

// Stage returns the stage being played
func (session *Session) Stage() Stage {
	return session.stage
}

// Goal returns the stage goal
func (session *Session) Goal() Goal {
	return session.stage.Goal
}

// Interval is the drop interval for the stage
func (session *Session) Interval() time.Duration {
	return session.interval
}

// State returns the session state
func (session *Session) State() State {
	return session.state
}
