package tetris

import (
	"io"
	"log"
	"time"
)

const (
	// BoardRows is the reference board height
	BoardRows = 20
	// BoardCols is the reference board width
	BoardCols = 10

	// GoalClearLines is the only goal type stages use
	GoalClearLines = "clear_lines"
)

const (
	// StatePlaying means a piece is falling
	StatePlaying State = iota
	// StateStageCleared means the goal was reached
	StateStageCleared
	// StateGameOver means a piece could not be spawned or locked out above the board
	StateGameOver
)

type (
	// State is the state of a session
	State int

	// Shape is a square matrix of cell values, 0 is empty
	Shape [][]int

	// Piece is a shape with its color index and top-left board position
	Piece struct {
		Shape Shape
		Color int
		X     int
		Y     int
	}

	// Board is a fixed size grid of color indices, 0 is empty
	Board struct {
		width  int
		height int
		cells  [][]int
	}

	// Goal is what a stage asks the player to do
	Goal struct {
		Type  string `json:"type"`
		Count int    `json:"count"`
	}

	// Stage describes a stage before it is played
	Stage struct {
		ID           string  `json:"id"`
		Goal         Goal    `json:"goal"`
		InitialBoard [][]int `json:"initialBoard"`
	}

	// Action is a player input
	Action int
)

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotate
)

var logger = log.New(io.Discard, "", 0)

// SetLogger sets the logger used by sessions and engines
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}

// DifficultyIntervals are the default drop intervals per difficulty
var DifficultyIntervals = map[string]time.Duration{
	"easy":   1000 * time.Millisecond,
	"medium": 700 * time.Millisecond,
	"hard":   400 * time.Millisecond,
}

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateStageCleared:
		return "stage cleared"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "left"
	case ActionMoveRight:
		return "right"
	case ActionSoftDrop:
		return "soft drop"
	case ActionHardDrop:
		return "hard drop"
	case ActionRotate:
		return "rotate"
	}
	return "unknown"
}
