package tetris

import (
	"fmt"
	"math/rand"
	"time"
)

type recordingListener struct {
	events []string
}

func (l *recordingListener) PieceSpawned(piece Piece) {
	l.events = append(l.events, fmt.Sprintf("spawned %d", piece.Color))
}

func (l *recordingListener) PieceLocked() {
	l.events = append(l.events, "locked")
}

func (l *recordingListener) LinesCleared(count int, score int) {
	l.events = append(l.events, fmt.Sprintf("cleared %d %d", count, score))
}

func (l *recordingListener) StageCleared(score int) {
	l.events = append(l.events, fmt.Sprintf("stage cleared %d", score))
}

func (l *recordingListener) GameOver() {
	l.events = append(l.events, "game over")
}

func (l *recordingListener) count(event string) int {
	n := 0
	for _, e := range l.events {
		if e == event {
			n++
		}
	}
	return n
}

func emptyGrid() [][]int {
	return NewBoard(BoardRows, BoardCols).Grid()
}

// fullRow is a row of garbage with holes at the given columns
func fullRow(holes ...int) []int {
	row := make([]int, BoardCols)
	for i := range row {
		row[i] = ColorZ
	}
	for _, h := range holes {
		row[h] = 0
	}
	return row
}

func newTestSession(grid [][]int, goal int) (*Session, *recordingListener) {
	listener := &recordingListener{}
	stage := Stage{
		ID:           "stage-test",
		Goal:         Goal{Type: GoalClearLines, Count: goal},
		InitialBoard: grid,
	}
	session := NewSession(stage, time.Second, rand.New(rand.NewSource(1)), listener)
	return session, listener
}

func setCurrent(session *Session, piece *Piece, x int, y int) {
	piece.X = x
	piece.Y = y
	session.current = piece
}

// rotatedT is the T piece after one clockwise turn
var rotatedT = Shape{
	{0, ColorT, 0},
	{0, ColorT, ColorT},
	{0, ColorT, 0},
}

// verticalI is the I piece after one clockwise turn
var verticalI = Shape{
	{0, 0, ColorI, 0},
	{0, 0, ColorI, 0},
	{0, 0, ColorI, 0},
	{0, 0, ColorI, 0},
}
