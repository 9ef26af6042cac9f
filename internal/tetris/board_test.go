package tetris

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsBlocked(t *testing.T) {
	grid := emptyGrid()
	grid[19] = fullRow(0)
	grid[10][5] = ColorJ
	board := NewBoardFromGrid(grid)

	tests := []struct {
		name    string
		color   int
		x       int
		y       int
		blocked bool
	}{
		{"free", ColorO, 0, 0, false},
		{"left wall", ColorO, -1, 0, true},
		{"right wall", ColorO, 9, 0, true},
		{"flush right", ColorO, 8, 0, false},
		{"floor", ColorO, 0, 19, true},
		{"locked cell", ColorO, 4, 9, true},
		{"next to locked cell", ColorO, 6, 9, false},
		{"above board", ColorO, 4, -2, false},
		{"above board left wall", ColorO, -1, -2, true},
		{"I empty top row above board", ColorI, 3, -1, false},
		{"I resting on garbage", ColorI, 3, 17, false},
		{"I in garbage", ColorI, 3, 18, true},
		{"I over the left wall", ColorI, -1, 18, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			piece := NewPiece(tt.color)
			piece.X = tt.x
			piece.Y = tt.y
			if got := IsBlocked(board, piece); got != tt.blocked {
				t.Errorf("IsBlocked() = %v, want %v", got, tt.blocked)
			}
		})
	}
}

func TestIsBlockedIsPure(t *testing.T) {
	grid := emptyGrid()
	grid[19] = fullRow(4)
	board := NewBoardFromGrid(grid)
	piece := NewPiece(ColorT)
	piece.X = 3
	piece.Y = 17
	before := piece.Clone()

	first := IsBlocked(board, piece)
	second := IsBlocked(board, piece)

	require.Equal(t, first, second)
	require.Equal(t, grid, board.Grid())
	require.Equal(t, before, piece)
}

func TestNewBoardFromGridCopies(t *testing.T) {
	grid := emptyGrid()
	board := NewBoardFromGrid(grid)
	grid[0][0] = ColorI
	require.Equal(t, 0, board.Cell(0, 0))

	copied := board.Grid()
	copied[1][1] = ColorI
	require.Equal(t, 0, board.Cell(1, 1))

	require.Equal(t, BoardRows, NewBoardFromGrid(nil).Rows())
	require.Equal(t, BoardCols, NewBoardFromGrid(nil).Cols())
}

func TestBoardCell(t *testing.T) {
	board := NewBoard(4, 3)
	board.SetCell(2, 3, ColorL)
	board.SetCell(3, 3, ColorL)
	board.SetCell(-1, 0, ColorL)

	require.Equal(t, ColorL, board.Cell(2, 3))
	require.Equal(t, 0, board.Cell(3, 3))
	require.Equal(t, 0, board.Cell(0, -1))
	require.Equal(t, 3, board.Cols())
	require.Equal(t, 4, board.Rows())
}

func TestPlace(t *testing.T) {
	board := NewBoard(BoardRows, BoardCols)
	piece := NewPiece(ColorO)
	piece.X = 4
	piece.Y = 18

	require.False(t, board.Place(piece))
	require.Equal(t, ColorO, board.Cell(4, 18))
	require.Equal(t, ColorO, board.Cell(5, 19))

	piece = NewPiece(ColorO)
	piece.X = 0
	piece.Y = -1
	require.True(t, board.Place(piece))
	require.Equal(t, ColorO, board.Cell(0, 0))
	require.Equal(t, ColorO, board.Cell(1, 0))
}

func TestClearLinesNoFullLines(t *testing.T) {
	grid := emptyGrid()
	grid[19] = fullRow(3)
	grid[18] = fullRow(0, 1)
	grid[5][5] = ColorS
	board := NewBoardFromGrid(grid)

	require.Equal(t, 0, board.ClearLines())
	require.Equal(t, grid, board.Grid())
}

func TestClearLinesBottomTwo(t *testing.T) {
	grid := emptyGrid()
	grid[19] = fullRow()
	grid[18] = fullRow()
	grid[17] = fullRow(9)
	grid[16] = fullRow(0, 9)
	grid[15][2] = ColorT
	board := NewBoardFromGrid(grid)

	require.Equal(t, 2, board.ClearLines())

	want := emptyGrid()
	want[19] = fullRow(9)
	want[18] = fullRow(0, 9)
	want[17][2] = ColorT
	require.Equal(t, want, board.Grid())
}

func TestClearLinesSeparated(t *testing.T) {
	grid := emptyGrid()
	grid[19] = fullRow()
	grid[18] = fullRow(4)
	grid[17] = fullRow()
	grid[16] = fullRow()
	grid[15] = fullRow(6)
	board := NewBoardFromGrid(grid)

	require.Equal(t, 3, board.ClearLines())

	want := emptyGrid()
	want[19] = fullRow(4)
	want[18] = fullRow(6)
	require.Equal(t, want, board.Grid())
	require.Equal(t, 0, board.ClearLines())
}

func TestScoreForLines(t *testing.T) {
	tests := []struct {
		lines int
		want  int
	}{
		{0, 0},
		{1, 100},
		{2, 300},
		{3, 500},
		{4, 800},
		{5, 800},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := ScoreForLines(tt.lines); got != tt.want {
			t.Errorf("ScoreForLines(%d) = %v, want %v", tt.lines, got, tt.want)
		}
	}
}
