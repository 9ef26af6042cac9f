package tetris

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	session, listener := newTestSession(nil, 2)

	require.Equal(t, StatePlaying, session.State())
	require.NotNil(t, session.Current())
	require.NotNil(t, session.Next())
	require.Equal(t, 0, session.Current().Y)
	require.Equal(t, spawnX(session.Current().Shape, BoardCols), session.Current().X)
	require.Equal(t, 0, session.Score())
	require.Equal(t, 0, session.LinesCleared())
	require.Equal(t, Goal{Type: GoalClearLines, Count: 2}, session.Goal())
	require.Equal(t, emptyGrid(), session.Board())
	require.Equal(t, 1, len(listener.events))
}

func TestMoveRoundTrip(t *testing.T) {
	for _, dir := range []int{-1, 1} {
		session, _ := newTestSession(nil, 1)
		setCurrent(session, NewPiece(ColorT), 3, 5)

		require.True(t, session.Move(dir))
		require.Equal(t, 3+dir, session.Current().X)
		require.True(t, session.Move(-dir))
		require.Equal(t, 3, session.Current().X)
	}
}

func TestMoveSeveralColumns(t *testing.T) {
	session, _ := newTestSession(nil, 1)
	piece := NewPiece(ColorT)
	setCurrent(session, piece, 1, 5)

	require.True(t, session.Move(2))
	require.Equal(t, 3, session.Current().X)
	require.Equal(t, 1, piece.X, "moves work on a copy of the piece")

	require.False(t, session.Move(-4))
	require.Equal(t, 3, session.Current().X)
}

func TestMoveBlocked(t *testing.T) {
	session, _ := newTestSession(nil, 1)
	setCurrent(session, NewPiece(ColorO), 0, 5)

	require.False(t, session.MoveLeft())
	require.Equal(t, 0, session.Current().X)

	setCurrent(session, NewPiece(ColorO), 8, 5)
	require.False(t, session.MoveRight())
	require.Equal(t, 8, session.Current().X)
}

func TestSoftDrop(t *testing.T) {
	session, listener := newTestSession(nil, 1)
	setCurrent(session, NewPiece(ColorO), 4, 17)
	next := session.Next()

	require.True(t, session.SoftDrop())
	require.Equal(t, 18, session.Current().Y)

	require.False(t, session.SoftDrop())
	require.Equal(t, ColorO, session.Board()[18][4])
	require.Equal(t, ColorO, session.Board()[19][5])
	require.Equal(t, 1, listener.count("locked"))

	require.Equal(t, next.Color, session.Current().Color)
	require.Equal(t, 0, session.Current().Y)
	require.Equal(t, StatePlaying, session.State())
}

func TestHardDropLandsOnFloor(t *testing.T) {
	for color := 1; color <= PieceCount; color++ {
		shape := NewPiece(color).Shape
		for turn := 0; turn < 4; turn++ {
			session, _ := newTestSession(nil, 4)
			piece := &Piece{Shape: shape, Color: color}
			setCurrent(session, piece, spawnX(shape, BoardCols), 0)

			session.HardDrop()

			bottom := -1
			for y, row := range session.Board() {
				for _, value := range row {
					if value == color {
						bottom = y
					}
				}
			}
			require.Equal(t, BoardRows-1, bottom, "piece %d turn %d", color, turn)
			shape = RotateClockwise(shape)
		}
	}
}

func TestHardDropDistance(t *testing.T) {
	session, _ := newTestSession(nil, 4)
	setCurrent(session, NewPiece(ColorO), 4, 0)
	require.Equal(t, 18, session.HardDrop())
}

func TestRotate(t *testing.T) {
	session, _ := newTestSession(nil, 1)
	setCurrent(session, NewPiece(ColorT), 3, 5)
	original := session.Current().Shape

	require.True(t, session.Rotate())
	require.Equal(t, rotatedT, session.Current().Shape)
	require.Equal(t, 3, session.Current().X)

	for i := 0; i < 3; i++ {
		require.True(t, session.Rotate())
	}
	require.Equal(t, original, session.Current().Shape)
	require.Equal(t, 3, session.Current().X)
}

func TestRotateKickOffLeftWall(t *testing.T) {
	session, _ := newTestSession(nil, 1)
	setCurrent(session, &Piece{Shape: rotatedT.Clone(), Color: ColorT}, -1, 5)
	require.False(t, IsBlocked(session.board, session.current))

	require.True(t, session.Rotate())
	require.Equal(t, 0, session.Current().X)
	require.Equal(t, Shape{
		{0, 0, 0},
		{ColorT, ColorT, ColorT},
		{0, ColorT, 0},
	}, session.Current().Shape)
}

func TestRotateKickTwo(t *testing.T) {
	session, _ := newTestSession(nil, 1)
	setCurrent(session, &Piece{Shape: verticalI.Clone(), Color: ColorI}, -2, 5)

	require.True(t, session.Rotate())
	require.Equal(t, 0, session.Current().X)
}

func TestRotateNoKickFits(t *testing.T) {
	grid := emptyGrid()
	for y := 10; y < BoardRows; y++ {
		grid[y] = fullRow(0)
	}
	session, _ := newTestSession(grid, 1)
	setCurrent(session, &Piece{Shape: verticalI.Clone(), Color: ColorI}, -2, 10)
	require.False(t, IsBlocked(session.board, session.current))

	require.False(t, session.Rotate())
	require.Equal(t, -2, session.Current().X)
	require.Equal(t, verticalI, session.Current().Shape)
}

func TestLockClearsTwoLines(t *testing.T) {
	grid := emptyGrid()
	grid[19] = fullRow(8, 9)
	grid[18] = fullRow(8, 9)
	grid[17][0] = ColorS
	session, listener := newTestSession(grid, 4)
	setCurrent(session, NewPiece(ColorO), 8, 0)

	session.HardDrop()

	require.Equal(t, 2, session.LinesCleared())
	require.Equal(t, 300, session.Score())
	require.Equal(t, StatePlaying, session.State())
	require.Equal(t, 1, listener.count("cleared 2 300"))

	want := emptyGrid()
	want[19][0] = ColorS
	require.Equal(t, want, session.Board())
}

func TestStageClear(t *testing.T) {
	grid := emptyGrid()
	grid[19] = fullRow(8, 9)
	session, listener := newTestSession(grid, 1)
	setCurrent(session, NewPiece(ColorO), 8, 0)
	listener.events = nil

	session.HardDrop()

	require.Equal(t, StateStageCleared, session.State())
	require.Equal(t, 1, session.LinesCleared())
	require.Equal(t, 100, session.Score())
	require.Nil(t, session.Current())
	require.Equal(t, []string{"locked", "cleared 1 100", "stage cleared 100"}, listener.events)

	board := session.Board()
	require.False(t, session.MoveLeft())
	require.False(t, session.SoftDrop())
	require.Equal(t, 0, session.HardDrop())
	require.False(t, session.Rotate())
	require.Equal(t, board, session.Board())
}

func TestScoreAccumulates(t *testing.T) {
	grid := emptyGrid()
	grid[19] = fullRow(0, 1)
	grid[18] = fullRow(0, 1)
	grid[17] = fullRow(0, 1, 8, 9)
	grid[16] = fullRow(0, 1, 8, 9)
	session, _ := newTestSession(grid, 10)

	for _, x := range []int{0, 0, 8} {
		setCurrent(session, NewPiece(ColorO), x, 0)
		session.HardDrop()
	}

	require.Equal(t, 4, session.LinesCleared())
	require.Equal(t, 600, session.Score())
	require.Equal(t, emptyGrid(), session.Board())
	require.Equal(t, StatePlaying, session.State())
}

func TestSpawnBlockedIsGameOver(t *testing.T) {
	grid := emptyGrid()
	for y := 0; y < 4; y++ {
		grid[y] = fullRow(9)
	}
	session, listener := newTestSession(grid, 1)

	require.Equal(t, StateGameOver, session.State())
	require.Equal(t, []string{"game over"}, listener.events)
	require.Equal(t, grid, session.Board())
	require.False(t, session.MoveLeft())
	require.Equal(t, 0, session.HardDrop())
	require.Equal(t, grid, session.Board())
}

func TestLockThenSpawnBlocked(t *testing.T) {
	grid := emptyGrid()
	for y := 2; y < BoardRows; y++ {
		grid[y] = fullRow(0)
	}
	session, listener := newTestSession(grid, 1)
	require.Equal(t, StatePlaying, session.State())

	setCurrent(session, NewPiece(ColorO), 3, 0)
	require.False(t, session.SoftDrop())

	require.Equal(t, StateGameOver, session.State())
	require.Equal(t, 1, listener.count("game over"))
	require.Equal(t, ColorO, session.Board()[0][3])
	require.Equal(t, ColorO, session.Board()[1][4])
}

func TestLockAboveBoardIsGameOver(t *testing.T) {
	grid := emptyGrid()
	grid[2] = fullRow(1, 2, 3, 4, 5, 6, 7, 8, 9)
	session, listener := newTestSession(grid, 1)
	setCurrent(session, &Piece{Shape: verticalI.Clone(), Color: ColorI}, -2, -2)

	require.False(t, session.SoftDrop())

	require.Equal(t, StateGameOver, session.State())
	require.Equal(t, ColorI, session.Board()[0][0])
	require.Equal(t, ColorI, session.Board()[1][0])
	require.Equal(t, 1, listener.count("game over"))
}

func TestApply(t *testing.T) {
	tests := []struct {
		action Action
		x      int
		y      int
	}{
		{ActionMoveLeft, 2, 5},
		{ActionMoveRight, 4, 5},
		{ActionSoftDrop, 3, 6},
		{ActionRotate, 3, 5},
	}
	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			session, _ := newTestSession(nil, 1)
			setCurrent(session, NewPiece(ColorT), 3, 5)
			session.Apply(tt.action)
			require.Equal(t, tt.x, session.Current().X)
			require.Equal(t, tt.y, session.Current().Y)
		})
	}
}

func TestGhost(t *testing.T) {
	session, _ := newTestSession(nil, 1)
	setCurrent(session, NewPiece(ColorO), 4, 3)

	ghost := session.Ghost()
	require.Equal(t, 18, ghost.Y)
	require.Equal(t, 4, ghost.X)
	require.Equal(t, 3, session.Current().Y)
}
