package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	for color := 1; color <= PieceCount; color++ {
		piece := NewPiece(color)
		size := piece.Size()
		require.Contains(t, []int{2, 3, 4}, size)

		cells := 0
		for _, row := range piece.Shape {
			require.Len(t, row, size, "shape %d is not square", color)
			for _, value := range row {
				if value != 0 {
					require.Equal(t, color, value)
					cells++
				}
			}
		}
		require.Equal(t, 4, cells, "shape %d", color)
		require.Equal(t, 0, piece.X)
		require.Equal(t, 0, piece.Y)
	}
}

func TestNewPieceCopiesShape(t *testing.T) {
	piece := NewPiece(ColorT)
	piece.Shape[0][0] = 9
	require.Equal(t, 0, NewPiece(ColorT).Shape[0][0])
}

func TestRandomPiece(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		piece := RandomPiece(rng)
		require.GreaterOrEqual(t, piece.Color, 1)
		require.LessOrEqual(t, piece.Color, PieceCount)
		seen[piece.Color] = true
	}
	require.Len(t, seen, PieceCount)

	a := RandomPiece(rand.New(rand.NewSource(7)))
	b := RandomPiece(rand.New(rand.NewSource(7)))
	require.Equal(t, a, b)
}

func TestRotateClockwise(t *testing.T) {
	require.Equal(t, rotatedT, RotateClockwise(NewPiece(ColorT).Shape))
	require.Equal(t, verticalI, RotateClockwise(NewPiece(ColorI).Shape))

	original := NewPiece(ColorS).Shape
	before := original.Clone()
	RotateClockwise(original)
	require.Equal(t, before, original, "rotation must not modify its input")
}

func TestRotateClockwiseFourTimes(t *testing.T) {
	for color := 1; color <= PieceCount; color++ {
		shape := NewPiece(color).Shape
		rotated := shape
		for i := 0; i < 4; i++ {
			rotated = RotateClockwise(rotated)
		}
		require.True(t, shape.Equal(rotated), "shape %d", color)
	}
}

func TestSpawnX(t *testing.T) {
	tests := []struct {
		color int
		want  int
	}{
		{ColorI, 3},
		{ColorJ, 3},
		{ColorL, 3},
		{ColorO, 4},
		{ColorS, 3},
		{ColorT, 3},
		{ColorZ, 3},
	}
	for _, tt := range tests {
		if got := spawnX(NewPiece(tt.color).Shape, BoardCols); got != tt.want {
			t.Errorf("spawnX(%d) = %v, want %v", tt.color, got, tt.want)
		}
	}
}

func TestCloneRotateRightLeavesOriginal(t *testing.T) {
	piece := NewPiece(ColorT)
	piece.X, piece.Y = 3, 5
	original := piece.Shape.Clone()

	rotated := piece.CloneRotateRight()

	require.Equal(t, original, piece.Shape)
	require.Equal(t, rotatedT, rotated.Shape)
	require.Equal(t, 3, rotated.X)
	require.Equal(t, 5, rotated.Y)
}
