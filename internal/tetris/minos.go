package tetris

import (
	"math/rand"
)

// Color indices of the catalog pieces, also used as board cell values
const (
	ColorI = iota + 1
	ColorJ
	ColorL
	ColorO
	ColorS
	ColorT
	ColorZ
)

// shapes is indexed by color index minus one
var shapes = [7]Shape{
	{
		{0, 0, 0, 0},
		{ColorI, ColorI, ColorI, ColorI},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	{
		{ColorJ, 0, 0},
		{ColorJ, ColorJ, ColorJ},
		{0, 0, 0},
	},
	{
		{0, 0, ColorL},
		{ColorL, ColorL, ColorL},
		{0, 0, 0},
	},
	{
		{ColorO, ColorO},
		{ColorO, ColorO},
	},
	{
		{0, ColorS, ColorS},
		{ColorS, ColorS, 0},
		{0, 0, 0},
	},
	{
		{0, ColorT, 0},
		{ColorT, ColorT, ColorT},
		{0, 0, 0},
	},
	{
		{ColorZ, ColorZ, 0},
		{0, ColorZ, ColorZ},
		{0, 0, 0},
	},
}

// PieceCount is the number of pieces in the catalog
const PieceCount = len(shapes)

// NewPiece creates the catalog piece for the color index at (0, 0)
func NewPiece(color int) *Piece {
	return &Piece{
		Shape: shapes[color-1].Clone(),
		Color: color,
	}
}

// RandomPiece creates a uniformly random catalog piece at (0, 0)
func RandomPiece(rng *rand.Rand) *Piece {
	return NewPiece(rng.Intn(PieceCount) + 1)
}

// Clone returns a deep copy of the shape
func (shape Shape) Clone() Shape {
	newShape := make(Shape, len(shape))
	for i := range shape {
		newShape[i] = make([]int, len(shape[i]))
		copy(newShape[i], shape[i])
	}
	return newShape
}

// Equal reports whether both shapes have the same cells
func (shape Shape) Equal(other Shape) bool {
	if len(shape) != len(other) {
		return false
	}
	for i := range shape {
		if len(shape[i]) != len(other[i]) {
			return false
		}
		for j := range shape[i] {
			if shape[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// RotateClockwise returns the shape rotated 90 degrees clockwise
func RotateClockwise(shape Shape) Shape {
	length := len(shape)
	newShape := make(Shape, length)
	for i := 0; i < length; i++ {
		newShape[i] = make([]int, length)
	}

	for r := 0; r < length; r++ {
		for c := 0; c < length; c++ {
			newShape[c][length-1-r] = shape[r][c]
		}
	}

	return newShape
}

// spawnX is the starting column for a shape, 2 wide shapes sit one column further right
func spawnX(shape Shape, cols int) int {
	if len(shape) == 2 {
		return cols/2 - 1
	}
	return cols/2 - 2
}
