package tetris

// Clone creates a deep copy of the piece
func (piece *Piece) Clone() *Piece {
	newPiece := *piece
	newPiece.Shape = piece.Shape.Clone()
	return &newPiece
}

// CloneMoveLeft creates copy of the piece and moves it left
func (piece *Piece) CloneMoveLeft() *Piece {
	newPiece := piece.Clone()
	newPiece.X--
	return newPiece
}

// CloneMoveRight creates copy of the piece and moves it right
func (piece *Piece) CloneMoveRight() *Piece {
	newPiece := piece.Clone()
	newPiece.X++
	return newPiece
}

// CloneMoveDown creates copy of the piece and moves it down
func (piece *Piece) CloneMoveDown() *Piece {
	newPiece := piece.Clone()
	newPiece.Y++
	return newPiece
}

// CloneRotateRight creates a copy of the piece rotated clockwise
func (piece *Piece) CloneRotateRight() *Piece {
	newPiece := *piece
	newPiece.Shape = RotateClockwise(piece.Shape)
	return &newPiece
}

// Size is the side length of the shape matrix
func (piece *Piece) Size() int {
	return len(piece.Shape)
}

// Cells calls fn with the board coordinates of every filled cell of the piece
func (piece *Piece) Cells(fn func(x int, y int, value int)) {
	for r, row := range piece.Shape {
		for c, value := range row {
			if value == 0 {
				continue
			}
			fn(piece.X+c, piece.Y+r, value)
		}
	}
}

// Bottom returns the board row of the lowest filled cell
func (piece *Piece) Bottom() int {
	bottom := piece.Y
	piece.Cells(func(_ int, y int, _ int) {
		if y > bottom {
			bottom = y
		}
	})
	return bottom
}
