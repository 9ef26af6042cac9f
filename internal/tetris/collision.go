package tetris

// IsBlocked reports whether the piece overlaps a wall, the floor or a locked cell.
// Cells above the board only collide with the walls so pieces can spawn partly
// out of view.
func IsBlocked(board *Board, piece *Piece) bool {
	for r, row := range piece.Shape {
		for c, value := range row {
			if value == 0 {
				continue
			}
			if !board.validBlockLocation(piece.X+c, piece.Y+r) {
				return true
			}
		}
	}
	return false
}

// validBlockLocation checks a single cell against walls, floor and locked cells
func (board *Board) validBlockLocation(x int, y int) bool {
	if x < 0 || x >= board.width || y >= board.height {
		return false
	}
	if y >= 0 && board.cells[y][x] != 0 {
		return false
	}
	return true
}
