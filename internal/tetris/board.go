package tetris

// NewBoard creates a new empty board
func NewBoard(rows int, cols int) *Board {
	board := &Board{width: cols, height: rows}
	board.cells = make([][]int, rows)
	for j := 0; j < rows; j++ {
		board.cells[j] = make([]int, cols)
	}
	return board
}

// NewBoardFromGrid creates a board holding a copy of grid.
// The grid must be rectangular.
func NewBoardFromGrid(grid [][]int) *Board {
	if len(grid) == 0 {
		return NewBoard(BoardRows, BoardCols)
	}
	board := NewBoard(len(grid), len(grid[0]))
	for j := range grid {
		copy(board.cells[j], grid[j])
	}
	return board
}

// Rows is the board height
func (board *Board) Rows() int {
	return board.height
}

// Cols is the board width
func (board *Board) Cols() int {
	return board.width
}

// Cell returns the value at x, y. Locations off the board are empty.
func (board *Board) Cell(x int, y int) int {
	if !board.onBoard(x, y) {
		return 0
	}
	return board.cells[y][x]
}

// SetCell sets the value at x, y, locations off the board are ignored
func (board *Board) SetCell(x int, y int, value int) {
	if !board.onBoard(x, y) {
		return
	}
	board.cells[y][x] = value
}

// Grid returns a copy of the cells, row major
func (board *Board) Grid() [][]int {
	grid := make([][]int, board.height)
	for j := range board.cells {
		grid[j] = make([]int, board.width)
		copy(grid[j], board.cells[j])
	}
	return grid
}

// Clone returns a deep copy of the board
func (board *Board) Clone() *Board {
	return NewBoardFromGrid(board.cells)
}

// Place writes the filled cells of the piece onto the board.
// Cells above the board are dropped, Place reports whether that happened.
func (board *Board) Place(piece *Piece) bool {
	discarded := false
	piece.Cells(func(x int, y int, value int) {
		if y < 0 {
			discarded = true
			return
		}
		board.SetCell(x, y, value)
	})
	return discarded
}

// ClearLines removes every full line, shifting the lines above down,
// and returns how many lines were removed
func (board *Board) ClearLines() int {
	removed := 0
	for j := board.height - 1; j >= 0; j-- {
		if !board.isFullLine(j) {
			continue
		}
		board.deleteLine(j)
		removed++
		// the line above now sits at j
		j++
	}
	return removed
}

// isFullLine checks if line is full
func (board *Board) isFullLine(j int) bool {
	for i := 0; i < board.width; i++ {
		if board.cells[j][i] == 0 {
			return false
		}
	}
	return true
}

// deleteLine removes the line and inserts an empty one at the top
func (board *Board) deleteLine(line int) {
	for j := line; j > 0; j-- {
		copy(board.cells[j], board.cells[j-1])
	}
	for i := 0; i < board.width; i++ {
		board.cells[0][i] = 0
	}
}

func (board *Board) onBoard(x int, y int) bool {
	return x >= 0 && x < board.width && y >= 0 && y < board.height
}
