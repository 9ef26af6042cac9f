// Package stage generates the numbered stages of the game.
package stage

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/chiselstrike/tetris-stages/internal/tetris"
)

const (
	// MaxStage is the last stage that can be played
	MaxStage = 99
	// MaxGoal is the most lines a stage asks for
	MaxGoal = 4
	// MaxGarbageRows is the most garbage rows a stage starts with
	MaxGarbageRows = 10
	// GarbageColor fills the garbage rows
	GarbageColor = tetris.ColorZ

	idPrefix = "stage"
)

// ID returns the identifier of stage n
func ID(n int) string {
	return idPrefix + strconv.Itoa(n)
}

// ParseID returns the number of the stage with the given identifier
func ParseID(id string) (int, error) {
	if !strings.HasPrefix(id, idPrefix) {
		return 0, fmt.Errorf("invalid stage id %q", id)
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, idPrefix))
	if err != nil {
		return 0, fmt.Errorf("invalid stage id %q: %w", id, err)
	}
	if err := Validate(n); err != nil {
		return 0, err
	}
	return n, nil
}

// Validate checks that n is a playable stage number
func Validate(n int) error {
	if n < 1 || n > MaxStage {
		return fmt.Errorf("stage %d out of range, stages go from 1 to %d", n, MaxStage)
	}
	return nil
}

// GoalCount is the number of lines stage n asks for: one more every two stages
func GoalCount(n int) int {
	return min(n/2+1, MaxGoal)
}

// GarbageRows is the number of garbage rows stage n starts with: one more every three stages
func GarbageRows(n int) int {
	return min(n/3, MaxGarbageRows)
}

// Generate builds stage n on a board of the standard size.
// Garbage rows are stacked from the bottom, each with a single hole
// that never lines up with the hole of the row below it.
func Generate(n int, rng *rand.Rand) tetris.Stage {
	return GenerateSize(n, tetris.BoardRows, tetris.BoardCols, rng)
}

// GenerateSize builds stage n on a rows x cols board
func GenerateSize(n int, rows int, cols int, rng *rand.Rand) tetris.Stage {
	board := make([][]int, rows)
	for y := range board {
		board[y] = make([]int, cols)
	}

	lastHole := -1
	for i := 0; i < min(GarbageRows(n), rows); i++ {
		row := board[rows-1-i]
		for x := range row {
			row[x] = GarbageColor
		}

		hole := rng.Intn(cols)
		for hole == lastHole && cols > 1 {
			hole = rng.Intn(cols)
		}
		row[hole] = 0
		lastHole = hole
	}

	return tetris.Stage{
		ID:           ID(n),
		Goal:         tetris.Goal{Type: tetris.GoalClearLines, Count: GoalCount(n)},
		InitialBoard: board,
	}
}
