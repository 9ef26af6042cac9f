package tetris

// lineScores maps lines removed by one lock to points, anything past four scores as four
var lineScores = [...]int{0, 100, 300, 500, 800}

// ScoreForLines returns the points for removing lines with a single lock
func ScoreForLines(lines int) int {
	if lines <= 0 {
		return 0
	}
	if lines >= len(lineScores) {
		return lineScores[len(lineScores)-1]
	}
	return lineScores[lines]
}

// goalReached checks the lines cleared so far against the stage goal
func (session *Session) goalReached() bool {
	return session.lines >= session.stage.Goal.Count
}
