package tetris

// Listener receives what happens in a session.
// Calls are made synchronously from the goroutine mutating the session.
type Listener interface {
	PieceSpawned(piece Piece)
	PieceLocked()
	LinesCleared(count int, score int)
	StageCleared(score int)
	GameOver()
}

// NopListener ignores every event, embed it to implement only some of them
type NopListener struct{}

func (NopListener) PieceSpawned(Piece)    {}
func (NopListener) PieceLocked()          {}
func (NopListener) LinesCleared(int, int) {}
func (NopListener) StageCleared(int)      {}
func (NopListener) GameOver()             {}

// Listeners sends each event to all of its listeners in order
type Listeners []Listener

func (listeners Listeners) PieceSpawned(piece Piece) {
	for _, l := range listeners {
		l.PieceSpawned(piece)
	}
}

func (listeners Listeners) PieceLocked() {
	for _, l := range listeners {
		l.PieceLocked()
	}
}

func (listeners Listeners) LinesCleared(count int, score int) {
	for _, l := range listeners {
		l.LinesCleared(count, score)
	}
}

func (listeners Listeners) StageCleared(score int) {
	for _, l := range listeners {
		l.StageCleared(score)
	}
}

func (listeners Listeners) GameOver() {
	for _, l := range listeners {
		l.GameOver()
	}
}

// LogListener writes every event to the package logger
type LogListener struct{}

func (LogListener) PieceSpawned(piece Piece) {
	logger.Printf("piece %d spawned at %d,%d", piece.Color, piece.X, piece.Y)
}

func (LogListener) PieceLocked() {
	logger.Println("piece locked")
}

func (LogListener) LinesCleared(count int, score int) {
	logger.Printf("%d lines cleared, score %d", count, score)
}

func (LogListener) StageCleared(score int) {
	logger.Printf("stage cleared, score %d", score)
}

func (LogListener) GameOver() {
	logger.Println("game over")
}
