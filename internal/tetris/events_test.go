package tetris

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListenersFanOut(t *testing.T) {
	first := &recordingListener{}
	second := &recordingListener{}
	listeners := Listeners{first, NopListener{}, second}

	listeners.PieceLocked()
	listeners.LinesCleared(2, 300)
	listeners.StageCleared(300)

	want := []string{"locked", "cleared 2 300", "stage cleared 300"}
	require.Equal(t, want, first.events)
	require.Equal(t, want, second.events)
}

func TestLogListener(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(log.New(&buf, "", 0))
	t.Cleanup(func() { SetLogger(nil) })

	listener := LogListener{}
	listener.PieceSpawned(Piece{Color: ColorT, X: 3})
	listener.PieceLocked()
	listener.LinesCleared(1, 100)
	listener.StageCleared(100)
	listener.GameOver()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, []string{
		"piece 6 spawned at 3,0",
		"piece locked",
		"1 lines cleared, score 100",
		"stage cleared, score 100",
		"game over",
	}, lines)
}
