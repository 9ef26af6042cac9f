package sound

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/require"
)

// drain streams s to the end and returns the number of samples and the peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func recordingEffects() (*Effects, *[]beep.Streamer) {
	played := []beep.Streamer{}
	effects := newEffects(sampleRate, func(s beep.Streamer) {
		played = append(played, s)
	})
	return effects, &played
}

func TestPieceLockedTick(t *testing.T) {
	effects, played := recordingEffects()
	effects.PieceLocked()

	require.Len(t, *played, 1)
	samples, peak := drain((*played)[0])
	require.Equal(t, sampleRate.N(lockTime), samples)
	require.Greater(t, peak, 0.5)
	require.LessOrEqual(t, peak, 1.0)
}

func TestLinesClearedOneNotePerLine(t *testing.T) {
	for lines := 1; lines <= 4; lines++ {
		effects, played := recordingEffects()
		effects.LinesCleared(lines, 0)

		require.Len(t, *played, 1)
		samples, _ := drain((*played)[0])
		require.Equal(t, lines*sampleRate.N(noteTime), samples)
	}

	effects, played := recordingEffects()
	effects.LinesCleared(0, 0)
	require.Empty(t, *played)
}

func TestStageClearedAndGameOver(t *testing.T) {
	effects, played := recordingEffects()
	effects.StageCleared(100)
	effects.GameOver()

	require.Len(t, *played, 2)
	samples, _ := drain((*played)[0])
	require.Equal(t, 6*sampleRate.N(noteTime), samples)
	samples, _ = drain((*played)[1])
	require.Equal(t, 10*sampleRate.N(noteTime), samples)
}

func TestMuted(t *testing.T) {
	effects, err := New(true)
	require.NoError(t, err)
	effects.PieceLocked()
	effects.StageCleared(100)
	effects.Close()
}

func TestToneAboveNyquistIsSilent(t *testing.T) {
	effects := newEffects(beep.SampleRate(1000), nil)
	samples, peak := drain(effects.tone(900, 100*time.Millisecond))
	require.Equal(t, 100, samples)
	require.Equal(t, 0.0, peak)
}

func TestSemitones(t *testing.T) {
	require.InDelta(t, 2.0, semitones(12), 1e-9)
	require.InDelta(t, 0.5, semitones(-12), 1e-9)
	require.Equal(t, 1.0, semitones(0))
}
