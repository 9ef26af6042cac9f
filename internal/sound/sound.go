// Package sound plays short synthesized effects for game events.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/chiselstrike/tetris-stages/internal/tetris"
)

const sampleRate = beep.SampleRate(44100)

const (
	lockFreq  = 220.0
	clearFreq = 440.0
	noteTime  = 70 * time.Millisecond
	lockTime  = 30 * time.Millisecond
)

// Effects is a session listener turning events into sounds
type Effects struct {
	tetris.NopListener

	mu   sync.Mutex
	rate beep.SampleRate
	play func(beep.Streamer)
	init bool
}

// New opens the speaker. A muted Effects plays nothing and never touches the audio device.
func New(mute bool) (*Effects, error) {
	if mute {
		return newEffects(sampleRate, nil), nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return newEffects(sampleRate, nil), err
	}
	effects := newEffects(sampleRate, func(s beep.Streamer) { speaker.Play(s) })
	effects.init = true
	return effects, nil
}

func newEffects(rate beep.SampleRate, play func(beep.Streamer)) *Effects {
	return &Effects{rate: rate, play: play}
}

// Close stops the sounds still playing and releases the speaker
func (e *Effects) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.init {
		return
	}
	speaker.Clear()
	speaker.Close()
	e.init = false
	e.play = nil
}

func (e *Effects) PieceLocked() {
	e.emit(e.tone(lockFreq, lockTime))
}

// LinesCleared plays one rising note per cleared line
func (e *Effects) LinesCleared(count int, score int) {
	notes := make([]beep.Streamer, 0, count)
	for i := 0; i < count; i++ {
		notes = append(notes, e.tone(clearFreq*semitones(4*i), noteTime))
	}
	e.emit(notes...)
}

func (e *Effects) StageCleared(score int) {
	e.emit(
		e.tone(clearFreq, noteTime),
		e.tone(clearFreq*semitones(4), noteTime),
		e.tone(clearFreq*semitones(7), noteTime),
		e.tone(clearFreq*semitones(12), 3*noteTime),
	)
}

func (e *Effects) GameOver() {
	e.emit(
		e.tone(clearFreq, 2*noteTime),
		e.tone(clearFreq*semitones(-3), 2*noteTime),
		e.tone(clearFreq*semitones(-6), 2*noteTime),
		e.tone(clearFreq*semitones(-12), 4*noteTime),
	)
}

func (e *Effects) emit(streamers ...beep.Streamer) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.play == nil || len(streamers) == 0 {
		return
	}
	e.play(beep.Seq(streamers...))
}

// tone is a sine note of the given frequency, silence if the rate cannot carry it
func (e *Effects) tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(e.rate, freq)
	if err != nil {
		return beep.Silence(e.rate.N(d))
	}
	return beep.Take(e.rate.N(d), sine)
}

// semitones is the frequency ratio of n equal tempered semitones
func semitones(n int) float64 {
	ratio := 1.0
	step := 1.0594630943592953
	if n < 0 {
		step = 1 / step
		n = -n
	}
	for i := 0; i < n; i++ {
		ratio *= step
	}
	return ratio
}
