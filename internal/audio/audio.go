// Package audio is the host-facing collaborator that gates tone
// playback on a chip8.Machine's sound timer. Tone synthesis itself is
// a host concern per spec's scope; this package only observes the
// Machine's read-only SoundTimer accessor and starts/stops a beep
// streamer accordingly — it carries no VM semantics.
package audio

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/nullrune/chip8vm/internal/chip8"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneHz     = 440.0
)

// Gate drives a square-wave tone on and off as a Machine's sound timer
// transitions between zero and non-zero.
type Gate struct {
	tone    beep.Streamer
	playing bool
}

// NewGate builds a Gate and initializes the default speaker at
// sampleRate. Call Tick once per host frame.
func NewGate() (*Gate, error) {
	speaker.Init(sampleRate, sampleRate.N(time.Second/20))
	return &Gate{tone: squareWave(toneHz, sampleRate)}, nil
}

// Tick starts the tone the instant the sound timer becomes non-zero
// and stops it the instant it returns to zero. Safe to call every
// host frame even when the timer hasn't changed.
func (g *Gate) Tick(m *chip8.Machine) {
	sounding := m.SoundTimer() > 0
	if sounding == g.playing {
		return
	}
	g.playing = sounding
	if sounding {
		speaker.Play(g.tone)
	} else {
		speaker.Clear()
	}
}

// squareWave returns an infinite beep.Streamer oscillating between +1
// and -1 at freq Hz, sampled at sr.
func squareWave(freq float64, sr beep.SampleRate) beep.Streamer {
	period := sr.N(time.Second) / int(freq)
	if period < 2 {
		period = 2
	}
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			val := 1.0
			if (pos/(period/2))%2 == 1 {
				val = -1.0
			}
			samples[i][0] = val
			samples[i][1] = val
			pos++
		}
		return len(samples), true
	})
}
