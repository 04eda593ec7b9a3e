// Package audio plays generated feedback tones through the speaker.
// Initialization failure is non-fatal: a silent player works everywhere
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player emits the picker's two sounds: a click when the pointer
// crosses a segment boundary and a chime when a run settles
type Player struct {
	enabled bool
	ready   bool
}

// NewPlayer creates a player; when disabled it never touches the speaker
func NewPlayer(enabled bool) *Player {
	return &Player{enabled: enabled}
}

// Init opens the speaker. Returns the speaker error so the caller can
// log it; the player stays usable (silently) either way
func (p *Player) Init() error {
	if !p.enabled {
		return nil
	}
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		p.ready = true
	}
	return err
}

// Click plays a short tick for a segment boundary crossing
func (p *Player) Click() {
	if !p.ready {
		return
	}
	tone := NewOscillator(1200, 18*time.Millisecond, WaveSquare, sampleRate)
	speaker.Play(&effects.Gain{Streamer: tone, Gain: -0.6})
}

// Chime plays a rising three-note figure for the winner
func (p *Player) Chime() {
	if !p.ready {
		return
	}
	notes := []float64{523.25, 659.25, 783.99} // C5 E5 G5
	streamers := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		streamers = append(streamers, NewOscillator(f, 120*time.Millisecond, WaveSine, sampleRate))
	}
	speaker.Play(beep.Seq(streamers...))
}
