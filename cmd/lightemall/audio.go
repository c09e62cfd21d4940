package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// chime plays a short rising two-note tone when a board is solved.
// A chime whose speaker failed to start is silent.
type chime struct {
	ready bool
}

func newChime(mute bool) *chime {
	if mute {
		return &chime{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, the game runs without sound
		log.WithError(err).Warn("audio initialization failed")
		return &chime{}
	}
	return &chime{ready: true}
}

func (c *chime) play() {
	if !c.ready {
		return
	}
	low, err := tone(660, 90*time.Millisecond)
	if err != nil {
		log.WithError(err).Warn("chime tone")
		return
	}
	high, err := tone(880, 160*time.Millisecond)
	if err != nil {
		log.WithError(err).Warn("chime tone")
		return
	}
	speaker.Play(beep.Seq(low, high))
}

func (c *chime) close() {
	if c.ready {
		speaker.Close()
		c.ready = false
	}
}

func tone(freq int, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(d), sine), nil
}
