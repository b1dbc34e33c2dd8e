// Package modulation provides LFO-driven modulation effects: chorus and
// tremolo.
package modulation

import (
	"math"

	"github.com/kbolino/gosynth/pkg/dsp/delay"
)

// Chorus is an interpolated chorus effect. All voices read from a
// single shared delay line at phase-offset fractional positions; a
// per-voice delay line would let each voice see its own private copy of
// history and never actually blend with the others.
type Chorus struct {
	line *delay.Line

	sampleRate float64
	rate       float64 // Hz, 0.01..2
	depthMs    float64
	mix        float32

	voices int
	phase  float64
}

// NewChorus creates a Chorus with the given number of voices (default 3
// when voices <= 0) and a delay line long enough for the maximum depth.
func NewChorus(sampleRate float64, voices int) *Chorus {
	if voices <= 0 {
		voices = 3
	}
	return &Chorus{
		line:       delay.NewLine(0.05, sampleRate),
		sampleRate: sampleRate,
		rate:       0.5,
		depthMs:    3.0,
		mix:        0.5,
		voices:     voices,
	}
}

// SetRate sets the shared LFO rate in Hz, clamped to 0.01..2.
func (c *Chorus) SetRate(hz float64) {
	c.rate = math.Max(0.01, math.Min(2.0, hz))
}

// SetDepth sets the modulation depth in milliseconds.
func (c *Chorus) SetDepth(ms float64) {
	c.depthMs = math.Max(0.0, ms)
}

// SetMix sets the dry/wet mix in [0,1].
func (c *Chorus) SetMix(mix float32) {
	c.mix = mix
}

// Process writes input once to the shared delay line, reads it back at
// each voice's phase-offset position, and returns the dry/wet-mixed
// average of the voices.
func (c *Chorus) Process(input float32) float32 {
	c.line.Write(input)

	var sum float32
	for i := 0; i < c.voices; i++ {
		voicePhase := c.phase + float64(i)/float64(c.voices)
		voicePhase -= math.Floor(voicePhase)
		lfo := 0.5 + 0.5*math.Sin(2.0*math.Pi*voicePhase)
		delayMs := c.depthMs * lfo
		if delayMs < 1.0 {
			delayMs = 1.0
		}
		delaySamples := delayMs * c.sampleRate / 1000.0
		sum += c.line.Read(delaySamples)
	}
	mean := sum / float32(c.voices)

	c.phase += c.rate / c.sampleRate
	if c.phase >= 1.0 {
		c.phase -= math.Floor(c.phase)
	}

	return input*(1.0-c.mix) + mean*c.mix
}
