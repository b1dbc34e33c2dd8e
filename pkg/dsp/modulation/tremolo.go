package modulation

import "math"

// Tremolo applies an LFO-driven amplitude modulation. The gain is
// refreshed only on zero-crossings of the input signal, in either
// direction, so the modulation cannot itself introduce audible ring
// modulation between the LFO and the input's own frequency content; the
// LFO phase still advances every sample regardless of crossings.
type Tremolo struct {
	sampleRate float64
	rate       float64 // Hz, 0.1..20
	depth      float64 // 0..1

	phase    float64
	gain     float64
	lastIn   float32
	hasInput bool
}

// NewTremolo creates a Tremolo at the given sample rate.
func NewTremolo(sampleRate float64) *Tremolo {
	return &Tremolo{
		sampleRate: sampleRate,
		rate:       5.0,
		depth:      0.5,
		gain:       1.0,
	}
}

// SetRate sets the LFO rate in Hz, clamped to 0.1..20.
func (t *Tremolo) SetRate(hz float64) {
	t.rate = math.Max(0.1, math.Min(20.0, hz))
}

// SetDepth sets the modulation depth in [0,1].
func (t *Tremolo) SetDepth(depth float64) {
	t.depth = math.Max(0.0, math.Min(1.0, depth))
}

// Process applies the current gain to input, refreshing the gain first
// if input has crossed zero since the previous call.
func (t *Tremolo) Process(input float32) float32 {
	if t.hasInput && crossedZero(t.lastIn, input) {
		m := 0.5 * (1.0 + math.Sin(2.0*math.Pi*t.phase))
		t.gain = 1.0 - t.depth*m
	}
	t.lastIn = input
	t.hasInput = true

	t.phase += t.rate / t.sampleRate
	if t.phase >= 1.0 {
		t.phase -= math.Floor(t.phase)
	}

	return input * float32(t.gain)
}

func crossedZero(prev, cur float32) bool {
	if prev == 0 || cur == 0 {
		return true
	}
	return (prev < 0) != (cur < 0)
}
