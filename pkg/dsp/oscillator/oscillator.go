// Package oscillator provides phase-accumulator waveform generators for
// audio synthesis.
package oscillator

import "math"

// Waveform selects the shape produced by Oscillator.Next.
type Waveform int

const (
	// Sine produces a pure sine wave.
	Sine Waveform = iota
	// Square produces a hard-edged square wave.
	Square
	// Triangle produces a linear triangle wave.
	Triangle
	// Sawtooth produces a ramp from -1 to +1.
	Sawtooth
)

// String returns a human-readable waveform name.
func (w Waveform) String() string {
	switch w {
	case Sine:
		return "Sine"
	case Square:
		return "Square"
	case Triangle:
		return "Triangle"
	case Sawtooth:
		return "Sawtooth"
	default:
		return "Unknown"
	}
}

// Oscillator is a phase accumulator that advances a phase in [0, 1) once
// per call and emits samples for the four built-in waveforms. No
// anti-aliasing is performed; waveform and frequency changes are
// control-only and never flush accumulated phase.
type Oscillator struct {
	frequency float64
	phase     float64
}

// New creates an oscillator at 440 Hz with phase 0.
func New() *Oscillator {
	return &Oscillator{frequency: 440.0}
}

// SetFrequency sets the oscillator frequency in Hz.
func (o *Oscillator) SetFrequency(freq float64) {
	o.frequency = freq
}

// Frequency returns the current frequency in Hz.
func (o *Oscillator) Frequency() float64 {
	return o.frequency
}

// ResetPhase resets the phase accumulator to zero.
func (o *Oscillator) ResetPhase() {
	o.phase = 0.0
}

// SetPhase sets the phase directly, wrapped into [0, 1).
func (o *Oscillator) SetPhase(phase float64) {
	o.phase = phase - math.Floor(phase)
}

// Phase returns the current phase in [0, 1).
func (o *Oscillator) Phase() float64 {
	return o.phase
}

// advance moves the phase forward by one sample at the given sample rate.
func (o *Oscillator) advance(sampleRate float64) {
	o.phase += o.frequency / sampleRate
	if o.phase >= 1.0 {
		o.phase -= math.Floor(o.phase)
	}
}

// Next generates the next sample of the given waveform at unit amplitude
// and advances the phase.
func (o *Oscillator) Next(sampleRate float64, wf Waveform) float32 {
	var sample float32
	switch wf {
	case Sine:
		sample = float32(math.Sin(2.0 * math.Pi * o.phase))
	case Square:
		if o.phase < 0.5 {
			sample = 1.0
		} else {
			sample = -1.0
		}
	case Triangle:
		if o.phase < 0.5 {
			sample = float32(4.0*o.phase - 1.0)
		} else {
			sample = float32(3.0 - 4.0*o.phase)
		}
	case Sawtooth:
		sample = float32(2.0*o.phase - 1.0)
	default:
		sample = 0
	}
	o.advance(sampleRate)
	return sample
}
