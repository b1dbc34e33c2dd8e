package generator

import "github.com/kbolino/gosynth/pkg/dsp/oscillator"

// Oscillator is a leaf generator wrapping a single phase-accumulator
// oscillator. Frequency and volume are fixed at construction by the
// voice factory that built it; waveform and frequency may still be
// changed afterward through SetWaveform/SetFrequency for effects like
// FM modulation, but neither is exposed as a live Parameter; this type
// exposes no Oscillator-level parameters, only the containing
// Tone/HarmonicTone/FMVoice do.
type Oscillator struct {
	Base

	osc      *oscillator.Oscillator
	waveform oscillator.Waveform
	volume   float32
}

// NewOscillator creates an Oscillator at the given frequency and
// volume, defaulting to a sine waveform.
func NewOscillator(frequency float64, volume float32) *Oscillator {
	o := &Oscillator{Base: NewBase(), osc: oscillator.New(), volume: volume}
	o.osc.SetFrequency(frequency)
	return o
}

// SetWaveform selects the waveform shape. Control-only: does not flush
// the phase accumulator.
func (o *Oscillator) SetWaveform(wf oscillator.Waveform) {
	o.waveform = wf
}

// SetFrequency retunes the oscillator. Control-only.
func (o *Oscillator) SetFrequency(freq float64) {
	o.osc.SetFrequency(freq)
}

// Frequency returns the current frequency in Hz.
func (o *Oscillator) Frequency() float64 {
	return o.osc.Frequency()
}

// ResetPhase resets the phase accumulator to zero.
func (o *Oscillator) ResetPhase() {
	o.osc.ResetPhase()
}

// GenerateSample produces the next sample, scaled by volume.
func (o *Oscillator) GenerateSample(sampleRate float64) float32 {
	return o.osc.Next(sampleRate, o.waveform) * o.volume
}
