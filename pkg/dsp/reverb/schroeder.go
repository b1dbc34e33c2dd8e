// Package reverb provides a Schroeder-style reverb built from parallel
// comb filters feeding series all-pass diffusers.
package reverb

import "math"

// combFilter is a feedback comb filter with a one-pole lowpass in the
// feedback path for high-frequency damping.
type combFilter struct {
	buffer      []float32
	idx         int
	feedback    float32
	damp        float32
	filterStore float32
}

func newCombFilter(delaySamples int) *combFilter {
	if delaySamples < 1 {
		delaySamples = 1
	}
	return &combFilter{buffer: make([]float32, delaySamples)}
}

func (c *combFilter) process(input float32) float32 {
	output := c.buffer[c.idx]
	c.filterStore = output*(1.0-c.damp) + c.filterStore*c.damp
	c.buffer[c.idx] = input + c.feedback*c.filterStore
	c.idx++
	if c.idx >= len(c.buffer) {
		c.idx = 0
	}
	return output
}

func (c *combFilter) reset() {
	for i := range c.buffer {
		c.buffer[i] = 0
	}
	c.idx, c.filterStore = 0, 0
}

// allPassFilter is a fixed-feedback all-pass diffuser.
type allPassFilter struct {
	buffer   []float32
	idx      int
	feedback float32
}

func newAllPassFilter(delaySamples int) *allPassFilter {
	if delaySamples < 1 {
		delaySamples = 1
	}
	return &allPassFilter{buffer: make([]float32, delaySamples), feedback: 0.5}
}

func (a *allPassFilter) process(input float32) float32 {
	bufOut := a.buffer[a.idx]
	output := -input + bufOut
	a.buffer[a.idx] = input + a.feedback*bufOut
	a.idx++
	if a.idx >= len(a.buffer) {
		a.idx = 0
	}
	return output
}

func (a *allPassFilter) reset() {
	for i := range a.buffer {
		a.buffer[i] = 0
	}
	a.idx = 0
}

// combTuningsMs and allpassTuningsMs are the delay times, in
// milliseconds, of the four parallel combs and two series all-passes.
var (
	combTuningsMs    = [4]float64{29.7, 37.1, 41.1, 43.7}
	allpassTuningsMs = [2]float64{5.0, 1.7}
)

// Schroeder is a classic four-comb, two-allpass reverb.
type Schroeder struct {
	combs     [4]*combFilter
	allpasses [2]*allPassFilter

	damping  float64 // 0..1
	wetLevel float64 // 0..1
	dryLevel float64 // 0..1
}

// NewSchroeder creates a Schroeder reverb tuned for the given sample
// rate.
func NewSchroeder(sampleRate float64) *Schroeder {
	s := &Schroeder{
		damping:  0.5,
		wetLevel: 0.3,
		dryLevel: 0.7,
	}
	for i := 0; i < 4; i++ {
		s.combs[i] = newCombFilter(int(combTuningsMs[i] * sampleRate / 1000.0))
	}
	for i := 0; i < 2; i++ {
		s.allpasses[i] = newAllPassFilter(int(allpassTuningsMs[i] * sampleRate / 1000.0))
	}
	s.applyDamping()
	return s
}

// SetDamping sets the damping in [0,1]; comb feedback is derived as
// 0.7*(1-damping), so more damping means faster decay.
func (s *Schroeder) SetDamping(damping float64) {
	s.damping = math.Max(0.0, math.Min(1.0, damping))
	s.applyDamping()
}

// SetWetLevel sets the wet signal level in [0,1].
func (s *Schroeder) SetWetLevel(level float64) {
	s.wetLevel = math.Max(0.0, math.Min(1.0, level))
}

// SetDryLevel sets the dry signal level in [0,1].
func (s *Schroeder) SetDryLevel(level float64) {
	s.dryLevel = math.Max(0.0, math.Min(1.0, level))
}

func (s *Schroeder) applyDamping() {
	feedback := float32(0.7 * (1.0 - s.damping))
	for _, c := range s.combs {
		c.feedback = feedback
		c.damp = float32(s.damping)
	}
}

// Process runs one mono sample through the four parallel combs, then
// the two series all-passes, and mixes independently-scaled wet and dry
// signals.
func (s *Schroeder) Process(input float32) float32 {
	var wet float32
	for _, c := range s.combs {
		wet += c.process(input)
	}
	wet *= 0.25

	for _, a := range s.allpasses {
		wet = a.process(wet)
	}

	return input*float32(s.dryLevel) + wet*float32(s.wetLevel)
}

// Reset clears all internal filter state.
func (s *Schroeder) Reset() {
	for _, c := range s.combs {
		c.reset()
	}
	for _, a := range s.allpasses {
		a.reset()
	}
}
