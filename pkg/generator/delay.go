package generator

import (
	"github.com/kbolino/gosynth/pkg/dsp/delay"
	"github.com/kbolino/gosynth/pkg/param"
)

// Delay wraps a child generator with an integer-tap feedback delay: a
// circular buffer sized for 2 seconds, with `Delay Samples` an integer
// offset.
type Delay struct {
	Base
	d *delay.Delay
}

// NewDelay wraps child with a Delay at the given sample rate.
func NewDelay(child Generator, sampleRate float64) *Delay {
	f := &Delay{Base: NewBase(), d: delay.NewDelay(2.0, sampleRate)}
	f.AddChild(child)

	maxSamples := float32(2.0 * sampleRate)
	samplesParam := param.New("Delay Samples", 0, maxSamples, 1, float32(0.25*sampleRate), "")
	samplesParam.OnChange(func(v float32) { f.d.SetDelaySamples(int(v)) })
	feedbackParam := param.New("Feedback", 0, 1, 0.01, 0.3, "")
	feedbackParam.OnChange(func(v float32) { f.d.SetFeedback(v) })
	mixParam := param.New("Mix", 0, 1, 0.01, 0.3, "")
	mixParam.OnChange(func(v float32) { f.d.SetMix(v) })

	f.AddParameter(samplesParam)
	f.AddParameter(feedbackParam)
	f.AddParameter(mixParam)
	return f
}

// GenerateSample pulls the child once and runs it through the delay.
func (f *Delay) GenerateSample(sampleRate float64) float32 {
	in := f.Children()[0].GenerateSample(sampleRate)
	return f.d.Process(in)
}

// InterpolatedDelay wraps a child generator with a fractional-position
// delay line, so `Delay Samples` can be modulated smoothly.
type InterpolatedDelay struct {
	Base
	d *delay.InterpolatedDelay
}

// NewInterpolatedDelay wraps child with an InterpolatedDelay at the
// given sample rate.
func NewInterpolatedDelay(child Generator, sampleRate float64) *InterpolatedDelay {
	f := &InterpolatedDelay{Base: NewBase(), d: delay.NewInterpolatedDelay(2.0, sampleRate)}
	f.AddChild(child)

	maxSamples := float32(2.0 * sampleRate)
	samplesParam := param.New("Delay Samples", 0, maxSamples, 0.01, float32(0.25*sampleRate), "")
	samplesParam.OnChange(func(v float32) { f.d.SetDelaySamples(float64(v)) })
	feedbackParam := param.New("Feedback", 0, 1, 0.01, 0.3, "")
	feedbackParam.OnChange(func(v float32) { f.d.SetFeedback(v) })
	mixParam := param.New("Mix", 0, 1, 0.01, 0.3, "")
	mixParam.OnChange(func(v float32) { f.d.SetMix(v) })

	f.AddParameter(samplesParam)
	f.AddParameter(feedbackParam)
	f.AddParameter(mixParam)
	return f
}

// SetDelaySamples sets the fractional delay directly, bypassing the
// Delay Samples parameter, for host code that sweeps the tap itself
// (from an LFO, for instance). Chorus does not call it; it drives its
// own shared delay line.
func (f *InterpolatedDelay) SetDelaySamples(samples float64) {
	f.d.SetDelaySamples(samples)
}

// GenerateSample pulls the child once and runs it through the delay.
func (f *InterpolatedDelay) GenerateSample(sampleRate float64) float32 {
	in := f.Children()[0].GenerateSample(sampleRate)
	return f.d.Process(in)
}
