package generator

import (
	"github.com/kbolino/gosynth/pkg/dsp/filter"
	"github.com/kbolino/gosynth/pkg/param"
)

// LowPassFilter wraps a child generator with a fixed-Q Butterworth
// lowpass, recomputing coefficients whenever Cutoff is written.
type LowPassFilter struct {
	Base
	biquad *filter.Biquad
}

// NewLowPassFilter wraps child with a lowpass filter at the given
// sample rate and initial cutoff.
func NewLowPassFilter(child Generator, sampleRate, cutoff float64) *LowPassFilter {
	f := &LowPassFilter{Base: NewBase(), biquad: filter.NewBiquad()}
	f.AddChild(child)
	f.biquad.SetLowpass(sampleRate, cutoff)

	cutoffParam := param.New("Cutoff", 20, 20000, 1, float32(cutoff), "Hz")
	cutoffParam.OnChange(func(v float32) { f.biquad.SetLowpass(sampleRate, float64(v)) })
	f.AddParameter(cutoffParam)
	return f
}

// GenerateSample pulls the child once and filters its output.
func (f *LowPassFilter) GenerateSample(sampleRate float64) float32 {
	in := f.Children()[0].GenerateSample(sampleRate)
	return f.biquad.Process(in)
}

// HighPassFilter wraps a child generator with a fixed-Q Butterworth
// highpass, recomputing coefficients whenever Cutoff is written.
type HighPassFilter struct {
	Base
	biquad *filter.Biquad
}

// NewHighPassFilter wraps child with a highpass filter at the given
// sample rate and initial cutoff.
func NewHighPassFilter(child Generator, sampleRate, cutoff float64) *HighPassFilter {
	f := &HighPassFilter{Base: NewBase(), biquad: filter.NewBiquad()}
	f.AddChild(child)
	f.biquad.SetHighpass(sampleRate, cutoff)

	cutoffParam := param.New("Cutoff", 20, 20000, 1, float32(cutoff), "Hz")
	cutoffParam.OnChange(func(v float32) { f.biquad.SetHighpass(sampleRate, float64(v)) })
	f.AddParameter(cutoffParam)
	return f
}

// GenerateSample pulls the child once and filters its output.
func (f *HighPassFilter) GenerateSample(sampleRate float64) float32 {
	in := f.Children()[0].GenerateSample(sampleRate)
	return f.biquad.Process(in)
}
