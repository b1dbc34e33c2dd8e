package generator

import (
	"github.com/kbolino/gosynth/pkg/dsp/modulation"
	"github.com/kbolino/gosynth/pkg/param"
)

// Chorus wraps a child generator with an interpolated chorus effect.
// All voices read a single shared delay line, so the child is pulled
// exactly once per output sample regardless of voice count.
type Chorus struct {
	Base
	chorus *modulation.Chorus
}

// NewChorus wraps child with a Chorus of the default voice count (3)
// at the given sample rate.
func NewChorus(child Generator, sampleRate float64) *Chorus {
	f := &Chorus{Base: NewBase(), chorus: modulation.NewChorus(sampleRate, 3)}
	f.AddChild(child)

	rateParam := param.New("Rate", 0.01, 2, 0.01, 0.5, "Hz")
	rateParam.OnChange(func(v float32) { f.chorus.SetRate(float64(v)) })
	depthParam := param.New("Depth", 0, 20, 0.1, 3.0, "ms")
	depthParam.OnChange(func(v float32) { f.chorus.SetDepth(float64(v)) })
	mixParam := param.New("Mix", 0, 1, 0.01, 0.5, "")
	mixParam.OnChange(func(v float32) { f.chorus.SetMix(v) })

	f.AddParameter(rateParam)
	f.AddParameter(depthParam)
	f.AddParameter(mixParam)
	return f
}

// GenerateSample pulls the child once and runs it through the chorus.
func (f *Chorus) GenerateSample(sampleRate float64) float32 {
	in := f.Children()[0].GenerateSample(sampleRate)
	return f.chorus.Process(in)
}

// Tremolo wraps a child generator with a zero-crossing-gated amplitude
// modulation.
type Tremolo struct {
	Base
	tremolo *modulation.Tremolo
}

// NewTremolo wraps child with a Tremolo at the given sample rate.
func NewTremolo(child Generator, sampleRate float64) *Tremolo {
	f := &Tremolo{Base: NewBase(), tremolo: modulation.NewTremolo(sampleRate)}
	f.AddChild(child)

	rateParam := param.New("Rate", 0.1, 20, 0.01, 5.0, "Hz")
	rateParam.OnChange(func(v float32) { f.tremolo.SetRate(float64(v)) })
	depthParam := param.New("Depth", 0, 1, 0.01, 0.5, "")
	depthParam.OnChange(func(v float32) { f.tremolo.SetDepth(float64(v)) })

	f.AddParameter(rateParam)
	f.AddParameter(depthParam)
	return f
}

// GenerateSample pulls the child once and applies the tremolo.
func (f *Tremolo) GenerateSample(sampleRate float64) float32 {
	in := f.Children()[0].GenerateSample(sampleRate)
	return f.tremolo.Process(in)
}
