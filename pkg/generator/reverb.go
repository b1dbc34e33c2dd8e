package generator

import (
	"github.com/kbolino/gosynth/pkg/dsp/reverb"
	"github.com/kbolino/gosynth/pkg/param"
)

// Reverb wraps a child generator with a Schroeder-style reverb.
type Reverb struct {
	Base
	reverb *reverb.Schroeder
}

// NewReverb wraps child with a Reverb at the given sample rate.
func NewReverb(child Generator, sampleRate float64) *Reverb {
	f := &Reverb{Base: NewBase(), reverb: reverb.NewSchroeder(sampleRate)}
	f.AddChild(child)

	dampingParam := param.New("Damping", 0, 1, 0.01, 0.5, "")
	dampingParam.OnChange(func(v float32) { f.reverb.SetDamping(float64(v)) })
	wetParam := param.New("Wet Level", 0, 1, 0.01, 0.3, "")
	wetParam.OnChange(func(v float32) { f.reverb.SetWetLevel(float64(v)) })
	dryParam := param.New("Dry Level", 0, 1, 0.01, 0.7, "")
	dryParam.OnChange(func(v float32) { f.reverb.SetDryLevel(float64(v)) })

	f.AddParameter(dampingParam)
	f.AddParameter(wetParam)
	f.AddParameter(dryParam)
	return f
}

// GenerateSample pulls the child once and runs it through the reverb.
func (f *Reverb) GenerateSample(sampleRate float64) float32 {
	in := f.Children()[0].GenerateSample(sampleRate)
	return f.reverb.Process(in)
}
