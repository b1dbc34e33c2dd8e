package generator

import (
	"fmt"

	"github.com/kbolino/gosynth/pkg/dsp/mix"
	"github.com/kbolino/gosynth/pkg/param"
)

// Mixer sums N sources, each scaled by its own volume parameter. There
// is no normalization: the explicit per-channel weights are the user's
// contract. Each channel's parameter is named "Channel i Volume" plus
// an optional suffix, so a preset that embeds several mixers (or a
// mixer alongside a harmonic tone stack) can disambiguate them in the
// flattened parameter view.
type Mixer struct {
	Base

	volumes []*param.Parameter
	gains   []float32
	samples []float32
}

// NewMixer creates a Mixer over the given sources, with each channel's
// volume defaulting to 0.3 and a name suffix (commonly empty) appended
// to every channel parameter name.
func NewMixer(sources []Generator, suffix string) *Mixer {
	m := &Mixer{Base: NewBase()}
	m.gains = make([]float32, len(sources))
	m.samples = make([]float32, len(sources))
	m.volumes = make([]*param.Parameter, len(sources))

	for i, src := range sources {
		m.AddChild(src)
		idx := i
		name := fmt.Sprintf("Channel %d Volume%s", i, suffix)
		vol := param.New(name, 0, 2, 0.01, 0.3, "")
		vol.OnChange(func(v float32) { m.gains[idx] = v })
		m.gains[i] = vol.Value()
		m.volumes[i] = vol
		m.AddParameter(vol)
	}
	return m
}

// GenerateSample pulls every source exactly once and returns the
// weighted sum.
func (m *Mixer) GenerateSample(sampleRate float64) float32 {
	children := m.Children()
	for i, c := range children {
		m.samples[i] = c.GenerateSample(sampleRate)
	}
	return mix.WeightedSum(m.samples, m.gains)
}
