package generator

import (
	"math"

	"github.com/kbolino/gosynth/pkg/dsp/oscillator"
	"github.com/kbolino/gosynth/pkg/param"
)

// Tone is a detuned-oscillator stack: N oscillators spread symmetrically
// around a base frequency, averaged and scaled by volume. Changing the
// oscillator count or detune factor rebuilds the bank; the new
// oscillators start at phase 0, so a click during editing is
// acceptable; these are not audio-rate parameters.
type Tone struct {
	Base

	baseFreq float64
	volume   float32

	oscCount int
	detune   float64
	oscs     []*oscillator.Oscillator

	oscCountParam *param.Parameter
	detuneParam   *param.Parameter
}

// NewTone creates a Tone at the given frequency and volume with the
// default oscillator count of 3 and zero detune.
func NewTone(frequency float64, volume float32) *Tone {
	t := &Tone{
		Base:     NewBase(),
		baseFreq: frequency,
		volume:   volume,
		oscCount: 3,
	}
	t.rebuild()

	t.oscCountParam = param.New("Oscillators", 1, 10, 1, float32(t.oscCount), "")
	t.oscCountParam.OnChange(func(v float32) {
		t.oscCount = int(v)
		t.rebuild()
	})
	t.detuneParam = param.New("Detune Factor", 0, 0.1, 0.0001, float32(t.detune), "")
	t.detuneParam.OnChange(func(v float32) {
		t.detune = float64(v)
		t.rebuild()
	})
	t.AddParameter(t.oscCountParam)
	t.AddParameter(t.detuneParam)
	return t
}

// SetDetuneFactor sets the detune factor directly, bypassing the
// Detune Factor parameter's own bounds check. Used by HarmonicTone to
// fan a single Detune parameter out to its harmonic partials without
// surfacing each partial's own parameters.
func (t *Tone) SetDetuneFactor(detune float64) {
	t.detune = detune
	t.rebuild()
}

func (t *Tone) rebuild() {
	n := t.oscCount
	if n < 1 {
		n = 1
	}
	oscs := make([]*oscillator.Oscillator, n)
	for i := 0; i < n; i++ {
		osc := oscillator.New()
		freq := t.baseFreq * (1.0 + (float64(i)-float64(n-1)/2.0)*t.detune)
		osc.SetFrequency(freq)
		oscs[i] = osc
	}
	t.oscs = oscs
}

// GenerateSample returns the mean of all oscillators in the bank,
// scaled by volume.
func (t *Tone) GenerateSample(sampleRate float64) float32 {
	var sum float32
	for _, osc := range t.oscs {
		sum += osc.Next(sampleRate, oscillator.Sine)
	}
	return sum / float32(len(t.oscs)) * t.volume
}

// harmonicRatios and harmonicWeights are the fixed additional partials
// stacked on top of a HarmonicTone's fundamental.
var (
	harmonicRatios  = []float64{1.5, 2.0, 2.5, 3.0, 3.5}
	harmonicWeights = []float32{0.5, 0.4, 0.3, 0.2, 0.1}
)

// HarmonicTone is a fundamental Tone plus five fixed-ratio harmonic
// Tones, soft-summed with tanh. A single Detune parameter fans out to
// the harmonic partials only, not the fundamental, matching the
// source's observable behavior.
type HarmonicTone struct {
	Base

	fundamental *Tone
	harmonics   []*Tone
	weights     []float32
}

// NewHarmonicTone creates a HarmonicTone at the given fundamental
// frequency and volume.
func NewHarmonicTone(frequency float64, volume float32) *HarmonicTone {
	h := &HarmonicTone{
		Base:        NewBase(),
		fundamental: NewTone(frequency, volume),
	}
	h.weights = append([]float32{1.0}, harmonicWeights...)
	for _, ratio := range harmonicRatios {
		h.harmonics = append(h.harmonics, NewTone(frequency*ratio, volume))
	}

	detuneParam := param.New("Detune", 0, 0.1, 0.0001, 0, "")
	detuneParam.OnChange(func(v float32) {
		for _, tone := range h.harmonics {
			tone.SetDetuneFactor(float64(v))
		}
	})
	h.AddParameter(detuneParam)
	return h
}

// GenerateSample sums the fundamental and harmonic partials, each
// pulled exactly once, and returns tanh(sum / sqrt(K)).
func (h *HarmonicTone) GenerateSample(sampleRate float64) float32 {
	sum := h.fundamental.GenerateSample(sampleRate) * h.weights[0]
	for i, tone := range h.harmonics {
		sum += tone.GenerateSample(sampleRate) * h.weights[i+1]
	}
	k := float64(len(h.harmonics) + 1)
	return float32(math.Tanh(float64(sum) / math.Sqrt(k)))
}
