package generator

import (
	"github.com/kbolino/gosynth/pkg/dsp/oscillator"
	"github.com/kbolino/gosynth/pkg/param"
)

// FMVoice is a two-operator FM voice with self-modulation: the
// modulator frequency-modulates itself, and the modulator output
// frequency-modulates the carrier.
type FMVoice struct {
	Base

	carrier   *oscillator.Oscillator
	modulator *oscillator.Oscillator

	carrierBase   float64
	modulatorBase float64

	modIndex  float64
	selfIndex float64
}

// NewFMVoice creates an FMVoice at the given carrier frequency and
// volume, with a default 1:1 modulator ratio.
func NewFMVoice(frequency float64, volume float32) *FMVoice {
	f := &FMVoice{
		Base:          NewBase(),
		carrier:       oscillator.New(),
		modulator:     oscillator.New(),
		carrierBase:   frequency,
		modulatorBase: frequency,
	}
	f.carrier.SetFrequency(frequency)
	f.modulator.SetFrequency(frequency)
	_ = volume // FMVoice output is unit amplitude; volume is applied by the caller/factory wrapper if desired.

	ratioParam := param.New("Modulator Frequency Ratio", 0.1, 10, 0.01, 1.0, "")
	ratioParam.OnChange(func(v float32) {
		f.modulatorBase = f.carrierBase * float64(v)
	})
	modIndexParam := param.New("Modulation Index", 0, 10, 0.01, 0, "")
	modIndexParam.OnChange(func(v float32) {
		f.modIndex = float64(v)
	})
	selfIndexParam := param.New("Self Modulation Index", 0, 10, 0.01, 0, "")
	selfIndexParam.OnChange(func(v float32) {
		f.selfIndex = float64(v)
	})
	f.AddParameter(ratioParam)
	f.AddParameter(modIndexParam)
	f.AddParameter(selfIndexParam)
	return f
}

// GenerateSample implements the four-step FM update: pull the
// modulator, apply self-modulation to its own next-sample frequency,
// apply modulation to the carrier's frequency for this sample, then
// pull the carrier.
func (f *FMVoice) GenerateSample(sampleRate float64) float32 {
	m := f.modulator.Next(sampleRate, oscillator.Sine)

	f.modulator.SetFrequency(f.modulatorBase * (1.0 + f.selfIndex*float64(m)))
	f.carrier.SetFrequency(f.carrierBase * (1.0 + f.modIndex*float64(m)))

	return f.carrier.Next(sampleRate, oscillator.Sine)
}
