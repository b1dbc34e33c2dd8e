package main

import (
	"github.com/kbolino/gosynth/pkg/generator"
	"github.com/kbolino/gosynth/pkg/voicepool"
)

// registerPresets wires a handful of illustrative voice factories, each
// producing a complete per-note graph, into factories. Every factory
// wraps its synthesis graph in an Envelope so note_on/note_off drive an
// amplitude envelope. All but "Sine Oscillator" also add an effect (a
// lowpass filter, a reverb, or a chorus into a reverb), so the pool's
// grouped parameters include those controls; no preset uses a delay.
func registerPresets(factories *voicepool.FactoryRegistry, sampleRate float64) {
	factories.Add("Sine Oscillator", func(freq float64, volume float32) generator.Generator {
		osc := generator.NewOscillator(freq, volume)
		return generator.NewEnvelope(osc)
	})

	factories.Add("Harmonic Tone", func(freq float64, volume float32) generator.Generator {
		tone := generator.NewHarmonicTone(freq, volume)
		env := generator.NewEnvelope(tone)
		return generator.NewLowPassFilter(env, sampleRate, 8000)
	})

	factories.Add("FM Bell", func(freq float64, volume float32) generator.Generator {
		fm := generator.NewFMVoice(freq, volume)
		env := generator.NewEnvelope(fm)
		return generator.NewReverb(env, sampleRate)
	})

	factories.Add("Pad", func(freq float64, volume float32) generator.Generator {
		tone := generator.NewTone(freq, volume)
		env := generator.NewEnvelope(tone)
		chorus := generator.NewChorus(env, sampleRate)
		return generator.NewReverb(chorus, sampleRate)
	})
}
