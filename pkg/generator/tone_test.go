package generator

import (
	"math"
	"testing"

	"github.com/kbolino/gosynth/pkg/dsp/oscillator"
)

func TestToneParametersRegistered(t *testing.T) {
	tone := NewTone(440.0, 1.0)
	names := map[string]bool{}
	for _, p := range tone.Parameters() {
		names[p.Name] = true
	}
	if !names["Oscillators"] || !names["Detune Factor"] {
		t.Errorf("Tone.Parameters() = %v, want Oscillators and Detune Factor", names)
	}
}

func TestToneZeroDetuneAllOscillatorsInPhase(t *testing.T) {
	tone := NewTone(440.0, 1.0)
	// With zero detune every oscillator has the same frequency and starts
	// at phase 0, so the mean should equal a single oscillator's output.
	ref := oscillator.New()
	ref.SetFrequency(440.0)
	for i := 0; i < 100; i++ {
		s := tone.GenerateSample(48000.0)
		want := ref.Next(48000.0, oscillator.Sine)
		if math.Abs(float64(s-want)) > 1e-6 {
			t.Fatalf("GenerateSample = %v at sample %d, want single oscillator's %v", s, i, want)
		}
	}
}

func TestToneSetDetuneFactorBypassesParameterBounds(t *testing.T) {
	tone := NewTone(440.0, 1.0)
	// 0.2 lies above the Detune Factor parameter's 0.1 maximum.
	tone.SetDetuneFactor(0.2)
	if tone.detune != 0.2 {
		t.Errorf("detune after SetDetuneFactor = %v, want 0.2", tone.detune)
	}
}

func TestHarmonicToneExposesOnlyDetuneParameter(t *testing.T) {
	h := NewHarmonicTone(220.0, 1.0)
	params := h.Parameters()
	if len(params) != 1 {
		t.Fatalf("HarmonicTone.Parameters() len = %d, want 1 (only Detune)", len(params))
	}
	if params[0].Name != "Detune" {
		t.Errorf("HarmonicTone.Parameters()[0].Name = %q, want %q", params[0].Name, "Detune")
	}
}

func TestHarmonicToneDetuneFansOutToHarmonicsOnly(t *testing.T) {
	h := NewHarmonicTone(220.0, 1.0)
	if err := h.Parameters()[0].SetValue(0.02); err != nil {
		t.Fatalf("SetValue(0.02) error = %v", err)
	}
	if h.fundamental.detune != 0 {
		t.Errorf("fundamental.detune = %v, want unchanged 0", h.fundamental.detune)
	}
	// Parameter values are float32, so the fanned-out detune is 0.02
	// rounded to float32.
	want := float64(float32(0.02))
	for i, harmonic := range h.harmonics {
		if harmonic.detune != want {
			t.Errorf("harmonics[%d].detune = %v, want %v", i, harmonic.detune, want)
		}
	}
}

func TestHarmonicToneOutputStaysBounded(t *testing.T) {
	h := NewHarmonicTone(220.0, 1.0)
	for i := 0; i < 1000; i++ {
		s := h.GenerateSample(48000.0)
		if s < -1.0001 || s > 1.0001 {
			t.Fatalf("GenerateSample = %v out of [-1, 1] at sample %d", s, i)
		}
	}
}
