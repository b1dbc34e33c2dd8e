package voicepool

import (
	"math"
	"testing"

	"github.com/kbolino/gosynth/pkg/generator"
)

func sineEnvFactory(freq float64, volume float32) generator.Generator {
	osc := generator.NewOscillator(freq, volume)
	return generator.NewEnvelope(osc)
}

func TestBuildFillsAll128Slots(t *testing.T) {
	p := NewPool()
	p.Build(sineEnvFactory)
	for n := 0; n < numNotes; n++ {
		if err := p.NoteOn(n, 0, 1.0); err != nil {
			t.Fatalf("NoteOn(%d) error = %v", n, err)
		}
	}
}

func TestNoteOnOffOutOfRange(t *testing.T) {
	p := NewPool()
	p.Build(sineEnvFactory)
	if err := p.NoteOn(-1, 0, 1.0); err == nil {
		t.Error("NoteOn(-1) should return ErrInvalidNote")
	}
	if err := p.NoteOn(128, 0, 1.0); err == nil {
		t.Error("NoteOn(128) should return ErrInvalidNote")
	}
	if err := p.NoteOff(200, 0); err == nil {
		t.Error("NoteOff(200) should return ErrInvalidNote")
	}
}

func TestGroupedParametersFanOutToAllSlots(t *testing.T) {
	p := NewPool()
	p.Build(sineEnvFactory)

	if err := p.Write("Sustain", 0.42); err != nil {
		t.Fatalf("Write(Sustain, 0.42) error = %v", err)
	}

	// Every per-note Envelope's own Sustain parameter should now read
	// 0.42 too, since the grouped write fans out to all 128.
	p.mu.Lock()
	for n := 0; n < numNotes; n++ {
		for _, prm := range p.slots[n].Parameters() {
			if prm.Name == "Sustain" && prm.Value() != 0.42 {
				t.Fatalf("slot %d Sustain = %v, want 0.42", n, prm.Value())
			}
		}
	}
	p.mu.Unlock()
}

func TestWriteUnknownParameterName(t *testing.T) {
	p := NewPool()
	p.Build(sineEnvFactory)
	if err := p.Write("Nonexistent", 1.0); err == nil {
		t.Error("Write(Nonexistent) should return an error")
	}
}

func TestSilentPoolProducesZero(t *testing.T) {
	p := NewPool()
	p.Build(sineEnvFactory)
	// No notes triggered: every envelope is idle, so the sum should be
	// exactly 0 regardless of the gain-smoothing state.
	for i := 0; i < 100; i++ {
		if s := p.GenerateSample(48000.0); s != 0 {
			t.Fatalf("GenerateSample with no active notes = %v, want 0", s)
		}
	}
}

func TestActiveNoteProducesNonZeroOutput(t *testing.T) {
	p := NewPool()
	p.Build(sineEnvFactory)
	if err := p.NoteOn(60, 0, 1.0); err != nil {
		t.Fatalf("NoteOn(60) error = %v", err)
	}

	var maxAbs float64
	for i := 0; i < 2000; i++ {
		s := p.GenerateSample(48000.0)
		if a := math.Abs(float64(s)); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		t.Error("active note produced silence")
	}
}

// TestChordRMSMatchesSingleVoiceAfterSmoothing checks that a three-note
// chord, once the gain smoother has settled, has RMS comparable to a
// single voice: the 1/sqrt(K) normalization is meant to keep loudness
// roughly constant regardless of polyphony.
func TestChordRMSMatchesSingleVoiceAfterSmoothing(t *testing.T) {
	const sr = 44100.0
	rms := func(build func(p *Pool)) float64 {
		p := NewPool()
		p.Build(sineEnvFactory)
		build(p)
		// Let the 10ms smoothing horizon settle before measuring.
		settle := int(0.05 * sr)
		for i := 0; i < settle; i++ {
			p.GenerateSample(sr)
		}
		var sumSq float64
		window := int(0.2 * sr)
		for i := 0; i < window; i++ {
			s := float64(p.GenerateSample(sr))
			sumSq += s * s
		}
		return math.Sqrt(sumSq / float64(window))
	}

	single := rms(func(p *Pool) { p.NoteOn(60, 0, 1.0) })
	chord := rms(func(p *Pool) {
		p.NoteOn(60, 0, 1.0)
		p.NoteOn(64, 0, 1.0)
		p.NoteOn(67, 0, 1.0)
	})

	if single == 0 {
		t.Fatal("single-voice RMS is exactly 0, can't compare")
	}
	ratio := chord / single
	if ratio < 0.8 || ratio > 1.2 {
		t.Errorf("chord/single RMS ratio = %v, want within +/-20%% of 1.0", ratio)
	}
}

func TestBuildRepublishesGroupedParametersOnRebuild(t *testing.T) {
	p := NewPool()
	p.Build(sineEnvFactory)
	before := len(p.GroupedParameters())
	p.Build(sineEnvFactory)
	after := len(p.GroupedParameters())
	if before != after {
		t.Errorf("grouped parameter count changed across rebuild: %d -> %d", before, after)
	}
}
