package reverb

import (
	"math"
	"testing"
)

const sampleRate = 48000.0

func TestDryOnlyWhenWetLevelZero(t *testing.T) {
	s := NewSchroeder(sampleRate)
	s.SetDryLevel(1.0)
	s.SetWetLevel(0.0)
	for i := 0; i < 100; i++ {
		x := float32(i) * 0.01
		if y := s.Process(x); math.Abs(float64(y-x)) > 1e-6 {
			t.Fatalf("Process(%v) with wetLevel=0 = %v, want %v", x, y, x)
		}
	}
}

func TestImpulseResponseStaysBounded(t *testing.T) {
	s := NewSchroeder(sampleRate)
	s.SetWetLevel(1.0)
	s.SetDryLevel(0.0)
	s.SetDamping(0.9)

	s.Process(1.0)
	var maxAbs float32
	for i := 0; i < 20000; i++ {
		y := s.Process(0.0)
		if a := float32(math.Abs(float64(y))); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs > 2.0 {
		t.Errorf("reverb tail grew unbounded, max abs = %v", maxAbs)
	}
}

func TestResetClearsCombsAndAllpasses(t *testing.T) {
	s := NewSchroeder(sampleRate)
	s.SetWetLevel(1.0)
	s.SetDryLevel(0.0)
	s.Process(1.0)
	s.Reset()
	if y := s.Process(0.0); y != 0 {
		t.Errorf("Process(0) after Reset = %v, want 0", y)
	}
}

func TestDampingClamped(t *testing.T) {
	s := NewSchroeder(sampleRate)
	s.SetDamping(-1.0)
	if s.damping != 0 {
		t.Errorf("damping = %v, want clamped to 0", s.damping)
	}
	s.SetDamping(5.0)
	if s.damping != 1.0 {
		t.Errorf("damping = %v, want clamped to 1", s.damping)
	}
}
