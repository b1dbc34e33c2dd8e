package oscillator

import (
	"math"
	"testing"
)

const sampleRate = 48000.0

func TestPhaseIsPeriodic(t *testing.T) {
	o := New()
	o.SetFrequency(100.0)
	period := int(sampleRate / 100.0)

	for i := 0; i < period; i++ {
		o.Next(sampleRate, Sine)
	}
	// Phase lives in [0, 1), so a value just under 1 is the same point on
	// the cycle as 0; compare by distance around the cycle.
	p := o.Phase()
	if d := math.Min(p, 1-p); d > 1e-9 {
		t.Errorf("phase after one period = %v, want ~0 (mod 1)", p)
	}
}

func TestSinePeakAmplitude(t *testing.T) {
	o := New()
	o.SetFrequency(440.0)
	var max float32
	for i := 0; i < int(sampleRate); i++ {
		s := o.Next(sampleRate, Sine)
		if s > max {
			max = s
		}
	}
	if max < 0.99 || max > 1.0 {
		t.Errorf("sine peak = %v, want ~1.0", max)
	}
}

func TestSquareIsBipolarUnit(t *testing.T) {
	o := New()
	o.SetFrequency(440.0)
	for i := 0; i < 1000; i++ {
		s := o.Next(sampleRate, Square)
		if s != 1.0 && s != -1.0 {
			t.Fatalf("square sample %v not in {-1, 1}", s)
		}
	}
}

func TestTriangleStaysInRange(t *testing.T) {
	o := New()
	o.SetFrequency(220.0)
	for i := 0; i < 1000; i++ {
		s := o.Next(sampleRate, Triangle)
		if s < -1.0001 || s > 1.0001 {
			t.Fatalf("triangle sample %v out of [-1, 1]", s)
		}
	}
}

func TestSawtoothStaysInRange(t *testing.T) {
	o := New()
	o.SetFrequency(220.0)
	for i := 0; i < 1000; i++ {
		s := o.Next(sampleRate, Sawtooth)
		if s < -1.0001 || s > 1.0001 {
			t.Fatalf("sawtooth sample %v out of [-1, 1]", s)
		}
	}
}

func TestResetPhase(t *testing.T) {
	o := New()
	o.SetFrequency(1000.0)
	for i := 0; i < 100; i++ {
		o.Next(sampleRate, Sine)
	}
	o.ResetPhase()
	if o.Phase() != 0 {
		t.Errorf("phase after reset = %v, want 0", o.Phase())
	}
}

func TestSetPhaseWraps(t *testing.T) {
	o := New()
	o.SetPhase(1.25)
	if math.Abs(o.Phase()-0.25) > 1e-9 {
		t.Errorf("phase after SetPhase(1.25) = %v, want 0.25", o.Phase())
	}
}
