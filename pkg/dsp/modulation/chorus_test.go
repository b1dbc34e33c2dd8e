package modulation

import (
	"math"
	"testing"
)

const sampleRate = 48000.0

func TestChorusDryOutputWhenMixZero(t *testing.T) {
	c := NewChorus(sampleRate, 3)
	c.SetMix(0)
	for i := 0; i < 100; i++ {
		x := float32(i) * 0.001
		if y := c.Process(x); math.Abs(float64(y-x)) > 1e-6 {
			t.Fatalf("Process(%v) with mix=0 = %v, want %v", x, y, x)
		}
	}
}

func TestChorusStaysBounded(t *testing.T) {
	c := NewChorus(sampleRate, 3)
	c.SetMix(1.0)
	c.SetDepth(5.0)
	c.SetRate(1.0)
	for i := 0; i < int(sampleRate); i++ {
		phase := 2.0 * math.Pi * 220.0 * float64(i) / sampleRate
		x := float32(math.Sin(phase))
		y := c.Process(x)
		if math.Abs(float64(y)) > 1.5 {
			t.Fatalf("chorus output %v out of expected bounds at sample %d", y, i)
		}
	}
}

func TestChorusDefaultVoicesIsThree(t *testing.T) {
	c := NewChorus(sampleRate, 0)
	if c.voices != 3 {
		t.Errorf("voices with 0 requested = %d, want 3", c.voices)
	}
}
