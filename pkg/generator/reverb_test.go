package generator

import "testing"

func TestReverbPullsChildOnce(t *testing.T) {
	child := newStub(0.2)
	r := NewReverb(child, 48000.0)
	for i := 0; i < 100; i++ {
		r.GenerateSample(48000.0)
	}
	if child.pullCount != 100 {
		t.Errorf("child pulled %d times, want 100", child.pullCount)
	}
}

func TestReverbDryOnlyIsIdentity(t *testing.T) {
	child := newStub(0.4)
	r := NewReverb(child, 48000.0)
	for _, p := range r.Parameters() {
		switch p.Name {
		case "Dry Level":
			_ = p.SetValue(1.0)
		case "Wet Level":
			_ = p.SetValue(0.0)
		}
	}
	if s := r.GenerateSample(48000.0); s != 0.4 {
		t.Errorf("GenerateSample with dry=1,wet=0 = %v, want 0.4", s)
	}
}
