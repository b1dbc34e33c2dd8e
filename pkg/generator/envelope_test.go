package generator

import "testing"

func TestEnvelopeIdleDoesNotPullChild(t *testing.T) {
	child := newStub(1.0)
	env := NewEnvelope(child)

	s := env.GenerateSample(48000.0)
	if s != 0 {
		t.Errorf("idle GenerateSample = %v, want 0", s)
	}
	if child.pullCount != 0 {
		t.Errorf("child pulled %d times while idle, want 0", child.pullCount)
	}
}

func TestEnvelopeNoteOnDoesNotForwardToChild(t *testing.T) {
	child := newStub(1.0)
	env := NewEnvelope(child)
	env.NoteOn(0.9)
	if child.noteOnHits != 0 {
		t.Errorf("child.noteOnHits = %d, want 0 (Envelope must not forward NoteOn)", child.noteOnHits)
	}
}

func TestEnvelopePullsChildExactlyOnceWhenActive(t *testing.T) {
	child := newStub(1.0)
	env := NewEnvelope(child)
	env.NoteOn(1.0)

	for i := 0; i < 100; i++ {
		env.GenerateSample(48000.0)
	}
	if child.pullCount != 100 {
		t.Errorf("child pulled %d times over 100 samples, want 100", child.pullCount)
	}
}

func TestEnvelopeAppliesVelocityGain(t *testing.T) {
	child := newStub(1.0)
	env := NewEnvelope(child)
	// Force attack to complete instantly so the multiplier is exactly the
	// velocity gain on the very next sample.
	for _, p := range env.Parameters() {
		if p.Name == "Attack" {
			_ = p.SetValue(0.01)
		}
	}
	env.NoteOn(0.5)
	s := env.GenerateSample(48000.0)
	if s <= 0 || s > 0.5 {
		t.Errorf("first active sample = %v, want in (0, 0.5]", s)
	}
}

func TestEnvelopeGoesIdleAfterFullRelease(t *testing.T) {
	child := newStub(1.0)
	env := NewEnvelope(child)
	for _, p := range env.Parameters() {
		switch p.Name {
		case "Attack", "Decay", "Release":
			_ = p.SetValue(0.01)
		case "Sustain":
			_ = p.SetValue(0.5)
		}
	}
	env.NoteOn(1.0)
	for i := 0; i < 5000; i++ {
		env.GenerateSample(48000.0)
	}
	env.NoteOff()
	for i := 0; i < 5000; i++ {
		env.GenerateSample(48000.0)
	}
	if env.IsActive() {
		t.Error("envelope should be idle after full release")
	}
	if s := env.GenerateSample(48000.0); s != 0 {
		t.Errorf("GenerateSample after going idle = %v, want 0", s)
	}
}
