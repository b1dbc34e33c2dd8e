package generator

import (
	"github.com/kbolino/gosynth/pkg/dsp/envelope"
	"github.com/kbolino/gosynth/pkg/param"
)

// Envelope wraps a single child generator with a four-stage amplitude
// envelope. When idle, the child is never pulled and the output is
// exactly 0; otherwise the output is the child's sample scaled by the
// current amplitude and the velocity gain captured on the triggering
// note-on.
type Envelope struct {
	Base

	adsr *envelope.ADSR
}

// NewEnvelope wraps child with a new ADSR envelope using default
// timings (10ms attack, 100ms decay, 0.7 sustain, 300ms release).
func NewEnvelope(child Generator) *Envelope {
	e := &Envelope{
		Base: NewBase(),
		adsr: envelope.New(),
	}
	e.AddChild(child)

	attack := param.New("Attack", 0.01, 10, 0.01, 0.01, "s")
	attack.OnChange(func(v float32) { e.adsr.SetAttack(float64(v)) })
	decay := param.New("Decay", 0.01, 10, 0.01, 0.1, "s")
	decay.OnChange(func(v float32) { e.adsr.SetDecay(float64(v)) })
	sustain := param.New("Sustain", 0, 1, 0.01, 0.7, "")
	sustain.OnChange(func(v float32) { e.adsr.SetSustain(float64(v)) })
	release := param.New("Release", 0.01, 10, 0.01, 0.3, "s")
	release.OnChange(func(v float32) { e.adsr.SetRelease(float64(v)) })

	e.AddParameter(attack)
	e.AddParameter(decay)
	e.AddParameter(sustain)
	e.AddParameter(release)
	return e
}

// NoteOn triggers the envelope. It does not forward to the child;
// per-note child state (if any) is expected to be static once
// constructed.
func (e *Envelope) NoteOn(velocity float32) {
	e.adsr.Trigger(float64(velocity))
}

// NoteOff releases the envelope from any non-idle stage.
func (e *Envelope) NoteOff() {
	e.adsr.Release()
}

// IsActive reports whether the envelope is in a non-idle stage. The
// voice pool does not consult it; it pulls every slot each sample.
func (e *Envelope) IsActive() bool {
	return e.adsr.IsActive()
}

// GenerateSample returns 0 without pulling the child while idle,
// otherwise the child's sample scaled by the current amplitude and
// velocity gain.
func (e *Envelope) GenerateSample(sampleRate float64) float32 {
	if !e.adsr.IsActive() {
		return 0
	}
	a := e.adsr.Next(sampleRate)
	children := e.Children()
	sample := children[0].GenerateSample(sampleRate)
	return sample * float32(a) * float32(e.adsr.VelocityGain())
}
