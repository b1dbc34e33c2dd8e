// Package envelope provides the amplitude envelope generator used to
// shape synthesis voices.
package envelope

import "math"

// Stage represents the current position in the ADSR state machine.
type Stage int

const (
	// StageIdle means the envelope is silent and not pulling its child.
	StageIdle Stage = iota
	// StageAttack ramps from the retrigger amplitude to 1.
	StageAttack
	// StageDecay ramps from 1 down to the sustain level.
	StageDecay
	// StageSustain holds at the sustain level.
	StageSustain
	// StageRelease ramps from the release-start amplitude down to 0.
	StageRelease
)

// String returns a human-readable stage name.
func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "Idle"
	case StageAttack:
		return "Attack"
	case StageDecay:
		return "Decay"
	case StageSustain:
		return "Sustain"
	case StageRelease:
		return "Release"
	default:
		return "Unknown"
	}
}

// ADSR implements a four-stage amplitude envelope whose stage timing is
// driven by a sample counter rather than wall-clock time, so it tracks
// audio progress even when the render thread falls behind real time.
type ADSR struct {
	attack  float64 // seconds
	decay   float64 // seconds
	sustain float64 // level 0..1
	release float64 // seconds

	stage        Stage
	amplitude    float64
	velocityGain float64
	stageElapsed int64 // samples since the current stage began

	attackStart  float64
	decayStart   float64
	releaseStart float64
}

// New creates an ADSR envelope with the reference default timings.
func New() *ADSR {
	return &ADSR{
		attack:  0.01,
		decay:   0.1,
		sustain: 0.7,
		release: 0.3,
		stage:   StageIdle,
	}
}

// SetAttack sets the attack time in seconds. Live-editable; takes effect
// on the next sample without resetting the current stage.
func (e *ADSR) SetAttack(seconds float64) {
	e.attack = math.Max(0.0, seconds)
}

// SetDecay sets the decay time in seconds.
func (e *ADSR) SetDecay(seconds float64) {
	e.decay = math.Max(0.0, seconds)
}

// SetSustain sets the sustain level, clamped to [0,1].
func (e *ADSR) SetSustain(level float64) {
	e.sustain = math.Max(0.0, math.Min(1.0, level))
}

// SetRelease sets the release time in seconds.
func (e *ADSR) SetRelease(seconds float64) {
	e.release = math.Max(0.0, seconds)
}

// SetADSR sets all four stage parameters at once.
func (e *ADSR) SetADSR(attack, decay, sustain, release float64) {
	e.SetAttack(attack)
	e.SetDecay(decay)
	e.SetSustain(sustain)
	e.SetRelease(release)
}

// Trigger starts (or retriggers) the envelope on note-on. The current
// amplitude is captured as the attack start point so a retrigger glides
// instead of clicking.
func (e *ADSR) Trigger(velocity float64) {
	e.velocityGain = velocity
	e.attackStart = e.amplitude
	e.stage = StageAttack
	e.stageElapsed = 0
}

// Release starts the release stage on note-off. Called from any
// non-idle stage; a no-op when already idle. The release start point is
// the sustain level when releasing from Sustain, and the current
// amplitude otherwise.
func (e *ADSR) Release() {
	if e.stage == StageIdle {
		return
	}
	if e.stage == StageSustain {
		e.releaseStart = e.sustain
	} else {
		e.releaseStart = e.amplitude
	}
	e.stage = StageRelease
	e.stageElapsed = 0
}

// Reset immediately returns the envelope to idle with zero amplitude.
func (e *ADSR) Reset() {
	e.stage = StageIdle
	e.amplitude = 0
	e.stageElapsed = 0
}

// IsActive reports whether the envelope is generating non-idle output.
func (e *ADSR) IsActive() bool {
	return e.stage != StageIdle
}

// GetStage returns the current envelope stage.
func (e *ADSR) GetStage() Stage {
	return e.stage
}

// VelocityGain returns the velocity gain captured on the most recent
// Trigger.
func (e *ADSR) VelocityGain() float64 {
	return e.velocityGain
}

// Amplitude returns the current envelope amplitude without advancing it.
func (e *ADSR) Amplitude() float64 {
	return e.amplitude
}

// Next advances the envelope by one sample at the given sample rate and
// returns the new amplitude, clamped to [0,1].
func (e *ADSR) Next(sampleRate float64) float64 {
	switch e.stage {
	case StageIdle:
		e.amplitude = 0

	case StageAttack:
		if e.attack <= 0 {
			e.amplitude = 1.0
			e.stage = StageDecay
			e.decayStart = 1.0
			e.stageElapsed = 0
		} else {
			t := float64(e.stageElapsed) / sampleRate
			e.amplitude = e.attackStart + (1.0-e.attackStart)*(t/e.attack)
			e.stageElapsed++
			if e.amplitude >= 1.0 {
				e.amplitude = 1.0
				e.stage = StageDecay
				e.decayStart = 1.0
				e.stageElapsed = 0
			}
		}

	case StageDecay:
		if e.decay <= 0 {
			e.amplitude = e.sustain
			e.stage = StageSustain
			e.stageElapsed = 0
		} else {
			t := float64(e.stageElapsed) / sampleRate
			e.amplitude = e.decayStart - (e.decayStart-e.sustain)*(t/e.decay)
			e.stageElapsed++
			if t >= e.decay {
				e.amplitude = e.sustain
				e.stage = StageSustain
				e.stageElapsed = 0
			}
		}

	case StageSustain:
		e.amplitude = e.sustain

	case StageRelease:
		if e.release <= 0 {
			e.amplitude = 0
			e.stage = StageIdle
			e.stageElapsed = 0
		} else {
			t := float64(e.stageElapsed) / sampleRate
			e.amplitude = e.releaseStart * (1.0 - t/e.release)
			e.stageElapsed++
			if t >= e.release {
				e.amplitude = 0
				e.stage = StageIdle
				e.stageElapsed = 0
			}
		}
	}

	if e.amplitude < 0 {
		e.amplitude = 0
	} else if e.amplitude > 1 {
		e.amplitude = 1
	}
	return e.amplitude
}
