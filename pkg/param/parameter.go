// Package param provides named, bounded, atomically-readable scalar
// parameters and a name-keyed registry for aggregating them across a
// generator graph.
package param

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
)

// ErrOutOfRange is returned when a write falls outside [Min, Max].
var ErrOutOfRange = errors.New("param: value out of range")

// Parameter is a named scalar with bounds, a step size, a unit label,
// and an optional change callback invoked synchronously on every
// accepted write. The current value is stored atomically so the audio
// thread can read it without locking while a control thread writes it.
type Parameter struct {
	Name string
	Min  float32
	Max  float32
	Step float32
	Unit string

	bits    atomic.Uint32
	onWrite func(float32)
}

// New creates a Parameter with the given bounds and initial value. The
// initial value is not range-checked against Min/Max; callers are
// expected to pass a value already inside range.
func New(name string, min, max, step, initial float32, unit string) *Parameter {
	p := &Parameter{Name: name, Min: min, Max: max, Step: step, Unit: unit}
	p.bits.Store(math.Float32bits(initial))
	return p
}

// OnChange installs a callback invoked synchronously after every
// accepted write, with the new value.
func (p *Parameter) OnChange(fn func(float32)) {
	p.onWrite = fn
}

// Value returns the current value.
func (p *Parameter) Value() float32 {
	return math.Float32frombits(p.bits.Load())
}

// SetValue writes a new value if it lies within [Min, Max]. Writes
// outside the range are rejected: no mutation, no callback.
func (p *Parameter) SetValue(v float32) error {
	if v < p.Min || v > p.Max {
		return fmt.Errorf("%s: %w (got %v, want [%v, %v])", p.Name, ErrOutOfRange, v, p.Min, p.Max)
	}
	p.bits.Store(math.Float32bits(v))
	if p.onWrite != nil {
		p.onWrite(v)
	}
	return nil
}

// Increment steps the value up by Step, clamping at Max.
func (p *Parameter) Increment() error {
	v := p.Value() + p.Step
	if v > p.Max {
		v = p.Max
	}
	return p.SetValue(v)
}

// Decrement steps the value down by Step, clamping at Min.
func (p *Parameter) Decrement() error {
	v := p.Value() - p.Step
	if v < p.Min {
		v = p.Min
	}
	return p.SetValue(v)
}

// Rename replaces the parameter's name, typically to append a
// disambiguating suffix when the parameter is contributed by a
// sub-graph shared with siblings. Mixer does not use it; it builds its
// suffixed channel names at construction.
func (p *Parameter) Rename(name string) {
	p.Name = name
}
