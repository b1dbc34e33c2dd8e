package voicepool

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/kbolino/gosynth/pkg/generator"
	"github.com/kbolino/gosynth/pkg/param"
)

// numNotes is the fixed size of the pool: one slot per MIDI note
// number.
const numNotes = 128

// smoothingTau is the one-pole smoothing time constant for the pool's
// output gain.
const smoothingTau = 0.010 // 10 ms

// gateThreshold excludes numerical tails (about -80 dBFS) from the
// active-voice count so trailing releases don't dim the remaining
// notes.
const gateThreshold = 1e-4

// ErrInvalidNote is returned when a note index falls outside 0..127.
var ErrInvalidNote = errors.New("voicepool: invalid note")

// Pool is a fixed array of 128 per-note voices, dispatching note
// on/off by index, summing and gain-normalizing their output, and
// publishing one grouped Parameter per distinct parameter name found
// across all 128 per-note generators.
type Pool struct {
	mu sync.Mutex

	slots   [numNotes]generator.Generator
	grouped *param.Registry

	gain    float64
	factory Factory
}

// NewPool creates an empty Pool. Call Build before use.
func NewPool() *Pool {
	return &Pool{grouped: param.NewRegistry(), gain: 1.0}
}

// Build rebuilds all 128 slots from factory, then republishes the
// grouped parameter view. It acquires the pool lock so the audio
// thread never observes a half-rebuilt pool.
func (p *Pool) Build(factory Factory) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.factory = factory
	p.grouped.Clear()

	for n := 0; n < numNotes; n++ {
		eps := (rand.Float64()*2 - 1) * 0.001
		freq := 440.0 * math.Pow(2, (float64(n)-69.0)/12.0) * (1.0 + eps)
		p.slots[n] = factory(freq, 1.0)
	}

	p.publishGroupedLocked()
}

// publishGroupedLocked walks all slots, groups per-note parameters by
// name, and publishes one grouped Parameter per distinct name. The
// grouped parameter's bounds mirror the first per-note instance found;
// writing to it fans the write out to every per-note parameter sharing
// that name. Must be called with p.mu held.
func (p *Pool) publishGroupedLocked() {
	byName := make(map[string][]*param.Parameter)
	var order []string

	for _, slot := range p.slots {
		if slot == nil {
			continue
		}
		for _, prm := range slot.Parameters() {
			if _, seen := byName[prm.Name]; !seen {
				order = append(order, prm.Name)
			}
			byName[prm.Name] = append(byName[prm.Name], prm)
		}
	}

	for _, name := range order {
		members := byName[name]
		first := members[0]
		grouped := param.New(name, first.Min, first.Max, first.Step, first.Value(), first.Unit)
		grouped.OnChange(p.fanOutFunc(members))
		p.grouped.Add(grouped)
	}
}

// fanOutFunc closes over the members slice, applying a grouped write
// to every per-note parameter of that name while the pool lock is
// already held by the caller (Write).
func (p *Pool) fanOutFunc(members []*param.Parameter) func(float32) {
	return func(v float32) {
		for _, m := range members {
			_ = m.SetValue(v)
		}
	}
}

// GroupedParameters returns the current grouped-parameter view.
func (p *Pool) GroupedParameters() []*param.Parameter {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.grouped.All()
}

// Write applies a write to a grouped parameter by name, taking the pool
// lock so the fan-out is atomic with respect to a concurrent rebuild or
// GenerateSample call. Fanning out without holding the lock would race
// a concurrent rebuild swapping the slots out from under it.
func (p *Pool) Write(name string, value float32) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	prm := p.grouped.Get(name)
	if prm == nil {
		return fmt.Errorf("%w: %q", param.ErrUnknownParameter, name)
	}
	return prm.SetValue(value)
}

// NoteOn validates the note index and dispatches note_on to that slot.
// channel is accepted but currently unused; there is no per-channel
// routing.
func (p *Pool) NoteOn(note int, channel int, vel float32) error {
	if note < 0 || note >= numNotes {
		return fmt.Errorf("%w: %d", ErrInvalidNote, note)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.slots[note].NoteOn(vel)
	return nil
}

// NoteOff validates the note index and dispatches note_off to that
// slot.
func (p *Pool) NoteOff(note int, channel int) error {
	if note < 0 || note >= numNotes {
		return fmt.Errorf("%w: %d", ErrInvalidNote, note)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.slots[note].NoteOff()
	return nil
}

// GenerateSample pulls every slot, sums the output, and applies a
// smoothed gain of 1/sqrt(K) where K is the number of slots whose
// output magnitude this sample exceeds the gate threshold. Inactive
// (idle) voices are cheap to pull; they return exactly 0, so pulling
// all 128 every sample keeps the loop free of note-count branching.
func (p *Pool) GenerateSample(sampleRate float64) float32 {
	p.mu.Lock()
	defer p.mu.Unlock()

	var sum float32
	activeCount := 0
	for _, slot := range p.slots {
		s := slot.GenerateSample(sampleRate)
		sum += s
		if math.Abs(float64(s)) > gateThreshold {
			activeCount++
		}
	}

	target := 1.0
	if activeCount > 0 {
		target = 1.0 / math.Sqrt(float64(activeCount))
	}
	alpha := math.Exp(-1.0 / (smoothingTau * sampleRate))
	p.gain = alpha*p.gain + (1.0-alpha)*target

	return sum * float32(p.gain)
}
