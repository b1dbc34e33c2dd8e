// Package control implements the parameter-by-name update and
// voice-factory swap operations exposed to a control surface, plus the
// broadcast events that keep observers (a UI, a logging sink) in sync
// with pool state.
package control

import (
	"fmt"
	"sync"

	"github.com/kbolino/gosynth/pkg/debug"
	"github.com/kbolino/gosynth/pkg/midi"
	"github.com/kbolino/gosynth/pkg/param"
	"github.com/kbolino/gosynth/pkg/voicepool"
)

// BroadcastKind names the four event shapes a Controller emits.
type BroadcastKind string

const (
	// AllParams carries the full grouped-parameter list, sent after a
	// factory swap. Subscribe does not send one.
	AllParams BroadcastKind = "all_params"
	// AllVoices carries the full registered voice-factory name list.
	AllVoices BroadcastKind = "all_voices"
	// ParamUpdate carries a single accepted parameter write.
	ParamUpdate BroadcastKind = "param_update"
	// VoiceGeneratorChange announces a completed factory swap.
	VoiceGeneratorChange BroadcastKind = "voice_generator_change"
)

// ParamInfo is a snapshot of one grouped parameter's shape and current
// value, suitable for serializing out to a control surface.
type ParamInfo struct {
	Name  string
	Min   float32
	Max   float32
	Step  float32
	Unit  string
	Value float32
}

// Broadcast is one event pushed to every subscriber.
type Broadcast struct {
	Kind    BroadcastKind
	Params  []ParamInfo
	Voices  []string
	Name    string
	Value   float32
}

// Controller mediates between a control surface and the voice pool: it
// enumerates parameters and voice factories, applies writes and swaps,
// and fans state-change events out to subscribers.
type Controller struct {
	mu          sync.Mutex
	pool        *voicepool.Pool
	factories   *voicepool.FactoryRegistry
	ccMap       *midi.CCMap
	logger      *debug.Logger
	subscribers []chan Broadcast
}

// New creates a Controller over pool and factories, using the default
// CC map and logger unless overridden.
func New(pool *voicepool.Pool, factories *voicepool.FactoryRegistry) *Controller {
	return &Controller{
		pool:      pool,
		factories: factories,
		ccMap:     midi.DefaultCCMap(),
		logger:    debug.Default(),
	}
}

// SetLogger overrides the controller's logger.
func (c *Controller) SetLogger(l *debug.Logger) {
	c.logger = l
}

// Subscribe registers a channel that receives every future broadcast.
// The channel is buffered so a slow subscriber cannot block the control
// thread; broadcasts are dropped, not queued indefinitely, if the
// buffer fills.
func (c *Controller) Subscribe() <-chan Broadcast {
	ch := make(chan Broadcast, 32)
	c.mu.Lock()
	c.subscribers = append(c.subscribers, ch)
	c.mu.Unlock()
	return ch
}

func (c *Controller) broadcast(b Broadcast) {
	c.mu.Lock()
	subs := append([]chan Broadcast(nil), c.subscribers...)
	c.mu.Unlock()
	for _, ch := range subs {
		select {
		case ch <- b:
		default:
		}
	}
}

func toParamInfo(p *param.Parameter) ParamInfo {
	return ParamInfo{Name: p.Name, Min: p.Min, Max: p.Max, Step: p.Step, Unit: p.Unit, Value: p.Value()}
}

// EnumerateParameters returns every currently-published grouped
// parameter.
func (c *Controller) EnumerateParameters() []ParamInfo {
	prms := c.pool.GroupedParameters()
	out := make([]ParamInfo, len(prms))
	for i, p := range prms {
		out[i] = toParamInfo(p)
	}
	return out
}

// EnumerateVoiceFactories returns the registered factory names in
// insertion order.
func (c *Controller) EnumerateVoiceFactories() []string {
	return c.factories.Names()
}

// SetParameter applies a write to the named grouped parameter. An
// out-of-range value or unknown name is logged and returned as an
// error without mutating any state.
func (c *Controller) SetParameter(name string, value float32) error {
	if err := c.pool.Write(name, value); err != nil {
		c.logger.Warn("control: rejected write to %q: %v", name, err)
		return err
	}
	c.broadcast(Broadcast{Kind: ParamUpdate, Name: name, Value: value})
	return nil
}

// SwapVoiceFactory rebuilds the pool from the named factory. An unknown
// name leaves the pool untouched and is surfaced to the caller.
func (c *Controller) SwapVoiceFactory(name string) error {
	factory, err := c.factories.Get(name)
	if err != nil {
		c.logger.Warn("control: %v", err)
		return err
	}
	c.pool.Build(factory)
	c.logger.Info("control: swapped voice factory to %q", name)

	c.broadcast(Broadcast{Kind: VoiceGeneratorChange, Name: name})
	c.broadcast(Broadcast{Kind: AllParams, Params: c.EnumerateParameters()})
	c.broadcast(Broadcast{Kind: AllVoices, Voices: c.EnumerateVoiceFactories()})
	return nil
}

// Dispatch routes one MIDI event to the pool (notes) or the CC map
// (control changes). Unrecognized controllers are silently ignored;
// only the mapped subset (Attack/Decay/Sustain/Release by default)
// drives a parameter write.
func (c *Controller) Dispatch(ev midi.Event) error {
	switch e := ev.(type) {
	case midi.NoteOnEvent:
		return c.pool.NoteOn(int(e.Note), int(e.Channel()), float32(e.Velocity)/127.0)
	case midi.NoteOffEvent:
		return c.pool.NoteOff(int(e.Note), int(e.Channel()))
	case midi.ControlChangeEvent:
		name, ok := c.ccMap.ParameterFor(e.Controller)
		if !ok {
			return nil
		}
		prm := c.findGrouped(name)
		if prm == nil {
			return fmt.Errorf("%w: %q", param.ErrUnknownParameter, name)
		}
		return c.SetParameter(name, midi.Scale(e.Value, prm.Min, prm.Max))
	default:
		return nil
	}
}

func (c *Controller) findGrouped(name string) *param.Parameter {
	for _, p := range c.pool.GroupedParameters() {
		if p.Name == name {
			return p
		}
	}
	return nil
}
