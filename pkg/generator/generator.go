// Package generator defines the pull-sample contract shared by every
// synthesis node (oscillators, tone stacks, effects, envelopes, and the
// mixer) and the base type that aggregates their parameters and child
// generators.
package generator

import "github.com/kbolino/gosynth/pkg/param"

// Generator is a node in the synthesis graph. GenerateSample is
// expected to be called exactly once per output sample per top-level
// node; a node that owns children must call each child's
// GenerateSample at most once per its own call; double-pulling a
// child produces doubled phase advance and is a bug (see the chorus
// effect, which shares one delay line across its voices for exactly
// this reason).
type Generator interface {
	GenerateSample(sampleRate float64) float32
	NoteOn(velocity float32)
	NoteOff()
	Parameters() []*param.Parameter
}

// Base implements the parameter- and child-aggregation behavior common
// to every Generator: an owned parameter registry, an ordered list of
// child generators, and default NoteOn/NoteOff propagation. Concrete
// generator types embed Base and implement GenerateSample themselves;
// most also leave NoteOn/NoteOff at the default (propagate to
// children), overriding only where a node needs different behavior
// (the envelope wrapper captures velocity instead of forwarding it
// further).
type Base struct {
	params   *param.Registry
	children []Generator
}

// NewBase creates an empty Base.
func NewBase() Base {
	return Base{params: param.NewRegistry()}
}

// AddParameter registers a parameter owned by this node.
func (b *Base) AddParameter(p *param.Parameter) {
	b.params.Add(p)
}

// AddChild appends a child generator in insertion order.
func (b *Base) AddChild(g Generator) {
	b.children = append(b.children, g)
}

// Children returns the child generators in insertion order.
func (b *Base) Children() []Generator {
	return b.children
}

// Parameters returns this node's own parameters followed by the
// recursive union of its children's parameters, in insertion order.
// The returned slice is a snapshot valid until the next structural
// change (a parameter or child added, or a pool rebuild).
func (b *Base) Parameters() []*param.Parameter {
	out := b.params.All()
	for _, c := range b.children {
		out = append(out, c.Parameters()...)
	}
	return out
}

// NoteOn propagates to every child in insertion order. Override in a
// concrete type to intercept (see Envelope).
func (b *Base) NoteOn(velocity float32) {
	for _, c := range b.children {
		c.NoteOn(velocity)
	}
}

// NoteOff propagates to every child in insertion order.
func (b *Base) NoteOff() {
	for _, c := range b.children {
		c.NoteOff()
	}
}
