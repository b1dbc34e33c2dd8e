// Package voicepool provides the 128-slot per-note voice pool and the
// named registry of voice factories used to (re)build it.
package voicepool

import (
	"errors"
	"fmt"
	"sync"

	"github.com/kbolino/gosynth/pkg/generator"
)

// ErrUnknownVoiceFactory is returned when swapping to a factory name
// that was never registered.
var ErrUnknownVoiceFactory = errors.New("voicepool: unknown voice factory")

// Factory builds one per-note synthesis graph given its fixed nominal
// frequency and starting volume.
type Factory func(frequency float64, volume float32) generator.Generator

// FactoryRegistry is an ordered list of (name, factory) pairs. Lookup
// is by exact name.
type FactoryRegistry struct {
	mu     sync.RWMutex
	byName map[string]Factory
	names  []string
}

// NewFactoryRegistry creates an empty FactoryRegistry.
func NewFactoryRegistry() *FactoryRegistry {
	return &FactoryRegistry{byName: make(map[string]Factory)}
}

// Add appends a named factory. Re-adding an existing name replaces the
// factory in place without changing its position in Names.
func (r *FactoryRegistry) Add(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byName[name]; !exists {
		r.names = append(r.names, name)
	}
	r.byName[name] = factory
}

// Names returns the registered factory names in insertion order.
func (r *FactoryRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Get returns the named factory, or ErrUnknownVoiceFactory if absent.
func (r *FactoryRegistry) Get(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVoiceFactory, name)
	}
	return f, nil
}
