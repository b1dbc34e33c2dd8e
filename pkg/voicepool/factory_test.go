package voicepool

import (
	"errors"
	"testing"

	"github.com/kbolino/gosynth/pkg/generator"
)

func stubFactory(freq float64, volume float32) generator.Generator {
	return generator.NewOscillator(freq, volume)
}

func TestFactoryRegistryOrderAndLookup(t *testing.T) {
	r := NewFactoryRegistry()
	r.Add("Sine", stubFactory)
	r.Add("Square", stubFactory)

	if got := r.Names(); len(got) != 2 || got[0] != "Sine" || got[1] != "Square" {
		t.Errorf("Names() = %v, want [Sine Square]", got)
	}

	f, err := r.Get("Sine")
	if err != nil {
		t.Fatalf("Get(Sine) error = %v", err)
	}
	if f == nil {
		t.Fatal("Get(Sine) returned nil factory")
	}
}

func TestFactoryRegistryGetUnknown(t *testing.T) {
	r := NewFactoryRegistry()
	_, err := r.Get("Nonexistent")
	if !errors.Is(err, ErrUnknownVoiceFactory) {
		t.Errorf("Get(Nonexistent) error = %v, want ErrUnknownVoiceFactory", err)
	}
}

func TestFactoryRegistryReAddReplacesInPlace(t *testing.T) {
	r := NewFactoryRegistry()
	r.Add("A", stubFactory)
	r.Add("B", stubFactory)
	r.Add("A", stubFactory)

	names := r.Names()
	if len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Errorf("Names() after re-add = %v, want [A B] (position preserved)", names)
	}
}
