// Package render pulls samples from the voice pool into an audio sink
// at the device rate.
package render

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/kbolino/gosynth/pkg/debug"
)

// ErrSinkFailure is returned when the platform audio sink reports an
// error; the render loop exits and shutdown follows.
var ErrSinkFailure = errors.New("render: sink failure")

// Source is anything the render loop can pull one sample at a time
// from; in practice the voice pool.
type Source interface {
	GenerateSample(sampleRate float64) float32
}

// Sink is the platform audio output the render loop writes blocks of
// samples into. Implementations live outside the core (see cmd/synthd)
// and are backed by real audio libraries (oto, portaudio); the core
// only depends on this interface.
type Sink interface {
	// Write delivers a block of interleaved mono samples to the
	// device. It blocks until the device has accepted them.
	Write(samples []float32) error
	// Close releases any resources held by the sink.
	Close() error
}

// Loop pulls samples from a Source into a Sink at a fixed sample rate
// and block size until stopped.
type Loop struct {
	source     Source
	sink       Sink
	sampleRate float64
	blockSize  int
	logger     *debug.Logger

	buffer  []float32
	running atomic.Bool
}

// NewLoop creates a render Loop.
func NewLoop(source Source, sink Sink, sampleRate float64, blockSize int) *Loop {
	return &Loop{
		source:     source,
		sink:       sink,
		sampleRate: sampleRate,
		blockSize:  blockSize,
		logger:     debug.Default(),
		buffer:     make([]float32, blockSize),
	}
}

// SetLogger overrides the loop's logger.
func (l *Loop) SetLogger(logger *debug.Logger) {
	l.logger = logger
}

// IsRunning reports whether Run is currently executing.
func (l *Loop) IsRunning() bool {
	return l.running.Load()
}

// Stop requests the loop exit after its current block.
func (l *Loop) Stop() {
	l.running.Store(false)
}

// Run pulls and writes blocks until Stop is called or the sink fails.
// Every sample is soft-clipped with tanh before being written, so a
// numerically wayward voice graph cannot produce a signal outside
// [-1, 1] for the sink to choke on.
func (l *Loop) Run() error {
	l.running.Store(true)
	l.logger.Info("render: starting loop at %.0f Hz, block size %d", l.sampleRate, l.blockSize)

	for l.running.Load() {
		for i := range l.buffer {
			s := l.source.GenerateSample(l.sampleRate)
			l.buffer[i] = float32(math.Tanh(float64(s)))
		}
		if err := l.sink.Write(l.buffer); err != nil {
			l.running.Store(false)
			l.logger.Error("render: sink write failed: %v", err)
			return fmt.Errorf("%w: %v", ErrSinkFailure, err)
		}
	}

	l.logger.Info("render: loop stopped")
	return nil
}
