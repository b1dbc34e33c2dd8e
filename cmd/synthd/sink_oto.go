//go:build !portaudio

package main

import (
	"unsafe"

	"github.com/ebitengine/oto/v3"
)

// OtoSink is a render.Sink backed by oto's cross-platform audio output.
// oto pulls bytes through Read on its own goroutine; Write pushes
// blocks onto a bounded channel that Read drains, so a slow consumer
// naturally applies backpressure to the render loop instead of
// silently dropping audio.
type OtoSink struct {
	ctx    *oto.Context
	player *oto.Player
	blocks chan []float32
	scrap  []float32
	pos    int
}

// NewOtoSink creates an OtoSink for mono float32 output at sampleRate.
func NewOtoSink(sampleRate int) (*OtoSink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	s := &OtoSink{ctx: ctx, blocks: make(chan []float32, 4)}
	s.player = ctx.NewPlayer(s)
	s.player.Play()
	return s, nil
}

// Write enqueues one block of samples, blocking if the internal queue
// is full.
func (s *OtoSink) Write(samples []float32) error {
	block := make([]float32, len(samples))
	copy(block, samples)
	s.blocks <- block
	return nil
}

// Read implements io.Reader for oto's player, converting queued float32
// samples into little-endian bytes.
func (s *OtoSink) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if s.pos >= len(s.scrap) {
			s.scrap = <-s.blocks
			s.pos = 0
			if len(s.scrap) == 0 {
				continue
			}
		}
		avail := (len(s.scrap) - s.pos) * 4
		want := len(p) - n
		take := avail
		if take > want {
			take = want
		}
		src := (*[1 << 30]byte)(unsafe.Pointer(&s.scrap[s.pos]))[:take]
		copy(p[n:], src)
		n += take
		s.pos += take / 4
	}
	return n, nil
}

// Close stops playback and releases the player.
func (s *OtoSink) Close() error {
	s.player.Close()
	return nil
}

// newSink opens the default oto-backed sink.
func newSink(sampleRate float64) (*OtoSink, error) {
	return NewOtoSink(int(sampleRate))
}
