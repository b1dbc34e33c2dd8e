//go:build portaudio

package main

import (
	"github.com/gordonklaus/portaudio"
)

// PortAudioSink is a render.Sink backed by PortAudio. PortAudio pulls
// samples through a callback on its own thread; Write pushes blocks
// onto a bounded channel that the callback drains, mirroring OtoSink's
// backpressure model.
type PortAudioSink struct {
	stream *portaudio.Stream
	blocks chan []float32
	scrap  []float32
	pos    int
}

// NewPortAudioSink opens the default output stream at sampleRate for
// mono float32 output.
func NewPortAudioSink(sampleRate float64) (*PortAudioSink, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}

	s := &PortAudioSink{blocks: make(chan []float32, 4)}
	stream, err := portaudio.OpenDefaultStream(0, 1, sampleRate, portaudio.FramesPerBufferUnspecified, s.callback)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	s.stream = stream

	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, err
	}
	return s, nil
}

func (s *PortAudioSink) callback(out []float32) {
	n := 0
	for n < len(out) {
		if s.pos >= len(s.scrap) {
			select {
			case s.scrap = <-s.blocks:
				s.pos = 0
			default:
				for ; n < len(out); n++ {
					out[n] = 0
				}
				return
			}
			continue
		}
		out[n] = s.scrap[s.pos]
		n++
		s.pos++
	}
}

// Write enqueues one block of samples, blocking if the internal queue
// is full.
func (s *PortAudioSink) Write(samples []float32) error {
	block := make([]float32, len(samples))
	copy(block, samples)
	s.blocks <- block
	return nil
}

// Close stops the stream and terminates PortAudio.
func (s *PortAudioSink) Close() error {
	err := s.stream.Close()
	portaudio.Terminate()
	return err
}

// newSink opens the default PortAudio-backed sink.
func newSink(sampleRate float64) (*PortAudioSink, error) {
	return NewPortAudioSink(sampleRate)
}
