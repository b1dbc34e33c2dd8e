package main

import (
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/kbolino/gosynth/pkg/midi"
)

// keyRow maps a QWERTY row to consecutive MIDI notes, piano-style,
// starting at C4 (60).
var keyRow = map[byte]uint8{
	'a': 60, 'w': 61, 's': 62, 'e': 63, 'd': 64, 'f': 65,
	't': 66, 'g': 67, 'y': 68, 'h': 69, 'u': 70, 'j': 71, 'k': 72,
}

// Keyboard reads raw stdin bytes and turns key-down/key-up transitions
// into NoteOn/NoteOff events on events. Terminals don't report key-up,
// so a note is released the next time any different key (or the same
// key again) is pressed; good enough for a demo host, not a real
// keyboard controller.
type Keyboard struct {
	fd           int
	oldTermState *term.State
	nonblockSet  bool

	stopCh  chan struct{}
	done    chan struct{}
	stopped sync.Once

	events  chan<- midi.Event
	held    uint8
	hasHeld bool
}

// NewKeyboard creates a Keyboard that publishes events onto events.
func NewKeyboard(events chan<- midi.Event) *Keyboard {
	return &Keyboard{
		fd:     int(os.Stdin.Fd()),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
		events: events,
	}
}

// Start puts stdin into raw, non-blocking mode and begins reading in a
// goroutine.
func (k *Keyboard) Start() error {
	oldState, err := term.MakeRaw(k.fd)
	if err != nil {
		close(k.done)
		return err
	}
	k.oldTermState = oldState

	if err := syscall.SetNonblock(k.fd, true); err != nil {
		_ = term.Restore(k.fd, k.oldTermState)
		close(k.done)
		return err
	}
	k.nonblockSet = true

	go k.readLoop()
	return nil
}

func (k *Keyboard) readLoop() {
	defer close(k.done)
	buf := make([]byte, 1)

	for {
		select {
		case <-k.stopCh:
			return
		default:
		}

		n, err := syscall.Read(k.fd, buf)
		if n > 0 {
			k.handleByte(buf[0])
		}
		switch {
		case err == syscall.EAGAIN || err == syscall.EWOULDBLOCK:
			time.Sleep(5 * time.Millisecond)
		case err != nil:
			return
		case n == 0:
			time.Sleep(5 * time.Millisecond)
		}
	}
}

func (k *Keyboard) handleByte(b byte) {
	if b == 0x1b { // Escape quits
		k.stopped.Do(func() { close(k.stopCh) })
		return
	}
	note, ok := keyRow[b]
	if !ok {
		return
	}
	if k.hasHeld {
		k.events <- midi.NoteOffEvent{Note: k.held}
	}
	k.events <- midi.NoteOnEvent{Note: note, Velocity: 100}
	k.held, k.hasHeld = note, true
}

// Stop terminates the read goroutine and restores stdin.
func (k *Keyboard) Stop() {
	k.stopped.Do(func() { close(k.stopCh) })
	<-k.done
	if k.nonblockSet {
		_ = syscall.SetNonblock(k.fd, false)
	}
	if k.oldTermState != nil {
		_ = term.Restore(k.fd, k.oldTermState)
	}
}
