// Command synthd is a demo host for the synthesis engine: it opens a
// platform audio sink, builds a voice pool from a configured preset,
// and drives note events from the computer keyboard until interrupted.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbolino/gosynth/pkg/control"
	"github.com/kbolino/gosynth/pkg/debug"
	"github.com/kbolino/gosynth/pkg/midi"
	"github.com/kbolino/gosynth/pkg/render"
	"github.com/kbolino/gosynth/pkg/voicepool"
)

func main() {
	configPath := flag.String("config", "synthd.json", "Path to config, created with defaults if not found.")
	flag.Parse()

	logger := debug.Default()
	logger.SetLevel(debug.LevelInfo)

	config, err := ReadConfig(*configPath)
	if err != nil {
		log.Fatalf("can't read config: %v", err)
	}

	factories := voicepool.NewFactoryRegistry()
	registerPresets(factories, config.SampleRate)

	factory, err := factories.Get(config.InitialVoice)
	if err != nil {
		log.Fatalf("can't find initial voice %q: %v", config.InitialVoice, err)
	}

	pool := voicepool.NewPool()
	pool.Build(factory)

	ctrl := control.New(pool, factories)
	ctrl.SetLogger(logger)

	sink, err := newSink(config.SampleRate)
	if err != nil {
		log.Fatalf("can't open audio sink: %v", err)
	}
	defer sink.Close()

	loop := render.NewLoop(pool, sink, config.SampleRate, config.BlockSize)
	loop.SetLogger(logger)
	go func() {
		if err := loop.Run(); err != nil {
			logger.Error("main: render loop exited: %v", err)
		}
	}()
	defer loop.Stop()

	events := make(chan midi.Event, 32)
	kb := NewKeyboard(events)
	if err := kb.Start(); err != nil {
		log.Fatalf("can't start keyboard: %v", err)
	}
	defer kb.Stop()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	defer close(done)

	var configUpdates chan *Config
	var configErrs chan error
	if config.WatchConfig {
		configUpdates = make(chan *Config)
		configErrs = make(chan error)
		if err := WatchConfig(*configPath, configUpdates, configErrs, done); err != nil {
			logger.Warn("main: config watch disabled: %v", err)
			configUpdates = nil
			configErrs = nil
		}
	}

	fmt.Println("synthd running. Play notes with the home row (a,s,d,f,...); Esc or Ctrl-C to quit.")

	for {
		select {
		case ev := <-events:
			if err := ctrl.Dispatch(ev); err != nil {
				logger.Warn("main: dispatch failed: %v", err)
			}
		case <-kb.stopCh:
			return
		case sig := <-signals:
			logger.Info("main: received %v, shutting down", sig)
			return
		case c := <-configUpdates:
			logger.Info("main: config changed, applying initial voice %q", c.InitialVoice)
			if err := ctrl.SwapVoiceFactory(c.InitialVoice); err != nil {
				logger.Warn("main: voice swap failed: %v", err)
			}
		case err := <-configErrs:
			logger.Warn("main: config watch error: %v", err)
		}
	}
}
