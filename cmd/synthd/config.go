package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
)

const defaultConfig = `
{
	"sampleRate": 44100,
	"blockSize": 512,
	"initialVoice": "Sine Oscillator",
	"watchConfig": true
}
`

// Config is the demo host's boot configuration. The engine core itself
// has no persisted state; this exists only so cmd/synthd can start with
// a chosen sample rate, block size, and initial preset without a
// recompile.
type Config struct {
	SampleRate   float64 `json:"sampleRate"`
	BlockSize    int     `json:"blockSize"`
	InitialVoice string  `json:"initialVoice"`
	WatchConfig  bool    `json:"watchConfig"`
}

// ReadConfig loads Config from p, writing defaultConfig first if p
// doesn't exist.
func ReadConfig(p string) (*Config, error) {
	if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(p, []byte(defaultConfig), 0644); err != nil {
			return nil, fmt.Errorf("can't write default config: %w", err)
		}
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("can't read config: %w", err)
	}
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &c, nil
}

// WatchConfig watches p for writes/renames and pushes freshly-parsed
// Configs onto configs. Parse errors go to errs instead of stopping the
// watch. Closing done stops the watcher.
func WatchConfig(path string, configs chan<- *Config, errs chan<- error, done <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("can't create watcher: %w", err)
	}
	go func() {
		defer watcher.Close()
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Rename) > 0 {
					c, err := ReadConfig(path)
					if err != nil {
						errs <- err
						continue
					}
					configs <- c
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				errs <- err
			case <-done:
				return
			}
		}
	}()
	return watcher.Add(path)
}
