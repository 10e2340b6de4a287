// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package help

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hollowmere/fieldguide/internal/ignore"
)

// ReloadEvent signals that a watched data file changed and the topic
// table should be reloaded.
type ReloadEvent struct {
	Path string
}

// Watcher watches help data directories while authoring and emits
// debounced reload events. Editor artifacts never reach consumers.
type Watcher struct {
	watcher  *fsnotify.Watcher
	events   chan ReloadEvent
	done     chan struct{}
	ignore   *ignore.Matcher
	diag     func(format string, args ...interface{})
	debounce time.Duration
}

// NewWatcher watches the given directories. diag receives watch
// diagnostics; nil disables them.
func NewWatcher(dirs []string, ign *ignore.Matcher, diag func(format string, args ...interface{})) (*Watcher, error) {
	if diag == nil {
		diag = func(string, ...interface{}) {}
	}
	if ign == nil {
		ign = ignore.NewMatcher()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	watched := 0
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := fw.Add(dir); err != nil {
			diag("watch: cannot watch %s: %v\n", dir, err)
			continue
		}
		watched++
	}
	if watched == 0 {
		_ = fw.Close()
		return nil, fmt.Errorf("watching help data: no watchable directories")
	}
	diag("watch: started, watched_dirs=%d\n", watched)

	w := &Watcher{
		watcher:  fw,
		events:   make(chan ReloadEvent, 1),
		done:     make(chan struct{}),
		ignore:   ign,
		diag:     diag,
		debounce: 200 * time.Millisecond,
	}
	go w.run()
	return w, nil
}

// Events returns the channel of debounced reload events.
func (w *Watcher) Events() <-chan ReloadEvent {
	return w.events
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("closing fsnotify watcher: %w", err)
	}
	return nil
}

func (w *Watcher) run() {
	defer close(w.events)

	var (
		timer *time.Timer
		fire  <-chan time.Time
		last  string
	)
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.shouldForward(event) {
				continue
			}
			w.diag("watch: change detected path=%s op=%s\n", event.Name, event.Op.String())
			last = event.Name
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
		case <-fire:
			timer = nil
			fire = nil
			// Non-blocking send: a pending event already forces a
			// reload, so bursts collapse into one.
			select {
			case w.events <- ReloadEvent{Path: last}:
			default:
				w.diag("watch: reload event dropped (pending)\n")
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if err != nil {
				w.diag("watch: error: %v\n", err)
			}
		}
	}
}

// shouldForward keeps writes to data files and drops everything else.
func (w *Watcher) shouldForward(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Base(event.Name)
	if w.ignore.Match(name, false) {
		return false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
