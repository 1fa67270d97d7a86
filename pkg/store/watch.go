package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"tableflip.dev/tempo/pkg/debounce"
)

// Event is emitted by Persistence.Watch when a stored sheet changes.
type Event struct {
	Sheet string
}

// Watch streams change events until ctx is cancelled. Rapid bursts of writes
// to one sheet coalesce into a single event. Callers should drain the
// returned channel; events are dropped rather than blocking the watcher.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop when the consumer is not ready; the next edit will
				// trigger a fresh event and the reader reloads the whole
				// sheet anyway.
			}
		}

		coalesce := debounce.New(100 * time.Millisecond)
		defer coalesce.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "store: watch: %v\n", err)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				name, matched := fromKey(filepath.Base(evt.Name))
				if !matched {
					continue
				}
				coalesce.Do(name, func() { send(Event{Sheet: name}) })
			}
		}
	}()

	return events, nil
}
