// Package debounce delays rapid repeated calls so that expensive work runs
// once per pause rather than once per keystroke.
package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces calls per key on the trailing edge: fn runs once the
// key has been quiet for the configured delay, and a newer call for the same
// key replaces the pending one. Different keys never cancel each other.
type Debouncer struct {
	delay time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New creates a debouncer with the given quiet period.
func New(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

// Do schedules fn for the key, replacing any pending call for the same key.
func (d *Debouncer) Do(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[key]; ok {
		t.Stop()
	}
	d.timers[key] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		delete(d.timers, key)
		d.mu.Unlock()
		fn()
	})
}

// Flush cancels the pending call for the key, if any, and reports whether
// one was pending.
func (d *Debouncer) Flush(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	t, ok := d.timers[key]
	if ok {
		t.Stop()
		delete(d.timers, key)
	}
	return ok
}

// Stop cancels every pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for key, t := range d.timers {
		t.Stop()
		delete(d.timers, key)
	}
}
