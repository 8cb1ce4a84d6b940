package sync

import (
	gosync "sync"
	"time"

	"github.com/google/uuid"
)

// Key identifies one logical stream of writes. Keying by entity and
// operation kind lets concurrent drags of two different notes debounce
// independently.
type Key struct {
	EntityId uuid.UUID
	Op       string
}

// Debouncer coalesces rapid calls per key: only the last function scheduled
// within the window runs. Close flushes everything still pending, so the
// final edit of a session is never dropped.
type Debouncer struct {
	mu      gosync.Mutex
	window  time.Duration
	timers  map[Key]*time.Timer
	pending map[Key]func()
	closed  bool
}

func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{
		window:  window,
		timers:  make(map[Key]*time.Timer),
		pending: make(map[Key]func()),
	}
}

// Schedule replaces any pending function for the key and restarts its
// window. Superseded functions are never run.
func (d *Debouncer) Schedule(key Key, fn func()) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		fn()
		return
	}

	d.pending[key] = fn
	if t, exists := d.timers[key]; exists {
		t.Stop()
	}
	d.timers[key] = time.AfterFunc(d.window, func() {
		d.fire(key)
	})
	d.mu.Unlock()
}

// Cancel drops the pending write for the key without running it.
func (d *Debouncer) Cancel(key Key) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t, exists := d.timers[key]; exists {
		t.Stop()
		delete(d.timers, key)
	}
	delete(d.pending, key)
}

// Flush runs every pending function immediately.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	fns := make([]func(), 0, len(d.pending))
	for key, fn := range d.pending {
		if t, exists := d.timers[key]; exists {
			t.Stop()
			delete(d.timers, key)
		}
		delete(d.pending, key)
		fns = append(fns, fn)
	}
	d.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Close flushes pending writes and makes further Schedule calls run
// synchronously.
func (d *Debouncer) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	d.Flush()
}

func (d *Debouncer) fire(key Key) {
	d.mu.Lock()
	fn, exists := d.pending[key]
	if exists {
		delete(d.pending, key)
	}
	if t, ok := d.timers[key]; ok {
		t.Stop()
		delete(d.timers, key)
	}
	d.mu.Unlock()

	if exists {
		fn()
	}
}
