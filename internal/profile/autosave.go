package profile

import (
	"context"
	"sync"
	"time"
)

// DefaultQuietInterval is how long the editor must stay idle before a
// scheduled save fires. Blur on free-form regions saves immediately via Flush.
const DefaultQuietInterval = time.Second

// Autosaver debounces profile saves. Each Touch cancels any pending save and
// schedules a new one after the quiet interval, so at most one save fires per
// quiet period. The record is snapshotted when the save fires, never when it
// was scheduled, and writes are last-write-wins on the single storage slot.
type Autosaver struct {
	interval time.Duration
	snapshot func() Record
	save     func(context.Context, Record) error

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// NewAutosaver wires the debouncer to a record snapshot and a save function.
// A non-positive interval falls back to DefaultQuietInterval.
func NewAutosaver(interval time.Duration, snapshot func() Record, save func(context.Context, Record) error) *Autosaver {
	if interval <= 0 {
		interval = DefaultQuietInterval
	}
	return &Autosaver{
		interval: interval,
		snapshot: snapshot,
		save:     save,
	}
}

// Touch records an edit: any pending save is cancelled and a new one is
// scheduled after the quiet interval.
func (a *Autosaver) Touch() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped {
		return
	}
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.interval, a.fire)
}

// Flush cancels any pending save and saves immediately (blur semantics). If
// the pending timer has already expired its callback will perform the save,
// so Flush skips its own to keep one save per quiet period.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return
	}
	fired := false
	if a.timer != nil {
		fired = !a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()

	if fired {
		return
	}
	a.doSave()
}

// Stop cancels any pending save and disables the autosaver.
func (a *Autosaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopped = true
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

func (a *Autosaver) fire() {
	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return
	}
	a.timer = nil
	a.mu.Unlock()

	a.doSave()
}

func (a *Autosaver) doSave() {
	// Snapshot at fire time so the save reflects the latest field values.
	record := a.snapshot()
	// Save failures are the store's concern; the debounce contract only
	// guarantees when saves fire, not that they succeed.
	_ = a.save(context.Background(), record)
}
