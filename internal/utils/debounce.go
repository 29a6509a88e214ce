package utils

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of calls into one call after the burst ends.
// The zero value is ready to use.
type Debouncer struct {
	mutex   sync.Mutex
	timer   *time.Timer
	stopped bool
}

// Debounce schedules fn after duration, replacing any call still pending.
// It does nothing after Stop.
func (d *Debouncer) Debounce(duration time.Duration, fn func()) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(duration, func() {
		d.mutex.Lock()
		current := d.timer == t && !d.stopped
		if current {
			d.timer = nil
		}
		d.mutex.Unlock()
		if current {
			fn()
		}
	})
	d.timer = t
}

// Pending reports whether a call is scheduled.
func (d *Debouncer) Pending() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.timer != nil
}

// Stop cancels the pending call and disables the debouncer.
func (d *Debouncer) Stop() {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
