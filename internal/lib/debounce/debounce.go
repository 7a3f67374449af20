// Package debounce coalesces bursts of calls into one trailing call.
package debounce

import (
	"sync"
	"time"
)

type Debouncer struct {
	mu    sync.Mutex
	wait  time.Duration
	timer *time.Timer
	seq   uint64
}

func New(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait}
}

// Call schedules fn to run after the quiet period, dropping whatever was
// scheduled before and has not fired yet.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.wait, func() {
		d.mu.Lock()
		// a later Call may have raced with Stop on this timer
		stale := seq != d.seq
		if !stale {
			d.timer = nil
		}
		d.mu.Unlock()

		if !stale {
			fn()
		}
	})
}

// Cancel drops the pending call, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
}
