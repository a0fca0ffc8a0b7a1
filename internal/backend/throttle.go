package backend

import (
	"sync"
	"time"
)

// throttle spaces successive operations at least interval apart.
type throttle struct {
	interval time.Duration
	sleep    func(time.Duration)

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	t := &throttle{sleep: time.Sleep}
	if interval > 0 {
		t.interval = interval
	}
	return t
}

// wait blocks until the next slot and reserves it.
func (t *throttle) wait() {
	if t == nil || t.interval <= 0 {
		return
	}
	t.mu.Lock()
	now := time.Now()
	slot := t.next
	if slot.Before(now) {
		slot = now
	}
	t.next = slot.Add(t.interval)
	t.mu.Unlock()
	if d := time.Until(slot); d > 0 {
		t.sleep(d)
	}
}
