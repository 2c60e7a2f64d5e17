package engine

import "time"

// autoRepeat implements delayed auto-repeat for a held action: the
// initial press fires immediately, then nothing until the delay
// elapses, then one firing per interval. Two independent countdowns,
// reset on press and on each repeat firing.
type autoRepeat struct {
	delay    time.Duration
	interval time.Duration

	active    bool
	remaining time.Duration // countdown to the next firing
}

func newAutoRepeat(delay, interval time.Duration) autoRepeat {
	return autoRepeat{delay: delay, interval: interval}
}

// press starts a new hold and reports the initial firing
func (ar *autoRepeat) press() bool {
	ar.active = true
	ar.remaining = ar.delay
	return true
}

// advance accumulates held time and returns how many repeat firings
// are due. Tolerates variable frame deltas: a long frame can yield
// several firings.
func (ar *autoRepeat) advance(dt time.Duration) int {
	if !ar.active {
		return 0
	}
	fired := 0
	ar.remaining -= dt
	for ar.remaining < 0 {
		fired++
		ar.remaining += ar.interval
	}
	return fired
}

// release stops the hold
func (ar *autoRepeat) release() {
	ar.active = false
}
