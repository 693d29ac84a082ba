package core

import "time"

// Ticker paces discrete playback steps at a steady ticks-per-second rate.
type Ticker struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewTicker constructs a Ticker targeting the given TPS.
func NewTicker(tps int) *Ticker {
	t := &Ticker{now: time.Now}
	t.SetTPS(tps)
	return t
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (t *Ticker) SetTPS(tps int) {
	if tps <= 0 {
		tps = 2
	}
	t.step = time.Second / time.Duration(tps)
}

// Reset forgets accumulated time so the next tick is a full step away.
func (t *Ticker) Reset() {
	t.accumulator = 0
	t.last = time.Time{}
}

// Due reports whether a step should be taken now.
func (t *Ticker) Due() bool {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
	}
	t.accumulator += now.Sub(t.last)
	t.last = now
	if t.accumulator >= t.step {
		t.accumulator -= t.step
		return true
	}
	return false
}
