// Package timing maps wall-clock render time onto a fixed tick cadence.
package timing

import (
	"sync"
	"time"
)

// FrameClock remembers when the last tick happened and reports how far a
// render frame sits into the following tick period.
type FrameClock struct {
	mu       sync.Mutex
	period   time.Duration
	lastTick time.Time
	ticked   bool
}

// NewFrameClock returns a clock for tps ticks per second. tps below 1 is
// treated as 1.
func NewFrameClock(tps int) *FrameClock {
	fc := &FrameClock{}
	fc.SetTPS(tps)
	return fc
}

// SetTPS changes the tick cadence. The last tick time is kept.
func (fc *FrameClock) SetTPS(tps int) {
	if tps < 1 {
		tps = 1
	}
	fc.mu.Lock()
	fc.period = time.Second / time.Duration(tps)
	fc.mu.Unlock()
}

// Tick records a tick boundary at now.
func (fc *FrameClock) Tick(now time.Time) {
	fc.mu.Lock()
	fc.lastTick = now
	fc.ticked = true
	fc.mu.Unlock()
}

// Fraction returns the elapsed time since the last tick in tick periods.
// The value is not clamped: a late frame reports more than 1 so a caller
// may extrapolate. Before the first tick it is 1.
//
// The blend pair spans the two most recent ticks, so a frame drawn right
// after a tick shows the previous tick and reaches the current one a full
// period later.
func (fc *FrameClock) Fraction(now time.Time) float64 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if !fc.ticked {
		return 1
	}
	elapsed := now.Sub(fc.lastTick)
	if elapsed < 0 {
		return 0
	}
	return float64(elapsed) / float64(fc.period)
}
